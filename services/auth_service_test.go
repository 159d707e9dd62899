package services

import (
	"net/http"
	"testing"

	"github.com/gracehq/prayerhub/config"
	"github.com/gracehq/prayerhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*testEnv, AuthService) {
	t.Helper()
	env := newTestEnv(t)
	conf := &config.Config{JWTSecret: "test-secret"}
	return env, NewAuthService(env.authRepo, conf)
}

func signupTestUser(t *testing.T, svc AuthService, username string) *models.User {
	t.Helper()
	user, apiErr := svc.SignupUser(&models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Grace",
		LastName:  "Adeyemi",
		Password:  "sturdy-password",
	})
	require.Nil(t, apiErr)
	return user
}

func TestSignupAndLogin(t *testing.T) {
	_, svc := newAuthService(t)
	user := signupTestUser(t, svc, "grace")

	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.Enabled)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, user.HashedPassword)

	loginResponse, apiErr := svc.LoginUser(&models.LoginRequest{
		Email:    "grace@example.com",
		Password: "sturdy-password",
	})
	require.Nil(t, apiErr)
	assert.NotEmpty(t, loginResponse.AccessToken)
	assert.NotEmpty(t, loginResponse.RefreshToken)
	assert.Equal(t, user.ID, loginResponse.ID)

	_, apiErr = svc.LoginUser(&models.LoginRequest{
		Email:    "grace@example.com",
		Password: "wrong-password",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	_, svc := newAuthService(t)
	signupTestUser(t, svc, "grace")

	_, apiErr := svc.SignupUser(&models.User{
		Username:  "grace",
		Email:     "different@example.com",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "sturdy-password",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	_, apiErr = svc.SignupUser(&models.User{
		Username:  "different",
		Email:     "grace@example.com",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "sturdy-password",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	_, svc := newAuthService(t)
	_, apiErr := svc.SignupUser(&models.User{
		Username:  "grace",
		Email:     "grace@example.com",
		FirstName: "Grace",
		LastName:  "Adeyemi",
		Password:  "tiny",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	env, svc := newAuthService(t)
	user := signupTestUser(t, svc, "grace")

	require.NoError(t, env.gdb.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("enabled", false).Error)

	_, apiErr := svc.LoginUser(&models.LoginRequest{
		Email:    "grace@example.com",
		Password: "sturdy-password",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestChangePassword(t *testing.T) {
	_, svc := newAuthService(t)
	user := signupTestUser(t, svc, "grace")

	apiErr := svc.ChangePassword(user.ID, &models.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "next-password",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	require.Nil(t, svc.ChangePassword(user.ID, &models.ChangePasswordRequest{
		CurrentPassword: "sturdy-password",
		NewPassword:     "next-password",
	}))

	_, apiErr = svc.LoginUser(&models.LoginRequest{Email: "grace@example.com", Password: "next-password"})
	assert.Nil(t, apiErr)
}

func TestUpdateProfile(t *testing.T) {
	_, svc := newAuthService(t)
	user := signupTestUser(t, svc, "grace")
	signupTestUser(t, svc, "taken")

	_, apiErr := svc.UpdateProfile(user.ID, &models.EditProfileRequest{
		FirstName: "Grace",
		LastName:  "Adeyemi",
		Email:     "taken@example.com",
	})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	updated, apiErr := svc.UpdateProfile(user.ID, &models.EditProfileRequest{
		FirstName: "Amazing",
		LastName:  "Grace",
		Email:     "grace@example.com",
		Bio:       "Pray without ceasing",
	})
	require.Nil(t, apiErr)
	assert.Equal(t, "Amazing", updated.FirstName)
	assert.Equal(t, "Pray without ceasing", updated.Bio)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	env, svc := newAuthService(t)
	user := signupTestUser(t, svc, "grace")

	loginResponse, apiErr := svc.LoginUser(&models.LoginRequest{
		Email:    "grace@example.com",
		Password: "sturdy-password",
	})
	require.Nil(t, apiErr)

	require.Nil(t, svc.LogoutUser(user, loginResponse.AccessToken))
	assert.True(t, env.authRepo.TokenInBlacklist(loginResponse.AccessToken))
}
