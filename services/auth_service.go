package services

import (
	"net/http"
	"time"

	"github.com/gracehq/prayerhub/config"
	"github.com/gracehq/prayerhub/db"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/services/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup, login, logout and profile maintenance.
type AuthService interface {
	SignupUser(request *models.User) (*models.User, *apiError.Error)
	LoginUser(request *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
	LogoutUser(user *models.User, token string) *apiError.Error
	GetProfile(userID uint) (*models.User, *apiError.Error)
	UpdateProfile(userID uint, request *models.EditProfileRequest) (*models.User, *apiError.Error)
	ChangePassword(userID uint, request *models.ChangePasswordRequest) *apiError.Error
}

type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
}

func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
	}
}

func (a *authService) SignupUser(user *models.User) (*models.User, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(user); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	if err := a.authRepo.IsEmailExist(user.Email); err != nil {
		return nil, apiError.New("email already in use", http.StatusConflict)
	}
	if err := a.authRepo.IsUsernameExist(user.Username); err != nil {
		return nil, apiError.New("username already in use", http.StatusConflict)
	}
	if err := models.ValidatePassword(user.Password); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logging.ErrorLogger.Printf("error generating password hash: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user.HashedPassword = string(hashedPassword)
	user.Password = ""
	user.Role = models.RoleUser
	user.Enabled = true

	created, err := a.authRepo.CreateUser(user)
	if err != nil {
		logging.ErrorLogger.Printf("error creating user: %v", err)
		return nil, apiError.GetUniqueContraintError(err)
	}
	return created, nil
}

func (a *authService) LoginUser(request *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	user, err := a.authRepo.FindUserByEmail(request.Email)
	if err != nil {
		if err == apiError.InActiveUserError {
			return nil, apiError.InActiveUserError
		}
		return nil, apiError.ErrInvalidPassword
	}
	if err := user.VerifyPassword(request.Password); err != nil {
		return nil, apiError.ErrInvalidPassword
	}

	accessToken, refreshToken, err := jwt.GenerateTokenPair(user.Email, a.Config.JWTSecret, user.IsAdmin(), user.ID, string(user.Role))
	if err != nil {
		logging.ErrorLogger.Printf("error generating token pair: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := a.authRepo.UpdateUser(user); err != nil {
		logging.ErrorLogger.Printf("error recording login time: %v", err)
	}

	return &models.LoginResponse{
		UserResponse: models.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authService) LogoutUser(user *models.User, token string) *apiError.Error {
	blacklist := &models.Blacklist{
		Email: user.Email,
		Token: token,
	}
	if err := a.authRepo.AddToBlackList(blacklist); err != nil {
		logging.ErrorLogger.Printf("error blacklisting token: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (a *authService) GetProfile(userID uint) (*models.User, *apiError.Error) {
	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	return user, nil
}

func (a *authService) UpdateProfile(userID uint, request *models.EditProfileRequest) (*models.User, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(request); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	if request.Email != user.Email {
		if err := a.authRepo.IsEmailExist(request.Email); err != nil {
			return nil, apiError.New("email already in use", http.StatusConflict)
		}
	}
	user.FirstName = request.FirstName
	user.LastName = request.LastName
	user.Email = request.Email
	user.Bio = request.Bio
	if err := a.authRepo.UpdateUser(user); err != nil {
		logging.ErrorLogger.Printf("error updating profile: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return a.GetProfile(userID)
}

func (a *authService) ChangePassword(userID uint, request *models.ChangePasswordRequest) *apiError.Error {
	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		return apiError.ErrNotFound
	}
	if err := user.VerifyPassword(request.CurrentPassword); err != nil {
		return apiError.New("current password is incorrect", http.StatusBadRequest)
	}
	if err := models.ValidatePassword(request.NewPassword); err != nil {
		return apiError.New(err.Error(), http.StatusBadRequest)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logging.ErrorLogger.Printf("error generating password hash: %v", err)
		return apiError.ErrInternalServerError
	}
	if err := a.authRepo.UpdatePassword(string(hashedPassword), userID); err != nil {
		logging.ErrorLogger.Printf("error updating password: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
