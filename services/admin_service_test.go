package services

import (
	"net/http"
	"testing"

	"github.com/gracehq/prayerhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAnalyticsCounters(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	supporter := createTestUser(t, env.gdb, "supporter")

	_, apiErr := env.groups.CreateGroup(&models.GroupInput{Name: "Circle"}, author.ID)
	require.Nil(t, apiErr)

	public, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title: "Public", Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)
	_, apiErr = env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title: "Private", Description: "desc", Visibility: "PRIVATE",
	}, author.ID)
	require.Nil(t, apiErr)

	_, apiErr = env.requests.MarkAnswered(public.ID, &models.AnswerInput{AnswerText: "done"}, author.ID, false)
	require.Nil(t, apiErr)
	require.Nil(t, env.requests.PrayForRequest(public.ID, supporter.ID))

	analytics, apiErr := env.admin.GetAnalytics()
	require.Nil(t, apiErr)
	assert.Equal(t, int64(2), analytics.TotalUsers)
	assert.Equal(t, int64(2), analytics.ActiveUsers)
	assert.Equal(t, int64(2), analytics.TotalRequests)
	assert.Equal(t, int64(1), analytics.AnsweredRequests)
	assert.Equal(t, int64(1), analytics.UnansweredRequests)
	assert.Equal(t, int64(1), analytics.PublicRequests)
	assert.Equal(t, int64(2), analytics.RequestsLast30Days)
	assert.Equal(t, int64(1), analytics.TotalGroups)
	assert.Equal(t, int64(1), analytics.TotalPrayersRecorded)
}

func TestToggleUserStatus(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.gdb, "member")

	disabled, apiErr := env.admin.ToggleUserStatus(user.ID)
	require.Nil(t, apiErr)
	assert.False(t, disabled.Enabled)

	// Disabled users stay reachable so they can be re-enabled.
	enabled, apiErr := env.admin.ToggleUserStatus(user.ID)
	require.Nil(t, apiErr)
	assert.True(t, enabled.Enabled)

	_, apiErr = env.admin.ToggleUserStatus(9999)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestUpdateUserRole(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.gdb, "member")

	promoted, apiErr := env.admin.UpdateUserRole(user.ID, "admin")
	require.Nil(t, apiErr)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	_, apiErr = env.admin.UpdateUserRole(user.ID, "SUPERUSER")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestListUsersSearch(t *testing.T) {
	env := newTestEnv(t)
	createTestUser(t, env.gdb, "grace")
	createTestUser(t, env.gdb, "peter")

	users, total, apiErr := env.admin.ListUsers("grace", 1, 20)
	require.Nil(t, apiErr)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "grace", users[0].Username)
}

func TestListAllRequestsVisibilityFilter(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")

	_, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title: "Public", Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)
	_, apiErr = env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title: "Private", Description: "desc", Visibility: "PRIVATE",
	}, author.ID)
	require.Nil(t, apiErr)

	requests, total, apiErr := env.admin.ListAllRequests("PRIVATE", 1, 20)
	require.Nil(t, apiErr)
	assert.Equal(t, int64(1), total)
	require.Len(t, requests, 1)
	assert.Equal(t, "Private", requests[0].Title)

	_, _, apiErr = env.admin.ListAllRequests("NONSENSE", 1, 20)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	_, total, apiErr = env.admin.ListAllRequests("", 1, 20)
	require.Nil(t, apiErr)
	assert.Equal(t, int64(2), total)
}
