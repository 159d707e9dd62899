package services

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gracehq/prayerhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePrayerRequestDefaultsToPublic(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Healing",
		Description: "Please pray for my recovery",
	}, author.ID)
	require.Nil(t, apiErr)
	assert.Equal(t, models.VisibilityPublic, request.Visibility)
	assert.Equal(t, author.ID, request.AuthorID)
}

func TestCreatePrayerRequestRejectsUnknownVisibility(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")

	_, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Healing",
		Description: "desc",
		Visibility:  "FRIENDS_ONLY",
	}, author.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestCreatePrayerRequestGroupAttachment(t *testing.T) {
	env := newTestEnv(t)
	leader := createTestUser(t, env.gdb, "leader")
	outsider := createTestUser(t, env.gdb, "outsider")

	group, apiErr := env.groups.CreateGroup(&models.GroupInput{Name: "Youth"}, leader.ID)
	require.Nil(t, apiErr)

	// A member's group reference sticks and forces GROUP_ONLY.
	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Exams",
		Description: "desc",
		GroupID:     &group.ID,
	}, leader.ID)
	require.Nil(t, apiErr)
	require.NotNil(t, request.GroupID)
	assert.Equal(t, group.ID, *request.GroupID)
	assert.Equal(t, models.VisibilityGroupOnly, request.Visibility)

	// A non-member's group reference is dropped silently.
	request, apiErr = env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Travel",
		Description: "desc",
		GroupID:     &group.ID,
	}, outsider.ID)
	require.Nil(t, apiErr)
	assert.Nil(t, request.GroupID)
	assert.Equal(t, models.VisibilityPublic, request.Visibility)
}

func TestGetPrayerRequestEnforcesVisibility(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	other := createTestUser(t, env.gdb, "other")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Private matter",
		Description: "desc",
		Visibility:  "PRIVATE",
	}, author.ID)
	require.Nil(t, apiErr)

	_, apiErr = env.requests.GetPrayerRequest(request.ID, author.ID)
	assert.Nil(t, apiErr)

	_, apiErr = env.requests.GetPrayerRequest(request.ID, other.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	_, apiErr = env.requests.GetPrayerRequest(9999, author.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestListVisibleMatchesSingleReadPolicy(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	member := createTestUser(t, env.gdb, "member")
	outsider := createTestUser(t, env.gdb, "outsider")

	group, apiErr := env.groups.CreateGroup(&models.GroupInput{Name: "Circle"}, author.ID)
	require.Nil(t, apiErr)
	require.Nil(t, env.groups.JoinGroup(group.ID, member.ID))

	mk := func(title, visibility string, groupID *uint) {
		_, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
			Title:       title,
			Description: "desc",
			Visibility:  visibility,
			GroupID:     groupID,
		}, author.ID)
		require.Nil(t, apiErr)
	}
	mk("public one", "PUBLIC", nil)
	mk("private one", "PRIVATE", nil)
	mk("admin only one", "ADMIN_ONLY", nil)
	mk("group one", "", &group.ID)

	titles := func(userID uint) map[string]bool {
		requests, _, apiErr := env.requests.ListVisible(userID, "", 1, 50)
		require.Nil(t, apiErr)
		got := map[string]bool{}
		for _, r := range requests {
			got[r.Title] = true
		}
		return got
	}

	authorTitles := titles(author.ID)
	assert.True(t, authorTitles["public one"])
	assert.True(t, authorTitles["private one"])
	assert.True(t, authorTitles["admin only one"])
	assert.True(t, authorTitles["group one"])

	memberTitles := titles(member.ID)
	assert.True(t, memberTitles["public one"])
	assert.False(t, memberTitles["private one"])
	assert.False(t, memberTitles["admin only one"])
	assert.True(t, memberTitles["group one"])

	outsiderTitles := titles(outsider.ID)
	assert.True(t, outsiderTitles["public one"])
	assert.False(t, outsiderTitles["private one"])
	assert.False(t, outsiderTitles["admin only one"])
	assert.False(t, outsiderTitles["group one"])
}

func TestPrayForRequestRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	supporter := createTestUser(t, env.gdb, "supporter")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Job search",
		Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)

	require.Nil(t, env.requests.PrayForRequest(request.ID, supporter.ID))

	apiErr = env.requests.PrayForRequest(request.ID, supporter.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	updated, gerr := env.requestRepo.FindPrayerRequestByID(request.ID)
	require.NoError(t, gerr)
	assert.Equal(t, int64(1), updated.PrayedForCount)
}

func TestPrayForRequestConcurrentDuplicates(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	supporter := createTestUser(t, env.gdb, "supporter")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Surgery",
		Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if apiErr := env.requests.PrayForRequest(request.ID, supporter.ID); apiErr != nil {
				results <- apiErr
			} else {
				results <- nil
			}
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		}
	}
	assert.Equal(t, 1, successes)

	updated, gerr := env.requestRepo.FindPrayerRequestByID(request.ID)
	require.NoError(t, gerr)
	assert.Equal(t, int64(1), updated.PrayedForCount)
}

func TestPrayForRequestRequiresOnlyExistence(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	other := createTestUser(t, env.gdb, "other")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Private matter",
		Description: "desc",
		Visibility:  "PRIVATE",
	}, author.ID)
	require.Nil(t, apiErr)

	// Praying is not gated on visibility, only on the request existing.
	require.Nil(t, env.requests.PrayForRequest(request.ID, other.ID))

	updated, err := env.requestRepo.FindPrayerRequestByID(request.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.PrayedForCount)

	apiErr = env.requests.PrayForRequest(9999, other.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestPrayForRequestNotifiesAuthor(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	supporter := createTestUser(t, env.gdb, "supporter")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Family",
		Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)

	require.Nil(t, env.requests.PrayForRequest(request.ID, supporter.ID))

	require.Eventually(t, func() bool {
		notifications, err := env.notificationRepo.FindNotificationsByUser(author.ID)
		return err == nil && len(notifications) == 1
	}, 2*time.Second, 10*time.Millisecond)

	notifications, err := env.notificationRepo.FindNotificationsByUser(author.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationPrayerReceived, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "prayed for your request")
	require.NotNil(t, notifications[0].RelatedEntityID)
	assert.Equal(t, request.ID, *notifications[0].RelatedEntityID)
}

func TestGetPrayerRequestReportsHasPrayed(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	supporter := createTestUser(t, env.gdb, "supporter")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Provision",
		Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)

	require.Nil(t, env.requests.PrayForRequest(request.ID, supporter.ID))

	fromSupporter, apiErr := env.requests.GetPrayerRequest(request.ID, supporter.ID)
	require.Nil(t, apiErr)
	assert.True(t, fromSupporter.HasPrayed)

	fromAuthor, apiErr := env.requests.GetPrayerRequest(request.ID, author.ID)
	require.Nil(t, apiErr)
	assert.False(t, fromAuthor.HasPrayed)
}

func TestPrayForOwnRequestDoesNotNotify(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Gratitude",
		Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)

	require.Nil(t, env.requests.PrayForRequest(request.ID, author.ID))
	env.notifications.Stop()

	notifications, err := env.notificationRepo.FindNotificationsByUser(author.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestMarkAnsweredAuthorizationAndOverwrite(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	other := createTestUser(t, env.gdb, "other")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "New home",
		Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)

	_, apiErr = env.requests.MarkAnswered(request.ID, &models.AnswerInput{AnswerText: "nope"}, other.ID, false)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	answered, apiErr := env.requests.MarkAnswered(request.ID, &models.AnswerInput{AnswerText: "We found a place"}, author.ID, false)
	require.Nil(t, apiErr)
	assert.True(t, answered.IsAnswered)
	assert.Equal(t, "We found a place", answered.AnswerText)
	require.NotNil(t, answered.AnsweredAt)
	firstAnsweredAt := *answered.AnsweredAt

	// Repeating the call overwrites the testimony.
	answered, apiErr = env.requests.MarkAnswered(request.ID, &models.AnswerInput{AnswerText: "Even better than hoped"}, author.ID, false)
	require.Nil(t, apiErr)
	assert.Equal(t, "Even better than hoped", answered.AnswerText)
	require.NotNil(t, answered.AnsweredAt)
	assert.True(t, !answered.AnsweredAt.Before(firstAnsweredAt))

	// An admin may answer on the author's behalf.
	_, apiErr = env.requests.MarkAnswered(request.ID, &models.AnswerInput{AnswerText: "moderated"}, other.ID, true)
	assert.Nil(t, apiErr)
}

func TestUpdatePrayerRequestAuthorization(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	other := createTestUser(t, env.gdb, "other")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Old title",
		Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)

	_, apiErr = env.requests.UpdatePrayerRequest(request.ID, &models.PrayerRequestInput{
		Title:       "Hijacked",
		Description: "desc",
	}, other.ID, false)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	updated, apiErr := env.requests.UpdatePrayerRequest(request.ID, &models.PrayerRequestInput{
		Title:       "New title",
		Description: "new desc",
		Visibility:  "PRIVATE",
	}, author.ID, false)
	require.Nil(t, apiErr)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, models.VisibilityPrivate, updated.Visibility)

	// GROUP_ONLY needs an attached group.
	_, apiErr = env.requests.UpdatePrayerRequest(request.ID, &models.PrayerRequestInput{
		Title:       "New title",
		Description: "new desc",
		Visibility:  "GROUP_ONLY",
	}, author.ID, false)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestDeletePrayerRequestAuthorization(t *testing.T) {
	env := newTestEnv(t)
	author := createTestUser(t, env.gdb, "author")
	other := createTestUser(t, env.gdb, "other")

	request, apiErr := env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Short lived",
		Description: "desc",
	}, author.ID)
	require.Nil(t, apiErr)

	apiErr = env.requests.DeletePrayerRequest(request.ID, other.ID, false)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	require.Nil(t, env.requests.DeletePrayerRequest(request.ID, other.ID, true))

	_, apiErr = env.requests.GetPrayerRequest(request.ID, author.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestListByGroupMembersOnly(t *testing.T) {
	env := newTestEnv(t)
	leader := createTestUser(t, env.gdb, "leader")
	outsider := createTestUser(t, env.gdb, "outsider")

	group, apiErr := env.groups.CreateGroup(&models.GroupInput{Name: "Intercessors"}, leader.ID)
	require.Nil(t, apiErr)

	_, apiErr = env.requests.CreatePrayerRequest(&models.PrayerRequestInput{
		Title:       "Group need",
		Description: "desc",
		GroupID:     &group.ID,
	}, leader.ID)
	require.Nil(t, apiErr)

	requests, apiErr := env.requests.ListByGroup(group.ID, leader.ID)
	require.Nil(t, apiErr)
	assert.Len(t, requests, 1)

	_, apiErr = env.requests.ListByGroup(group.ID, outsider.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}
