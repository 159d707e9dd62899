package services

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gracehq/prayerhub/db"
	"github.com/gracehq/prayerhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchAndWait(t *testing.T, env *testEnv, userID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		env.notifications.Dispatch(&models.Notification{
			UserID:  userID,
			Message: "test notification",
			Type:    models.NotificationPrayerReceived,
		})
	}
	require.Eventually(t, func() bool {
		notifications, err := env.notificationRepo.FindNotificationsByUser(userID)
		return err == nil && len(notifications) == n
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDispatchPersistsNotification(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.gdb, "recipient")

	dispatchAndWait(t, env, user.ID, 1)

	notifications, apiErr := env.notifications.ListNotifications(user.ID)
	require.Nil(t, apiErr)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].IsRead)
}

func TestMarkReadOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := createTestUser(t, env.gdb, "owner")
	other := createTestUser(t, env.gdb, "other")

	dispatchAndWait(t, env, owner.ID, 1)
	notifications, apiErr := env.notifications.ListNotifications(owner.ID)
	require.Nil(t, apiErr)
	require.Len(t, notifications, 1)

	apiErr = env.notifications.MarkRead(notifications[0].ID, other.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	require.Nil(t, env.notifications.MarkRead(notifications[0].ID, owner.ID))

	count, apiErr := env.notifications.UnreadCount(owner.ID)
	require.Nil(t, apiErr)
	assert.Equal(t, int64(0), count)

	apiErr = env.notifications.MarkRead(9999, owner.ID)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestMarkAllReadAndClearRead(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.gdb, "recipient")

	dispatchAndWait(t, env, user.ID, 3)

	count, apiErr := env.notifications.UnreadCount(user.ID)
	require.Nil(t, apiErr)
	assert.Equal(t, int64(3), count)

	require.Nil(t, env.notifications.MarkAllRead(user.ID))
	count, apiErr = env.notifications.UnreadCount(user.ID)
	require.Nil(t, apiErr)
	assert.Equal(t, int64(0), count)

	require.Nil(t, env.notifications.ClearRead(user.ID))
	notifications, apiErr := env.notifications.ListNotifications(user.ID)
	require.Nil(t, apiErr)
	assert.Empty(t, notifications)
}

func TestDispatchAfterStopIsDropped(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.gdb, "recipient")

	env.notifications.Stop()
	env.notifications.Dispatch(&models.Notification{
		UserID:  user.ID,
		Message: "too late",
		Type:    models.NotificationPrayerReceived,
	})

	notifications, err := env.notificationRepo.FindNotificationsByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestDispatchConcurrentWithStopDoesNotPanic(t *testing.T) {
	gdb := newTestDB(t)
	repo := db.NewNotificationRepo(gdb)

	svc := NewNotificationService(repo, 4)
	svc.Start()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				svc.Dispatch(&models.Notification{
					UserID:  1,
					Message: "racing",
					Type:    models.NotificationPrayerReceived,
				})
			}
		}()
	}
	svc.Stop()
	wg.Wait()
}

func TestDispatchFullQueueDoesNotBlock(t *testing.T) {
	gdb := newTestDB(t)
	repo := db.NewNotificationRepo(gdb)

	// Worker never started, so the queue fills and overflow is dropped
	// without blocking the caller.
	svc := NewNotificationService(repo, 2)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			svc.Dispatch(&models.Notification{
				UserID:  1,
				Message: "burst",
				Type:    models.NotificationPrayerReceived,
			})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	svc.Start()
	svc.Stop()

	notifications, err := repo.FindNotificationsByUser(1)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}
