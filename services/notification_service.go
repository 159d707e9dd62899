package services

import (
	"sync"

	"github.com/gracehq/prayerhub/db"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/models"
)

// NotificationService creates notifications off the request path and serves
// the recipient's inbox. Dispatch is at-most-once: a full queue or a write
// failure drops the notification with a log line, it is never retried and
// never fails the triggering request.
type NotificationService interface {
	Dispatch(n *models.Notification)
	Start()
	Stop()
	ListNotifications(userID uint) ([]models.Notification, *apiError.Error)
	UnreadCount(userID uint) (int64, *apiError.Error)
	MarkRead(notificationID, userID uint) *apiError.Error
	MarkAllRead(userID uint) *apiError.Error
	ClearRead(userID uint) *apiError.Error
}

type notificationService struct {
	notificationRepo db.NotificationRepository
	queue            chan *models.Notification
	wg               sync.WaitGroup
	stopOnce         sync.Once

	// mu orders Dispatch sends against the close in Stop so a late
	// Dispatch drops instead of sending on a closed channel.
	mu      sync.RWMutex
	stopped bool
}

func NewNotificationService(notificationRepo db.NotificationRepository, queueSize int) NotificationService {
	if queueSize < 1 {
		queueSize = 256
	}
	return &notificationService{
		notificationRepo: notificationRepo,
		queue:            make(chan *models.Notification, queueSize),
	}
}

func (n *notificationService) Start() {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		for notification := range n.queue {
			if err := n.notificationRepo.CreateNotification(notification); err != nil {
				logging.ErrorLogger.Printf("dropping notification for user %d: %v", notification.UserID, err)
			}
		}
	}()
}

// Stop closes the queue and waits for the worker to drain what was already
// enqueued. Dispatch calls after or concurrent with Stop are dropped.
func (n *notificationService) Stop() {
	n.stopOnce.Do(func() {
		n.mu.Lock()
		n.stopped = true
		close(n.queue)
		n.mu.Unlock()
		n.wg.Wait()
	})
}

func (n *notificationService) Dispatch(notification *models.Notification) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.stopped {
		logging.ErrorLogger.Printf("dispatcher stopped, dropping notification for user %d", notification.UserID)
		return
	}
	select {
	case n.queue <- notification:
	default:
		logging.ErrorLogger.Printf("notification queue full, dropping notification for user %d", notification.UserID)
	}
}

func (n *notificationService) ListNotifications(userID uint) ([]models.Notification, *apiError.Error) {
	notifications, err := n.notificationRepo.FindNotificationsByUser(userID)
	if err != nil {
		logging.ErrorLogger.Printf("error listing notifications: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return notifications, nil
}

func (n *notificationService) UnreadCount(userID uint) (int64, *apiError.Error) {
	count, err := n.notificationRepo.CountUnread(userID)
	if err != nil {
		logging.ErrorLogger.Printf("error counting unread notifications: %v", err)
		return 0, apiError.ErrInternalServerError
	}
	return count, nil
}

func (n *notificationService) MarkRead(notificationID, userID uint) *apiError.Error {
	notification, err := n.notificationRepo.FindNotificationByID(notificationID)
	if err != nil {
		return apiError.ErrNotFound
	}
	if notification.UserID != userID {
		return apiError.ErrForbidden
	}
	if err := n.notificationRepo.MarkRead(notificationID); err != nil {
		logging.ErrorLogger.Printf("error marking notification read: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (n *notificationService) MarkAllRead(userID uint) *apiError.Error {
	if err := n.notificationRepo.MarkAllRead(userID); err != nil {
		logging.ErrorLogger.Printf("error marking notifications read: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (n *notificationService) ClearRead(userID uint) *apiError.Error {
	if err := n.notificationRepo.DeleteRead(userID); err != nil {
		logging.ErrorLogger.Printf("error clearing read notifications: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
