package db

import (
	"github.com/gracehq/prayerhub/models"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	CreateNotification(n *models.Notification) error
	FindNotificationByID(id uint) (*models.Notification, error)
	FindNotificationsByUser(userID uint) ([]models.Notification, error)
	MarkRead(id uint) error
	MarkAllRead(userID uint) error
	DeleteRead(userID uint) error
	CountUnread(userID uint) (int64, error)
}

type notificationRepo struct {
	DB *gorm.DB
}

func NewNotificationRepo(db *GormDB) NotificationRepository {
	return &notificationRepo{db.DB}
}

func (n *notificationRepo) CreateNotification(notification *models.Notification) error {
	return n.DB.Create(notification).Error
}

func (n *notificationRepo) FindNotificationByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := n.DB.First(&notification, id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (n *notificationRepo) FindNotificationsByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := n.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (n *notificationRepo) MarkRead(id uint) error {
	return n.DB.Model(&models.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}

// MarkAllRead flips every unread row in one statement so rows created
// while the caller is reading are either included or left untouched,
// never half-updated.
func (n *notificationRepo) MarkAllRead(userID uint) error {
	return n.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (n *notificationRepo) DeleteRead(userID uint) error {
	return n.DB.Where("user_id = ? AND is_read = ?", userID, true).
		Delete(&models.Notification{}).Error
}

func (n *notificationRepo) CountUnread(userID uint) (int64, error) {
	var count int64
	err := n.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
