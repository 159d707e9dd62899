package models

// NotificationType labels what happened to produce a notification.
type NotificationType string

const (
	NotificationCommentReceived NotificationType = "COMMENT_RECEIVED"
	NotificationPrayerReceived  NotificationType = "PRAYER_RECEIVED"
)

// Notification is an in-app message delivered to a single recipient.
type Notification struct {
	Model
	UserID          uint             `json:"user_id" gorm:"not null;index"`
	Message         string           `json:"message" gorm:"type:text;not null"`
	Type            NotificationType `json:"type" gorm:"type:varchar(30);not null"`
	IsRead          bool             `json:"is_read" gorm:"default:false;index"`
	RelatedEntityID *uint            `json:"related_entity_id"`
}
