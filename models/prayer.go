package models

import "time"

// Prayer records that a user prayed for a request. The composite unique
// index keeps a user to at most one prayer per request even under
// concurrent inserts.
type Prayer struct {
	ID              string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID          uint          `json:"user_id" gorm:"not null;uniqueIndex:idx_prayers_user_request"`
	User            User          `json:"-" gorm:"foreignKey:UserID"`
	PrayerRequestID uint          `json:"prayer_request_id" gorm:"not null;uniqueIndex:idx_prayers_user_request"`
	PrayerRequest   PrayerRequest `json:"-" gorm:"foreignKey:PrayerRequestID"`
	PrayedAt        time.Time     `json:"prayed_at"`
}
