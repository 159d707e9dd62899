package models

// Comment is an encouragement left on a prayer request.
type Comment struct {
	Model
	Content         string        `json:"content" gorm:"type:text;not null"`
	AuthorID        uint          `json:"author_id" gorm:"not null;index"`
	Author          User          `json:"author" gorm:"foreignKey:AuthorID"`
	PrayerRequestID uint          `json:"prayer_request_id" gorm:"not null;index"`
	PrayerRequest   PrayerRequest `json:"-" gorm:"foreignKey:PrayerRequestID"`
}

type CommentInput struct {
	Content string `json:"content" binding:"required" conform:"trim"`
}
