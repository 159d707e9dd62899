package models

import (
	"strings"
	"time"
)

// Visibility controls which users may view a prayer request.
type Visibility string

const (
	VisibilityPublic    Visibility = "PUBLIC"
	VisibilityPrivate   Visibility = "PRIVATE"
	VisibilityGroupOnly Visibility = "GROUP_ONLY"
	VisibilityAdminOnly Visibility = "ADMIN_ONLY"
)

// ParseVisibility canonicalizes a visibility string; unknown values are rejected.
func ParseVisibility(s string) (Visibility, bool) {
	switch Visibility(strings.ToUpper(strings.TrimSpace(s))) {
	case VisibilityPublic:
		return VisibilityPublic, true
	case VisibilityPrivate:
		return VisibilityPrivate, true
	case VisibilityGroupOnly:
		return VisibilityGroupOnly, true
	case VisibilityAdminOnly:
		return VisibilityAdminOnly, true
	default:
		return "", false
	}
}

// PrayerRequest is a request for prayer shared on the portal.
type PrayerRequest struct {
	Model
	Title          string     `json:"title" gorm:"size:150;not null"`
	Description    string     `json:"description" gorm:"type:text;not null"`
	Visibility     Visibility `json:"visibility" gorm:"type:varchar(20);default:'PUBLIC';not null;index"`
	IsAnonymous    bool       `json:"is_anonymous"`
	IsAnswered     bool       `json:"is_answered" gorm:"default:false;index"`
	AnswerText     string     `json:"answer_text" gorm:"type:text"`
	AnsweredAt     *time.Time `json:"answered_at"`
	PrayedForCount int64      `json:"prayed_for_count" gorm:"default:0"`
	HasPrayed      bool       `json:"has_prayed" gorm:"-"`
	AuthorID       uint       `json:"author_id" gorm:"not null;index"`
	Author         User       `json:"author" gorm:"foreignKey:AuthorID"`
	GroupID        *uint      `json:"group_id" gorm:"index"`
	Group          *Group     `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	Comments       []Comment  `json:"comments,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// PrayerRequestInput is the payload for creating or updating a request.
type PrayerRequestInput struct {
	Title       string `json:"title" binding:"required,max=150" conform:"trim"`
	Description string `json:"description" binding:"required" conform:"trim"`
	Visibility  string `json:"visibility" conform:"trim,upper"`
	IsAnonymous bool   `json:"is_anonymous"`
	GroupID     *uint  `json:"group_id"`
}

// AnswerInput carries the testimony recorded when a request is marked answered.
type AnswerInput struct {
	AnswerText string `json:"answer_text" conform:"trim"`
}
