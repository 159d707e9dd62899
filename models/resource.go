package models

import "strings"

// ResourceType categorizes a published spiritual resource.
type ResourceType string

const (
	ResourceDevotional ResourceType = "DEVOTIONAL"
	ResourceScripture  ResourceType = "SCRIPTURE"
	ResourceArticle    ResourceType = "ARTICLE"
	ResourceGuide      ResourceType = "GUIDE"
)

func ParseResourceType(s string) (ResourceType, bool) {
	switch ResourceType(strings.ToUpper(strings.TrimSpace(s))) {
	case ResourceDevotional:
		return ResourceDevotional, true
	case ResourceScripture:
		return ResourceScripture, true
	case ResourceArticle:
		return ResourceArticle, true
	case ResourceGuide:
		return ResourceGuide, true
	default:
		return "", false
	}
}

// Resource is admin-curated devotional content. Only active resources
// show on the public surface; admins see all of them.
type Resource struct {
	Model
	Title   string       `json:"title" gorm:"size:150;not null"`
	Content string       `json:"content" gorm:"type:text;not null"`
	Type    ResourceType `json:"type" gorm:"type:varchar(20);not null"`
	Author  string       `json:"author" gorm:"size:100"`
	Active  bool         `json:"active" gorm:"default:true"`
}

type ResourceInput struct {
	Title   string `json:"title" binding:"required,max=150" conform:"trim"`
	Content string `json:"content" binding:"required" conform:"trim"`
	Type    string `json:"type" binding:"required" conform:"trim,upper"`
	Author  string `json:"author" conform:"trim"`
	Active  *bool  `json:"active"`
}
