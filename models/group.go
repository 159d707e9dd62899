package models

// Group is a fellowship circle whose membership gates GROUP_ONLY requests.
// The group_members join table is the single source of truth for membership.
type Group struct {
	Model
	Name        string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
	LeaderID    uint   `json:"leader_id" gorm:"not null"`
	Leader      User   `json:"leader" gorm:"foreignKey:LeaderID"`
	Members     []User `json:"members,omitempty" gorm:"many2many:group_members;"`
}

type GroupInput struct {
	Name        string `json:"name" binding:"required,max=100" conform:"trim"`
	Description string `json:"description" conform:"trim"`
}
