package db

import (
	"fmt"

	"github.com/gracehq/prayerhub/models"
	"gorm.io/gorm"
)

// GroupRepository owns group membership. Every membership mutation runs in
// a transaction that re-checks the join table, so the table stays the
// single source of truth.
type GroupRepository interface {
	CreateGroup(group *models.Group) (*models.Group, error)
	FindGroupByID(id uint) (*models.Group, error)
	UpdateGroup(group *models.Group) error
	ExistsByName(name string) (bool, error)
	IsMember(groupID, userID uint) (bool, error)
	AddMember(groupID, userID uint) error
	RemoveMember(groupID, userID uint) error
	DeleteGroup(id uint) error
	FindAllGroups(search string) ([]models.Group, error)
	FindGroupsByMemberID(userID uint) ([]models.Group, error)
	CountGroups() (int64, error)
}

type groupRepo struct {
	DB *gorm.DB
}

func NewGroupRepo(db *GormDB) GroupRepository {
	return &groupRepo{db.DB}
}

func (g *groupRepo) CreateGroup(group *models.Group) (*models.Group, error) {
	err := g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		// The leader joins their own group on creation.
		var leader models.User
		if err := tx.First(&leader, group.LeaderID).Error; err != nil {
			return err
		}
		return tx.Model(group).Association("Members").Append(&leader)
	})
	if err != nil {
		return nil, err
	}
	return g.FindGroupByID(group.ID)
}

func (g *groupRepo) FindGroupByID(id uint) (*models.Group, error) {
	var group models.Group
	err := g.DB.Preload("Leader").Preload("Members").First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (g *groupRepo) UpdateGroup(group *models.Group) error {
	return g.DB.Model(&models.Group{}).Where("id = ?", group.ID).
		Updates(map[string]interface{}{
			"name":        group.Name,
			"description": group.Description,
		}).Error
}

func (g *groupRepo) ExistsByName(name string) (bool, error) {
	var count int64
	err := g.DB.Model(&models.Group{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (g *groupRepo) IsMember(groupID, userID uint) (bool, error) {
	var count int64
	err := g.DB.Table("group_members").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (g *groupRepo) AddMember(groupID, userID uint) error {
	return g.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("group_members").
			Where("group_id = ? AND user_id = ?", groupID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyMember
		}
		return tx.Exec("INSERT INTO group_members (group_id, user_id) VALUES (?, ?)", groupID, userID).Error
	})
}

func (g *groupRepo) RemoveMember(groupID, userID uint) error {
	return g.DB.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.First(&group, groupID).Error; err != nil {
			return err
		}
		if group.LeaderID == userID {
			return ErrLeaderCannotLeave
		}
		var count int64
		if err := tx.Table("group_members").
			Where("group_id = ? AND user_id = ?", groupID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotMember
		}
		return tx.Exec("DELETE FROM group_members WHERE group_id = ? AND user_id = ?", groupID, userID).Error
	})
}

func (g *groupRepo) DeleteGroup(id uint) error {
	return g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM group_members WHERE group_id = ?", id).Error; err != nil {
			return err
		}
		// Detach the group's requests; they fall back to the author's
		// private view instead of dangling on a deleted group.
		if err := tx.Model(&models.PrayerRequest{}).
			Where("group_id = ?", id).
			Updates(map[string]interface{}{
				"group_id":   nil,
				"visibility": models.VisibilityPrivate,
			}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Group{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("group %d not found", id)
		}
		return nil
	})
}

func (g *groupRepo) FindAllGroups(search string) ([]models.Group, error) {
	var groups []models.Group
	query := g.DB.Preload("Leader").Preload("Members")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	err := query.Order("created_at desc").Find(&groups).Error
	return groups, err
}

func (g *groupRepo) FindGroupsByMemberID(userID uint) ([]models.Group, error) {
	var groups []models.Group
	err := g.DB.Preload("Leader").Preload("Members").
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Find(&groups).Error
	return groups, err
}

func (g *groupRepo) CountGroups() (int64, error) {
	var count int64
	err := g.DB.Model(&models.Group{}).Count(&count).Error
	return count, err
}
