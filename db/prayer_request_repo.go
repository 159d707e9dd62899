package db

import (
	"time"

	"github.com/gracehq/prayerhub/models"
	"gorm.io/gorm"
)

// PrayerRequestRepository persists prayer requests. FindVisibleToUser applies
// the same predicate the visibility policy enforces on single reads, so the
// feed never leaks a request the caller could not open directly.
type PrayerRequestRepository interface {
	CreatePrayerRequest(request *models.PrayerRequest) (*models.PrayerRequest, error)
	FindPrayerRequestByID(id uint) (*models.PrayerRequest, error)
	UpdatePrayerRequest(request *models.PrayerRequest) error
	DeletePrayerRequest(id uint) error
	FindVisibleToUser(userID uint, search string, page, size int) ([]models.PrayerRequest, int64, error)
	FindByAuthor(authorID uint) ([]models.PrayerRequest, error)
	FindAnswered(userID uint) ([]models.PrayerRequest, error)
	FindByGroupID(groupID uint) ([]models.PrayerRequest, error)
	FindAll(visibility string, page, size int) ([]models.PrayerRequest, int64, error)
	CountAll() (int64, error)
	CountAnswered() (int64, error)
	CountPublic() (int64, error)
	CountCreatedAfter(t time.Time) (int64, error)
}

type prayerRequestRepo struct {
	DB *gorm.DB
}

func NewPrayerRequestRepo(db *GormDB) PrayerRequestRepository {
	return &prayerRequestRepo{db.DB}
}

func (p *prayerRequestRepo) CreatePrayerRequest(request *models.PrayerRequest) (*models.PrayerRequest, error) {
	err := p.DB.Create(request).Error
	if err != nil {
		return nil, err
	}
	return p.FindPrayerRequestByID(request.ID)
}

func (p *prayerRequestRepo) FindPrayerRequestByID(id uint) (*models.PrayerRequest, error) {
	var request models.PrayerRequest
	err := p.DB.Preload("Author").Preload("Group").Preload("Group.Members").
		Preload("Comments").Preload("Comments.Author").
		First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (p *prayerRequestRepo) UpdatePrayerRequest(request *models.PrayerRequest) error {
	return p.DB.Model(&models.PrayerRequest{}).Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"title":        request.Title,
			"description":  request.Description,
			"visibility":   request.Visibility,
			"is_anonymous": request.IsAnonymous,
			"group_id":     request.GroupID,
			"is_answered":  request.IsAnswered,
			"answer_text":  request.AnswerText,
			"answered_at":  request.AnsweredAt,
		}).Error
}

func (p *prayerRequestRepo) DeletePrayerRequest(id uint) error {
	return p.DB.Delete(&models.PrayerRequest{}, id).Error
}

// visibleClause matches exactly what the visibility policy allows: public
// rows, the caller's own private and admin-only rows, and group-only rows
// for groups the caller belongs to.
const visibleClause = `visibility = 'PUBLIC'
	OR (visibility IN ('PRIVATE','ADMIN_ONLY') AND author_id = ?)
	OR (visibility = 'GROUP_ONLY' AND group_id IN (SELECT group_id FROM group_members WHERE user_id = ?))`

func (p *prayerRequestRepo) FindVisibleToUser(userID uint, search string, page, size int) ([]models.PrayerRequest, int64, error) {
	var requests []models.PrayerRequest
	var total int64

	query := p.DB.Model(&models.PrayerRequest{}).
		Where(visibleClause, userID, userID)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("(title LIKE ? OR description LIKE ?)", like, like)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	err := query.Preload("Author").Preload("Group").
		Order("created_at desc").Offset((page - 1) * size).Limit(size).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (p *prayerRequestRepo) FindByAuthor(authorID uint) ([]models.PrayerRequest, error) {
	var requests []models.PrayerRequest
	err := p.DB.Preload("Author").Preload("Group").
		Where("author_id = ?", authorID).
		Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (p *prayerRequestRepo) FindAnswered(userID uint) ([]models.PrayerRequest, error) {
	var requests []models.PrayerRequest
	err := p.DB.Preload("Author").Preload("Group").
		Where("is_answered = ?", true).
		Where(visibleClause, userID, userID).
		Order("answered_at desc").Find(&requests).Error
	return requests, err
}

func (p *prayerRequestRepo) FindByGroupID(groupID uint) ([]models.PrayerRequest, error) {
	var requests []models.PrayerRequest
	err := p.DB.Preload("Author").Preload("Group").
		Where("group_id = ? AND visibility = ?", groupID, models.VisibilityGroupOnly).
		Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (p *prayerRequestRepo) FindAll(visibility string, page, size int) ([]models.PrayerRequest, int64, error) {
	var requests []models.PrayerRequest
	var total int64

	query := p.DB.Model(&models.PrayerRequest{})
	if visibility != "" {
		query = query.Where("visibility = ?", visibility)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	err := query.Preload("Author").Preload("Group").
		Order("created_at desc").Offset((page - 1) * size).Limit(size).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (p *prayerRequestRepo) CountAll() (int64, error) {
	var count int64
	err := p.DB.Model(&models.PrayerRequest{}).Count(&count).Error
	return count, err
}

func (p *prayerRequestRepo) CountAnswered() (int64, error) {
	var count int64
	err := p.DB.Model(&models.PrayerRequest{}).Where("is_answered = ?", true).Count(&count).Error
	return count, err
}

func (p *prayerRequestRepo) CountPublic() (int64, error) {
	var count int64
	err := p.DB.Model(&models.PrayerRequest{}).Where("visibility = ?", models.VisibilityPublic).Count(&count).Error
	return count, err
}

func (p *prayerRequestRepo) CountCreatedAfter(t time.Time) (int64, error) {
	var count int64
	err := p.DB.Model(&models.PrayerRequest{}).Where("created_at > ?", t).Count(&count).Error
	return count, err
}
