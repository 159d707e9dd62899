package db

import (
	"github.com/gracehq/prayerhub/models"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *models.Comment) (*models.Comment, error)
	FindCommentByID(id uint) (*models.Comment, error)
	FindCommentsByRequestID(requestID uint, page, size int) ([]models.Comment, int64, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
	CountComments() (int64, error)
}

type commentRepo struct {
	DB *gorm.DB
}

func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func (c *commentRepo) CreateComment(comment *models.Comment) (*models.Comment, error) {
	if err := c.DB.Create(comment).Error; err != nil {
		return nil, err
	}
	return c.FindCommentByID(comment.ID)
}

func (c *commentRepo) FindCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := c.DB.Preload("Author").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *commentRepo) FindCommentsByRequestID(requestID uint, page, size int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	query := c.DB.Model(&models.Comment{}).Where("prayer_request_id = ?", requestID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	err := query.Preload("Author").
		Order("created_at asc").Offset((page - 1) * size).Limit(size).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (c *commentRepo) UpdateComment(comment *models.Comment) error {
	return c.DB.Model(&models.Comment{}).Where("id = ?", comment.ID).
		Update("content", comment.Content).Error
}

func (c *commentRepo) DeleteComment(id uint) error {
	return c.DB.Delete(&models.Comment{}, id).Error
}

func (c *commentRepo) CountComments() (int64, error) {
	var count int64
	err := c.DB.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
