package db

import (
	"github.com/gracehq/prayerhub/models"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	CreateResource(resource *models.Resource) (*models.Resource, error)
	FindResourceByID(id uint) (*models.Resource, error)
	FindActiveResources(resourceType, search string, page, size int) ([]models.Resource, int64, error)
	FindAllResources() ([]models.Resource, error)
	UpdateResource(resource *models.Resource) error
	DeleteResource(id uint) error
}

type resourceRepo struct {
	DB *gorm.DB
}

func NewResourceRepo(db *GormDB) ResourceRepository {
	return &resourceRepo{db.DB}
}

func (r *resourceRepo) CreateResource(resource *models.Resource) (*models.Resource, error) {
	if err := r.DB.Create(resource).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

func (r *resourceRepo) FindResourceByID(id uint) (*models.Resource, error) {
	var resource models.Resource
	err := r.DB.First(&resource, id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepo) FindActiveResources(resourceType, search string, page, size int) ([]models.Resource, int64, error) {
	var resources []models.Resource
	var total int64

	query := r.DB.Model(&models.Resource{}).Where("active = ?", true)
	if resourceType != "" {
		query = query.Where("type = ?", resourceType)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("(title LIKE ? OR content LIKE ?)", like, like)
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
	err := query.Order("created_at desc").Offset((page - 1) * size).Limit(size).
		Find(&resources).Error
	if err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

func (r *resourceRepo) FindAllResources() ([]models.Resource, error) {
	var resources []models.Resource
	err := r.DB.Order("created_at desc").Find(&resources).Error
	return resources, err
}

func (r *resourceRepo) UpdateResource(resource *models.Resource) error {
	return r.DB.Model(&models.Resource{}).Where("id = ?", resource.ID).
		Updates(map[string]interface{}{
			"title":   resource.Title,
			"content": resource.Content,
			"type":    resource.Type,
			"author":  resource.Author,
			"active":  resource.Active,
		}).Error
}

func (r *resourceRepo) DeleteResource(id uint) error {
	return r.DB.Delete(&models.Resource{}, id).Error
}
