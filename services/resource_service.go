package services

import (
	"net/http"

	"github.com/gracehq/prayerhub/db"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/models"
)

// ResourceService serves devotional resources. Reads are public to any
// authenticated user; writes are admin-only, gated at the transport layer.
type ResourceService interface {
	CreateResource(input *models.ResourceInput) (*models.Resource, *apiError.Error)
	GetResource(resourceID uint) (*models.Resource, *apiError.Error)
	ListActiveResources(resourceType, search string, page, size int) ([]models.Resource, int64, *apiError.Error)
	ListAllResources() ([]models.Resource, *apiError.Error)
	UpdateResource(resourceID uint, input *models.ResourceInput) (*models.Resource, *apiError.Error)
	DeleteResource(resourceID uint) *apiError.Error
}

type resourceService struct {
	resourceRepo db.ResourceRepository
}

func NewResourceService(resourceRepo db.ResourceRepository) ResourceService {
	return &resourceService{resourceRepo: resourceRepo}
}

func (r *resourceService) CreateResource(input *models.ResourceInput) (*models.Resource, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	resourceType, ok := models.ParseResourceType(input.Type)
	if !ok {
		return nil, apiError.New("type must be DEVOTIONAL, SCRIPTURE, ARTICLE or GUIDE", http.StatusBadRequest)
	}

	resource := &models.Resource{
		Title:   input.Title,
		Content: input.Content,
		Type:    resourceType,
		Author:  input.Author,
		Active:  true,
	}
	if input.Active != nil {
		resource.Active = *input.Active
	}
	created, err := r.resourceRepo.CreateResource(resource)
	if err != nil {
		logging.ErrorLogger.Printf("error creating resource: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return created, nil
}

func (r *resourceService) GetResource(resourceID uint) (*models.Resource, *apiError.Error) {
	resource, err := r.resourceRepo.FindResourceByID(resourceID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	return resource, nil
}

func (r *resourceService) ListActiveResources(resourceType, search string, page, size int) ([]models.Resource, int64, *apiError.Error) {
	if resourceType != "" {
		parsed, ok := models.ParseResourceType(resourceType)
		if !ok {
			return nil, 0, apiError.New("invalid resource type", http.StatusBadRequest)
		}
		resourceType = string(parsed)
	}
	resources, total, err := r.resourceRepo.FindActiveResources(resourceType, search, page, size)
	if err != nil {
		logging.ErrorLogger.Printf("error listing resources: %v", err)
		return nil, 0, apiError.ErrInternalServerError
	}
	return resources, total, nil
}

func (r *resourceService) ListAllResources() ([]models.Resource, *apiError.Error) {
	resources, err := r.resourceRepo.FindAllResources()
	if err != nil {
		logging.ErrorLogger.Printf("error listing resources: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return resources, nil
}

func (r *resourceService) UpdateResource(resourceID uint, input *models.ResourceInput) (*models.Resource, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	resourceType, ok := models.ParseResourceType(input.Type)
	if !ok {
		return nil, apiError.New("type must be DEVOTIONAL, SCRIPTURE, ARTICLE or GUIDE", http.StatusBadRequest)
	}
	resource, err := r.resourceRepo.FindResourceByID(resourceID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	resource.Title = input.Title
	resource.Content = input.Content
	resource.Type = resourceType
	resource.Author = input.Author
	if input.Active != nil {
		resource.Active = *input.Active
	}
	if err := r.resourceRepo.UpdateResource(resource); err != nil {
		logging.ErrorLogger.Printf("error updating resource: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return resource, nil
}

func (r *resourceService) DeleteResource(resourceID uint) *apiError.Error {
	if _, err := r.resourceRepo.FindResourceByID(resourceID); err != nil {
		return apiError.ErrNotFound
	}
	if err := r.resourceRepo.DeleteResource(resourceID); err != nil {
		logging.ErrorLogger.Printf("error deleting resource: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
