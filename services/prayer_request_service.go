package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gracehq/prayerhub/db"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/models"
)

// PrayerRequestService coordinates every mutation on prayer requests.
// Each operation takes the acting user explicitly and follows the same
// shape: fetch, authorize, mutate, persist, fan out notifications.
type PrayerRequestService interface {
	CreatePrayerRequest(input *models.PrayerRequestInput, actorID uint) (*models.PrayerRequest, *apiError.Error)
	GetPrayerRequest(requestID, actorID uint) (*models.PrayerRequest, *apiError.Error)
	ListVisible(actorID uint, search string, page, size int) ([]models.PrayerRequest, int64, *apiError.Error)
	ListMine(actorID uint) ([]models.PrayerRequest, *apiError.Error)
	ListAnswered(actorID uint) ([]models.PrayerRequest, *apiError.Error)
	ListByGroup(groupID, actorID uint) ([]models.PrayerRequest, *apiError.Error)
	UpdatePrayerRequest(requestID uint, input *models.PrayerRequestInput, actorID uint, isAdmin bool) (*models.PrayerRequest, *apiError.Error)
	PrayForRequest(requestID, actorID uint) *apiError.Error
	MarkAnswered(requestID uint, input *models.AnswerInput, actorID uint, isAdmin bool) (*models.PrayerRequest, *apiError.Error)
	DeletePrayerRequest(requestID, actorID uint, isAdmin bool) *apiError.Error
}

type prayerRequestService struct {
	requestRepo         db.PrayerRequestRepository
	groupRepo           db.GroupRepository
	prayerRepo          db.PrayerRepository
	authRepo            db.AuthRepository
	notificationService NotificationService
}

func NewPrayerRequestService(requestRepo db.PrayerRequestRepository, groupRepo db.GroupRepository,
	prayerRepo db.PrayerRepository, authRepo db.AuthRepository,
	notificationService NotificationService) PrayerRequestService {
	return &prayerRequestService{
		requestRepo:         requestRepo,
		groupRepo:           groupRepo,
		prayerRepo:          prayerRepo,
		authRepo:            authRepo,
		notificationService: notificationService,
	}
}

func (p *prayerRequestService) CreatePrayerRequest(input *models.PrayerRequestInput, actorID uint) (*models.PrayerRequest, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}

	visibility := models.VisibilityPublic
	if input.Visibility != "" {
		parsed, ok := models.ParseVisibility(input.Visibility)
		if !ok {
			return nil, apiError.New("invalid visibility value", http.StatusBadRequest)
		}
		visibility = parsed
	}

	request := &models.PrayerRequest{
		Title:       input.Title,
		Description: input.Description,
		Visibility:  visibility,
		IsAnonymous: input.IsAnonymous,
		AuthorID:    actorID,
	}

	// A group reference only sticks when the author belongs to the group;
	// otherwise it is dropped and the request keeps its visibility.
	if input.GroupID != nil {
		isMember, err := p.groupRepo.IsMember(*input.GroupID, actorID)
		if err != nil {
			logging.ErrorLogger.Printf("error checking group membership: %v", err)
			return nil, apiError.ErrInternalServerError
		}
		if isMember {
			request.GroupID = input.GroupID
			request.Visibility = models.VisibilityGroupOnly
		}
	}

	created, err := p.requestRepo.CreatePrayerRequest(request)
	if err != nil {
		logging.ErrorLogger.Printf("error creating prayer request: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return created, nil
}

func (p *prayerRequestService) GetPrayerRequest(requestID, actorID uint) (*models.PrayerRequest, *apiError.Error) {
	request, err := p.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	if apiErr := p.authorizeView(request, actorID); apiErr != nil {
		return nil, apiErr
	}
	hasPrayed, err := p.prayerRepo.HasPrayed(actorID, requestID)
	if err != nil {
		logging.ErrorLogger.Printf("error checking prayer record: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	request.HasPrayed = hasPrayed
	return request, nil
}

func (p *prayerRequestService) authorizeView(request *models.PrayerRequest, actorID uint) *apiError.Error {
	isMember := false
	if request.Visibility == models.VisibilityGroupOnly && request.GroupID != nil {
		member, err := p.groupRepo.IsMember(*request.GroupID, actorID)
		if err != nil {
			logging.ErrorLogger.Printf("error checking group membership: %v", err)
			return apiError.ErrInternalServerError
		}
		isMember = member
	}
	if !CanViewPrayerRequest(request, actorID, isMember) {
		return apiError.ErrForbidden
	}
	return nil
}

func (p *prayerRequestService) ListVisible(actorID uint, search string, page, size int) ([]models.PrayerRequest, int64, *apiError.Error) {
	requests, total, err := p.requestRepo.FindVisibleToUser(actorID, search, page, size)
	if err != nil {
		logging.ErrorLogger.Printf("error listing prayer requests: %v", err)
		return nil, 0, apiError.ErrInternalServerError
	}
	return requests, total, nil
}

func (p *prayerRequestService) ListMine(actorID uint) ([]models.PrayerRequest, *apiError.Error) {
	requests, err := p.requestRepo.FindByAuthor(actorID)
	if err != nil {
		logging.ErrorLogger.Printf("error listing own prayer requests: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return requests, nil
}

func (p *prayerRequestService) ListAnswered(actorID uint) ([]models.PrayerRequest, *apiError.Error) {
	requests, err := p.requestRepo.FindAnswered(actorID)
	if err != nil {
		logging.ErrorLogger.Printf("error listing answered prayer requests: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return requests, nil
}

func (p *prayerRequestService) ListByGroup(groupID, actorID uint) ([]models.PrayerRequest, *apiError.Error) {
	if _, err := p.groupRepo.FindGroupByID(groupID); err != nil {
		return nil, apiError.ErrNotFound
	}
	isMember, err := p.groupRepo.IsMember(groupID, actorID)
	if err != nil {
		logging.ErrorLogger.Printf("error checking group membership: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	if !isMember {
		return nil, apiError.New("only group members can view group prayer requests", http.StatusForbidden)
	}
	requests, err := p.requestRepo.FindByGroupID(groupID)
	if err != nil {
		logging.ErrorLogger.Printf("error listing group prayer requests: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return requests, nil
}

func (p *prayerRequestService) UpdatePrayerRequest(requestID uint, input *models.PrayerRequestInput, actorID uint, isAdmin bool) (*models.PrayerRequest, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	request, err := p.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	if request.AuthorID != actorID && !isAdmin {
		return nil, apiError.New("only the author can edit this request", http.StatusForbidden)
	}

	request.Title = input.Title
	request.Description = input.Description
	request.IsAnonymous = input.IsAnonymous
	if input.Visibility != "" {
		visibility, ok := models.ParseVisibility(input.Visibility)
		if !ok {
			return nil, apiError.New("invalid visibility value", http.StatusBadRequest)
		}
		if visibility == models.VisibilityGroupOnly && request.GroupID == nil {
			return nil, apiError.New("request has no group to restrict visibility to", http.StatusBadRequest)
		}
		request.Visibility = visibility
	}

	if err := p.requestRepo.UpdatePrayerRequest(request); err != nil {
		logging.ErrorLogger.Printf("error updating prayer request: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	updated, err := p.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	return updated, nil
}

// PrayForRequest records the acknowledgement. Like commenting, it only
// requires the request to exist; visibility is not checked here.
func (p *prayerRequestService) PrayForRequest(requestID, actorID uint) *apiError.Error {
	request, err := p.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return apiError.ErrNotFound
	}

	if _, err := p.prayerRepo.CreatePrayerWithCount(actorID, requestID); err != nil {
		if err == db.ErrAlreadyPrayed {
			return apiError.New("you have already prayed for this request", http.StatusConflict)
		}
		logging.ErrorLogger.Printf("error recording prayer: %v", err)
		return apiError.ErrInternalServerError
	}

	if request.AuthorID != actorID {
		actor, err := p.authRepo.FindUserByID(actorID)
		if err != nil {
			logging.ErrorLogger.Printf("error loading acting user %d: %v", actorID, err)
			return nil
		}
		p.notificationService.Dispatch(&models.Notification{
			UserID:          request.AuthorID,
			Message:         fmt.Sprintf("%s prayed for your request: %s", actor.FullName(), request.Title),
			Type:            models.NotificationPrayerReceived,
			RelatedEntityID: &request.ID,
		})
	}
	return nil
}

// MarkAnswered records the testimony. Calling it again overwrites the
// previous answer, matching how re-answering has always behaved.
func (p *prayerRequestService) MarkAnswered(requestID uint, input *models.AnswerInput, actorID uint, isAdmin bool) (*models.PrayerRequest, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	request, err := p.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	if request.AuthorID != actorID && !isAdmin {
		return nil, apiError.New("only the author can mark this request answered", http.StatusForbidden)
	}

	now := time.Now()
	request.IsAnswered = true
	request.AnswerText = input.AnswerText
	request.AnsweredAt = &now
	if err := p.requestRepo.UpdatePrayerRequest(request); err != nil {
		logging.ErrorLogger.Printf("error marking prayer request answered: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	answered, err := p.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	return answered, nil
}

func (p *prayerRequestService) DeletePrayerRequest(requestID, actorID uint, isAdmin bool) *apiError.Error {
	request, err := p.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return apiError.ErrNotFound
	}
	if request.AuthorID != actorID && !isAdmin {
		return apiError.New("only the author can delete this request", http.StatusForbidden)
	}
	if err := p.requestRepo.DeletePrayerRequest(requestID); err != nil {
		logging.ErrorLogger.Printf("error deleting prayer request: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
