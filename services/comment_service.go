package services

import (
	"fmt"
	"net/http"

	"github.com/gracehq/prayerhub/db"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/models"
)

// CommentService handles encouragements on prayer requests.
type CommentService interface {
	CreateComment(requestID uint, input *models.CommentInput, actorID uint) (*models.Comment, *apiError.Error)
	ListComments(requestID, actorID uint, page, size int) ([]models.Comment, int64, *apiError.Error)
	UpdateComment(commentID uint, input *models.CommentInput, actorID uint, isAdmin bool) (*models.Comment, *apiError.Error)
	DeleteComment(commentID, actorID uint, isAdmin bool) *apiError.Error
}

type commentService struct {
	commentRepo         db.CommentRepository
	requestRepo         db.PrayerRequestRepository
	groupRepo           db.GroupRepository
	authRepo            db.AuthRepository
	notificationService NotificationService
}

func NewCommentService(commentRepo db.CommentRepository, requestRepo db.PrayerRequestRepository,
	groupRepo db.GroupRepository, authRepo db.AuthRepository,
	notificationService NotificationService) CommentService {
	return &commentService{
		commentRepo:         commentRepo,
		requestRepo:         requestRepo,
		groupRepo:           groupRepo,
		authRepo:            authRepo,
		notificationService: notificationService,
	}
}

func (c *commentService) authorizeView(request *models.PrayerRequest, actorID uint) *apiError.Error {
	isMember := false
	if request.Visibility == models.VisibilityGroupOnly && request.GroupID != nil {
		member, err := c.groupRepo.IsMember(*request.GroupID, actorID)
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

func (c *commentService) CreateComment(requestID uint, input *models.CommentInput, actorID uint) (*models.Comment, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	// Commenting only requires the request and the user to exist; there
	// is no visibility gate on this path.
	request, err := c.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	actor, err := c.authRepo.FindUserByID(actorID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}

	comment := &models.Comment{
		Content:         input.Content,
		AuthorID:        actorID,
		PrayerRequestID: requestID,
	}
	created, err := c.commentRepo.CreateComment(comment)
	if err != nil {
		logging.ErrorLogger.Printf("error creating comment: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.AuthorID != actorID {
		c.notificationService.Dispatch(&models.Notification{
			UserID:          request.AuthorID,
			Message:         fmt.Sprintf("%s commented on your prayer request: %s", actor.FullName(), request.Title),
			Type:            models.NotificationCommentReceived,
			RelatedEntityID: &request.ID,
		})
	}
	return created, nil
}

func (c *commentService) ListComments(requestID, actorID uint, page, size int) ([]models.Comment, int64, *apiError.Error) {
	request, err := c.requestRepo.FindPrayerRequestByID(requestID)
	if err != nil {
		return nil, 0, apiError.ErrNotFound
	}
	if apiErr := c.authorizeView(request, actorID); apiErr != nil {
		return nil, 0, apiErr
	}
	comments, total, err := c.commentRepo.FindCommentsByRequestID(requestID, page, size)
	if err != nil {
		logging.ErrorLogger.Printf("error listing comments: %v", err)
		return nil, 0, apiError.ErrInternalServerError
	}
	return comments, total, nil
}

func (c *commentService) UpdateComment(commentID uint, input *models.CommentInput, actorID uint, isAdmin bool) (*models.Comment, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	comment, err := c.commentRepo.FindCommentByID(commentID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	if comment.AuthorID != actorID && !isAdmin {
		return nil, apiError.New("only the author can edit this comment", http.StatusForbidden)
	}
	comment.Content = input.Content
	if err := c.commentRepo.UpdateComment(comment); err != nil {
		logging.ErrorLogger.Printf("error updating comment: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	updated, err := c.commentRepo.FindCommentByID(commentID)
	if err != nil {
		return nil, apiError.ErrInternalServerError
	}
	return updated, nil
}

func (c *commentService) DeleteComment(commentID, actorID uint, isAdmin bool) *apiError.Error {
	comment, err := c.commentRepo.FindCommentByID(commentID)
	if err != nil {
		return apiError.ErrNotFound
	}
	if comment.AuthorID != actorID && !isAdmin {
		return apiError.New("only the author can delete this comment", http.StatusForbidden)
	}
	if err := c.commentRepo.DeleteComment(commentID); err != nil {
		logging.ErrorLogger.Printf("error deleting comment: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
