package services

import (
	"net/http"
	"time"

	"github.com/gracehq/prayerhub/db"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/models"
)

// Analytics is the counter snapshot served on the admin dashboard.
type Analytics struct {
	TotalUsers           int64 `json:"total_users"`
	ActiveUsers          int64 `json:"active_users"`
	TotalRequests        int64 `json:"total_requests"`
	AnsweredRequests     int64 `json:"answered_requests"`
	UnansweredRequests   int64 `json:"unanswered_requests"`
	PublicRequests       int64 `json:"public_requests"`
	RequestsLast30Days   int64 `json:"requests_last_30_days"`
	TotalGroups          int64 `json:"total_groups"`
	TotalComments        int64 `json:"total_comments"`
	TotalPrayersRecorded int64 `json:"total_prayers_recorded"`
}

// AdminService covers the moderation and management surface. The transport
// layer gates every call behind the admin role.
type AdminService interface {
	GetAnalytics() (*Analytics, *apiError.Error)
	ListUsers(search string, page, size int) ([]models.User, int64, *apiError.Error)
	ToggleUserStatus(userID uint) (*models.User, *apiError.Error)
	UpdateUserRole(userID uint, role string) (*models.User, *apiError.Error)
	ListAllRequests(visibility string, page, size int) ([]models.PrayerRequest, int64, *apiError.Error)
}

type adminService struct {
	authRepo    db.AuthRepository
	requestRepo db.PrayerRequestRepository
	groupRepo   db.GroupRepository
	commentRepo db.CommentRepository
	prayerRepo  db.PrayerRepository
}

func NewAdminService(authRepo db.AuthRepository, requestRepo db.PrayerRequestRepository,
	groupRepo db.GroupRepository, commentRepo db.CommentRepository,
	prayerRepo db.PrayerRepository) AdminService {
	return &adminService{
		authRepo:    authRepo,
		requestRepo: requestRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
		prayerRepo:  prayerRepo,
	}
}

func (a *adminService) GetAnalytics() (*Analytics, *apiError.Error) {
	analytics := &Analytics{}
	var err error

	if analytics.TotalUsers, err = a.authRepo.CountUsers(); err != nil {
		return nil, a.countError(err)
	}
	if analytics.ActiveUsers, err = a.authRepo.CountEnabledUsers(); err != nil {
		return nil, a.countError(err)
	}
	if analytics.TotalRequests, err = a.requestRepo.CountAll(); err != nil {
		return nil, a.countError(err)
	}
	if analytics.AnsweredRequests, err = a.requestRepo.CountAnswered(); err != nil {
		return nil, a.countError(err)
	}
	analytics.UnansweredRequests = analytics.TotalRequests - analytics.AnsweredRequests
	if analytics.PublicRequests, err = a.requestRepo.CountPublic(); err != nil {
		return nil, a.countError(err)
	}
	if analytics.RequestsLast30Days, err = a.requestRepo.CountCreatedAfter(time.Now().AddDate(0, 0, -30)); err != nil {
		return nil, a.countError(err)
	}
	if analytics.TotalGroups, err = a.groupRepo.CountGroups(); err != nil {
		return nil, a.countError(err)
	}
	if analytics.TotalComments, err = a.commentRepo.CountComments(); err != nil {
		return nil, a.countError(err)
	}
	if analytics.TotalPrayersRecorded, err = a.prayerRepo.CountPrayers(); err != nil {
		return nil, a.countError(err)
	}
	return analytics, nil
}

func (a *adminService) countError(err error) *apiError.Error {
	logging.ErrorLogger.Printf("error computing analytics: %v", err)
	return apiError.ErrInternalServerError
}

func (a *adminService) ListUsers(search string, page, size int) ([]models.User, int64, *apiError.Error) {
	users, total, err := a.authRepo.FindAllUsers(search, page, size)
	if err != nil {
		logging.ErrorLogger.Printf("error listing users: %v", err)
		return nil, 0, apiError.ErrInternalServerError
	}
	return users, total, nil
}

// ToggleUserStatus flips the enabled flag. Disabled users fail the auth
// middleware on their next request and can be re-enabled from here.
func (a *adminService) ToggleUserStatus(userID uint) (*models.User, *apiError.Error) {
	user, err := a.authRepo.FindAnyUserByID(userID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	user.Enabled = !user.Enabled
	if uerr := a.authRepo.UpdateUser(user); uerr != nil {
		logging.ErrorLogger.Printf("error toggling user status: %v", uerr)
		return nil, apiError.ErrInternalServerError
	}
	return user, nil
}

func (a *adminService) UpdateUserRole(userID uint, role string) (*models.User, *apiError.Error) {
	parsed, ok := models.ParseRole(role)
	if !ok {
		return nil, apiError.New("role must be USER or ADMIN", http.StatusBadRequest)
	}
	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	user.Role = parsed
	if err := a.authRepo.UpdateUser(user); err != nil {
		logging.ErrorLogger.Printf("error updating user role: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return user, nil
}

func (a *adminService) ListAllRequests(visibility string, page, size int) ([]models.PrayerRequest, int64, *apiError.Error) {
	if visibility != "" {
		parsed, ok := models.ParseVisibility(visibility)
		if !ok {
			return nil, 0, apiError.New("invalid visibility value", http.StatusBadRequest)
		}
		visibility = string(parsed)
	}
	requests, total, err := a.requestRepo.FindAll(visibility, page, size)
	if err != nil {
		logging.ErrorLogger.Printf("error listing prayer requests: %v", err)
		return nil, 0, apiError.ErrInternalServerError
	}
	return requests, total, nil
}
