package services

import (
	"net/http"

	"github.com/gracehq/prayerhub/db"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/models"
)

// GroupService manages fellowship groups and their membership.
type GroupService interface {
	CreateGroup(input *models.GroupInput, actorID uint) (*models.Group, *apiError.Error)
	GetGroup(groupID uint) (*models.Group, *apiError.Error)
	ListGroups(search string) ([]models.Group, *apiError.Error)
	ListMyGroups(actorID uint) ([]models.Group, *apiError.Error)
	UpdateGroup(groupID uint, input *models.GroupInput, actorID uint, isAdmin bool) (*models.Group, *apiError.Error)
	JoinGroup(groupID, actorID uint) *apiError.Error
	LeaveGroup(groupID, actorID uint) *apiError.Error
	DeleteGroup(groupID, actorID uint, isAdmin bool) *apiError.Error
}

type groupService struct {
	groupRepo db.GroupRepository
}

func NewGroupService(groupRepo db.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (g *groupService) CreateGroup(input *models.GroupInput, actorID uint) (*models.Group, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	exists, err := g.groupRepo.ExistsByName(input.Name)
	if err != nil {
		logging.ErrorLogger.Printf("error checking group name: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	if exists {
		return nil, apiError.New("a group with this name already exists", http.StatusConflict)
	}

	group := &models.Group{
		Name:        input.Name,
		Description: input.Description,
		LeaderID:    actorID,
	}
	created, err := g.groupRepo.CreateGroup(group)
	if err != nil {
		logging.ErrorLogger.Printf("error creating group: %v", err)
		return nil, apiError.GetUniqueContraintError(err)
	}
	return created, nil
}

func (g *groupService) GetGroup(groupID uint) (*models.Group, *apiError.Error) {
	group, err := g.groupRepo.FindGroupByID(groupID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	return group, nil
}

func (g *groupService) ListGroups(search string) ([]models.Group, *apiError.Error) {
	groups, err := g.groupRepo.FindAllGroups(search)
	if err != nil {
		logging.ErrorLogger.Printf("error listing groups: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return groups, nil
}

func (g *groupService) ListMyGroups(actorID uint) ([]models.Group, *apiError.Error) {
	groups, err := g.groupRepo.FindGroupsByMemberID(actorID)
	if err != nil {
		logging.ErrorLogger.Printf("error listing user groups: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return groups, nil
}

func (g *groupService) UpdateGroup(groupID uint, input *models.GroupInput, actorID uint, isAdmin bool) (*models.Group, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(input); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}
	group, err := g.groupRepo.FindGroupByID(groupID)
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	if group.LeaderID != actorID && !isAdmin {
		return nil, apiError.New("only the group leader can edit this group", http.StatusForbidden)
	}
	if input.Name != group.Name {
		exists, err := g.groupRepo.ExistsByName(input.Name)
		if err != nil {
			logging.ErrorLogger.Printf("error checking group name: %v", err)
			return nil, apiError.ErrInternalServerError
		}
		if exists {
			return nil, apiError.New("a group with this name already exists", http.StatusConflict)
		}
	}
	group.Name = input.Name
	group.Description = input.Description
	if err := g.groupRepo.UpdateGroup(group); err != nil {
		logging.ErrorLogger.Printf("error updating group: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return g.GetGroup(groupID)
}

func (g *groupService) JoinGroup(groupID, actorID uint) *apiError.Error {
	if _, err := g.groupRepo.FindGroupByID(groupID); err != nil {
		return apiError.ErrNotFound
	}
	if err := g.groupRepo.AddMember(groupID, actorID); err != nil {
		if err == db.ErrAlreadyMember {
			return apiError.New("you are already a member of this group", http.StatusConflict)
		}
		logging.ErrorLogger.Printf("error joining group: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (g *groupService) LeaveGroup(groupID, actorID uint) *apiError.Error {
	if _, err := g.groupRepo.FindGroupByID(groupID); err != nil {
		return apiError.ErrNotFound
	}
	if err := g.groupRepo.RemoveMember(groupID, actorID); err != nil {
		switch err {
		case db.ErrLeaderCannotLeave:
			return apiError.New("the group leader cannot leave the group", http.StatusConflict)
		case db.ErrNotMember:
			return apiError.New("you are not a member of this group", http.StatusConflict)
		default:
			logging.ErrorLogger.Printf("error leaving group: %v", err)
			return apiError.ErrInternalServerError
		}
	}
	return nil
}

func (g *groupService) DeleteGroup(groupID, actorID uint, isAdmin bool) *apiError.Error {
	group, err := g.groupRepo.FindGroupByID(groupID)
	if err != nil {
		return apiError.ErrNotFound
	}
	if group.LeaderID != actorID && !isAdmin {
		return apiError.New("only the group leader can delete this group", http.StatusForbidden)
	}
	if err := g.groupRepo.DeleteGroup(groupID); err != nil {
		logging.ErrorLogger.Printf("error deleting group: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}
