package db

import (
	"fmt"

	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AuthRepository persists users and blacklisted tokens.
type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	IsEmailExist(email string) error
	IsUsernameExist(username string) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindAnyUserByID(id uint) (*models.User, error)
	UpdateUser(user *models.User) error
	UpdatePassword(password string, userID uint) error
	AddToBlackList(blacklist *models.Blacklist) error
	TokenInBlacklist(token string) bool
	CountUsers() (int64, error)
	CountEnabledUsers() (int64, error)
	FindAllUsers(search string, page, size int) ([]models.User, int64, error)
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	err := a.DB.Create(user).Error
	if err != nil {
		return nil, fmt.Errorf("could not create user: %v", err)
	}
	return user, nil
}

func (a *authRepo) IsEmailExist(email string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return fmt.Errorf("email already in use")
	}
	return nil
}

func (a *authRepo) IsUsernameExist(username string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return fmt.Errorf("username already in use")
	}
	return nil
}

func (a *authRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := a.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	if !user.Enabled {
		return nil, apiError.InActiveUserError
	}
	return &user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := a.DB.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	if !user.Enabled {
		return nil, apiError.InActiveUserError
	}
	return &user, nil
}

// FindAnyUserByID skips the enabled check so admins can manage
// disabled accounts.
func (a *authRepo) FindAnyUserByID(id uint) (*models.User, error) {
	var user models.User
	err := a.DB.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, apiError.ErrNotFound
	}
	return &user, nil
}

func (a *authRepo) UpdateUser(user *models.User) error {
	return a.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"email":         user.Email,
			"bio":           user.Bio,
			"role":          user.Role,
			"enabled":       user.Enabled,
			"last_login_at": user.LastLoginAt,
		}).Error
}

func (a *authRepo) UpdatePassword(password string, userID uint) error {
	return a.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("hashed_password", password).Error
}

func (a *authRepo) AddToBlackList(blacklist *models.Blacklist) error {
	return a.DB.Create(blacklist).Error
}

func (a *authRepo) TokenInBlacklist(token string) bool {
	var count int64
	a.DB.Model(&models.Blacklist{}).Where("token = ?", token).Count(&count)
	return count > 0
}

func (a *authRepo) CountUsers() (int64, error) {
	var count int64
	err := a.DB.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (a *authRepo) CountEnabledUsers() (int64, error) {
	var count int64
	err := a.DB.Model(&models.User{}).Where("enabled = ?", true).Count(&count).Error
	return count, err
}

func (a *authRepo) FindAllUsers(search string, page, size int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := a.DB.Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ? OR first_name LIKE ? OR last_name LIKE ?",
			like, like, like, like)
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
	err := query.Order("created_at desc").Offset((page - 1) * size).Limit(size).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
