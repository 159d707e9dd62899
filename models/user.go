package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	goval "github.com/go-passwd/validator"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// Role is the closed set of authorities a user can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole canonicalizes a role string; unknown values are rejected.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User represents a member of the portal
type User struct {
	Model
	Username       string         `json:"username" gorm:"size:50;uniqueIndex;not null" binding:"required,min=2,max=50" conform:"trim"`
	Email          string         `json:"email" gorm:"size:100;uniqueIndex;not null" binding:"required,email" conform:"email"`
	FirstName      string         `json:"first_name" gorm:"size:100;not null" binding:"required,max=100" conform:"trim"`
	LastName       string         `json:"last_name" gorm:"size:100;not null" binding:"required,max=100" conform:"trim"`
	Password       string         `json:"password,omitempty" gorm:"-" binding:"required"`
	HashedPassword string         `json:"-" gorm:"not null"`
	Role           Role           `json:"role" gorm:"type:varchar(20);default:'USER';not null"`
	Enabled        bool           `json:"enabled" gorm:"default:true"`
	Bio            string         `json:"bio" gorm:"type:text"`
	LastLoginAt    *time.Time     `json:"last_login_at"`
	Notifications  []Notification `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName is used when composing notification messages.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// VerifyPassword verifies the collected password with the user's hashed password
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}

// Blacklist holds access tokens invalidated by logout
type Blacklist struct {
	Model
	Email string `json:"email"`
	Token string `json:"token" gorm:"type:text"`
}

func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(72, errors.New("password cant be more than 72 characters")))
	err := passwordValidator.Validate(password)
	return err
}

// ValidateWhiteSpaces normalizes string fields tagged with conform.
func ValidateWhiteSpaces(data interface{}) error {
	return conform.Strings(data)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans) + "; ")
		errs = append(errs, translatedErr)
	}
	return errs
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" conform:"email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}

type LoginResponse struct {
	UserResponse
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type EditProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100" conform:"trim"`
	LastName  string `json:"last_name" binding:"required,max=100" conform:"trim"`
	Email     string `json:"email" binding:"required,email" conform:"email"`
	Bio       string `json:"bio" conform:"trim"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
