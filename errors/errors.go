package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is the API error returned by services. Status carries the HTTP
// status the transport layer should respond with: 404 not found, 403
// forbidden, 409 domain-rule conflict, 400 validation, 500 internal.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

var (
	ErrNotFound            = New("record not found", http.StatusNotFound)
	ErrForbidden           = New("forbidden", http.StatusForbidden)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrInvalidPassword     = New("invalid email or password", http.StatusUnauthorized)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	InActiveUserError      = New("user account is disabled", http.StatusUnauthorized)
)

// GetUniqueContraintError maps a database uniqueness violation to a 409.
func GetUniqueContraintError(err error) *Error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "already exists") {
		return New("record already exists", http.StatusConflict)
	}
	return ErrInternalServerError
}
