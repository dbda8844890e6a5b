// Package errors provides the typed failures returned by every core operation.
// Each AppError carries a machine-readable Type and the HTTP status the
// transport layer answers with.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the kind of failure
type ErrorType string

const (
	ErrorTypeNotFound             ErrorType = "not_found"
	ErrorTypeNotAuthorized        ErrorType = "not_authorized"
	ErrorTypeDuplicateName        ErrorType = "duplicate_name"
	ErrorTypeAlreadyAssigned      ErrorType = "already_assigned"
	ErrorTypeSelfRemovalForbidden ErrorType = "self_removal_forbidden"
	ErrorTypeValidation           ErrorType = "validation_error"
	ErrorTypeUnauthorized         ErrorType = "unauthorized"
	ErrorTypeInternal             ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewNotFoundError reports a missing user, project, ticket or client.
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewNotAuthorizedError reports that the principal lacks the role,
// membership or ownership the operation requires.
func NewNotAuthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotAuthorized, http.StatusForbidden, message, details)
}

// NewDuplicateNameError reports a unique-constraint violation on a project
// name, a username or an email.
func NewDuplicateNameError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeDuplicateName, http.StatusConflict, message, details)
}

// NewAlreadyAssignedError reports a self-assignment on an assigned ticket.
func NewAlreadyAssignedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAlreadyAssigned, http.StatusConflict, message, details)
}

// NewSelfRemovalForbiddenError reports a project admin removing themself.
func NewSelfRemovalForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeSelfRemovalForbidden, http.StatusBadRequest, message, details)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusUnprocessableEntity, message, details)
}

// NewUnauthorizedError is returned when no valid principal could be established.
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// As is errors.As, re-exported so callers need a single errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsNotAuthorizedError checks if the error is a not authorized error
func IsNotAuthorizedError(err error) bool {
	return IsType(err, ErrorTypeNotAuthorized)
}

// IsDuplicateNameError checks if the error is a duplicate name error
func IsDuplicateNameError(err error) bool {
	return IsType(err, ErrorTypeDuplicateName)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	// MySQL duplicate entry error
	if strings.Contains(errStr, "duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL and SQLite unique violation
	if strings.Contains(errStr, "unique constraint") {
		return true
	}
	return false
}
