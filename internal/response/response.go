// Package response defines the API envelope and the error taxonomy
// shared by the service and handler layers.
package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error codes used across the service layer
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeStorage       = "STORAGE_ERROR"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is a service-layer error carrying a machine-readable code.
// Details is for logs only and is never sent to the client.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError with the given code
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewNotFoundError creates a not-found error
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewValidationError creates a validation error
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewConflictError creates a conflict error
func NewConflictError(message, details string) *AppError {
	return NewAppError(ErrCodeConflict, message, details)
}

// NewStorageError creates a storage error
func NewStorageError(message, details string) *AppError {
	return NewAppError(ErrCodeStorage, message, details)
}

// SuccessResponse is the envelope for successful responses
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed responses
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ErrorBody carries the error code and message of a failed response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendSuccess writes a success envelope with the given status and data
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// SendError writes an error envelope with the given status, code and message
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: ErrorBody{Code: code, Message: message}})
}
