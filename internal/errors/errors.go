package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeUnauthorized            = "UNAUTHORIZED"
	ErrCodeInvalidCredentials      = "INVALID_CREDENTIALS"
	ErrCodeForbidden               = "FORBIDDEN"
	ErrCodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	ErrCodeInvalidInput            = "INVALID_INPUT"
	ErrCodeNotFound                = "NOT_FOUND"
	ErrCodeConflict                = "CONFLICT"
	ErrCodeInvalidOperation        = "INVALID_OPERATION"
	ErrCodeInternalError           = "INTERNAL_ERROR"
)

// APIError is the error envelope every endpoint answers with
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError writes the envelope and stops the handler chain
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.AbortWithStatusJSON(statusCode, err)
}

func respond(c *gin.Context, status int, code, message, fallback string) {
	if message == "" {
		message = fallback
	}
	RespondWithError(c, status, NewAPIError(code, message))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, ErrCodeUnauthorized, message, "Authentication required")
}

// InvalidCredentials sends a 401 response for a failed login
func InvalidCredentials(c *gin.Context) {
	respond(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid username or password", "")
}

// InsufficientPermissions sends a 403 response when the role does not allow the action
func InsufficientPermissions(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, ErrCodeInsufficientPermissions, message, "Your role does not allow this action")
}

// Forbidden sends a 403 response for a resource the user may not touch
func Forbidden(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, ErrCodeForbidden, message, "Access denied")
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, ErrCodeNotFound, message, "Resource not found")
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, ErrCodeInvalidInput, message, "Invalid request")
}

// BadRequestWithDetails sends a 400 response listing the rejected fields
func BadRequestWithDetails(c *gin.Context, message string, details []FieldError) {
	err := NewAPIError(ErrCodeInvalidInput, message)
	err.Details = details
	RespondWithError(c, http.StatusBadRequest, err)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	respond(c, http.StatusConflict, ErrCodeConflict, message, "Resource conflict")
}

// InvalidOperation sends a 422 response for a rule violation such as a bad status transition
func InvalidOperation(c *gin.Context, message string) {
	respond(c, http.StatusUnprocessableEntity, ErrCodeInvalidOperation, message, "Operation not allowed")
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	respond(c, http.StatusInternalServerError, ErrCodeInternalError, message, "Internal server error")
}
