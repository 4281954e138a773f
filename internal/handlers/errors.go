package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/taskmaster-api/internal/constants"
	apierrors "github.com/yukikurage/taskmaster-api/internal/errors"
	"github.com/yukikurage/taskmaster-api/internal/middleware"
	"github.com/yukikurage/taskmaster-api/internal/services"
	"github.com/yukikurage/taskmaster-api/internal/taskflow"
)

// respondServiceError maps service and domain errors onto API errors
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))

	case errors.Is(err, services.ErrManagerOnly):
		apierrors.InsufficientPermissions(c, err.Error())
	case errors.Is(err, services.ErrTaskPermissionDenied):
		apierrors.Forbidden(c, err.Error())

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrNoteNotFound):
		apierrors.NotFound(c, err.Error())

	case errors.Is(err, taskflow.ErrInvalidTransition),
		errors.Is(err, taskflow.ErrNotCompleted):
		apierrors.InvalidOperation(c, err.Error())

	case errors.Is(err, services.ErrMissingSignupFields),
		errors.Is(err, services.ErrInvalidUsernameSuffix),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrAssigneeNotFound),
		errors.Is(err, services.ErrNoTitlesProvided),
		errors.Is(err, services.ErrTooManyTitles),
		errors.Is(err, services.ErrUnknownStandardTitle),
		errors.Is(err, services.ErrNoteTextRequired),
		errors.Is(err, services.ErrFileNameRequired),
		errors.Is(err, services.ErrStandardTitleRequired),
		errors.Is(err, taskflow.ErrTitleRequired),
		errors.Is(err, taskflow.ErrAssigneeRequired),
		errors.Is(err, taskflow.ErrNegativeReward),
		errors.Is(err, taskflow.ErrInvalidDueDate):
		apierrors.BadRequest(c, err.Error())

	default:
		log.Error().Err(err).
			Str("request_id", c.GetString(constants.ContextKeyRequestID)).
			Str("path", c.FullPath()).
			Msg("unhandled service error")
		apierrors.InternalError(c, "Internal server error")
	}
}

// requireUserID reads the authenticated user id, answering 401 when it is missing
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return "", false
	}
	return userID, true
}
