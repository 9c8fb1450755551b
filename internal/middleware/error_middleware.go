package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses. Every error
// body is a JSON object with a human-readable message field.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrScholarshipNotFound,
		apperrors.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessage("Not found."))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewMessage("forbidden access"))

	case apperrors.Is(err, apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid,
		apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.NewMessage("unauthorized access"))

	case apperrors.Is(err, apperrors.ErrInvalidObjectID,
		apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewMessage(err.Error()))

	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, dto.NewMessage("There is a server-side error!"))
	}
}
