package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unischedule/internal/app/models/dto"
	"github.com/yigit/unischedule/internal/pkg/apperrors"
	"github.com/yigit/unischedule/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps an error to a status code and writes the failure envelope.
// Validation and bad-request errors answer 400 with their message, missing resources 404,
// anything else 500 carrying the underlying error text.
func HandleAPIError(c *gin.Context, err error) {
	resp := dto.NewErrorResponse(err.Error())

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && len(custom.Details) > 0 {
		resp.Details = custom.Details
	}

	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, resp)
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("requestID", GetRequestID(c)).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, resp)
	}
}
