package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/clearwatch/clearwatch-backend/dto"
	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/utils"
)

// presentError renders err as the uniform failure envelope and reports
// whether there was anything to present.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, dto.AdaptErrorDto(err))
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, dto.AdaptErrorDto(err))
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, dto.AdaptErrorDto(err))
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.AdaptErrorDto(err))
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, dto.AdaptErrorDto(err))
	default:
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "unexpected error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.AdaptErrorDto(err))
	}
	return true
}
