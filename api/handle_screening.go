package api

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/clearwatch/clearwatch-backend/dto"
	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/pure_utils"
	"github.com/clearwatch/clearwatch-backend/usecases"
	"github.com/clearwatch/clearwatch-backend/utils"
)

func handlePerformScreening(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		creds, ok := utils.CredentialsFromCtx(ctx)
		if !ok {
			presentError(ctx, c, models.UnAuthorizedError)
			return
		}

		var body dto.PerformScreeningBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewScreeningUsecase()
		result, err := usecase.PerformScreening(ctx, creds.UserId, dto.AdaptScreeningRequest(body))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptScreeningResultDto(result))
	}
}

func handleGetScreening(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		screeningId := c.Param("screening_id")

		creds, ok := utils.CredentialsFromCtx(ctx)
		if !ok {
			presentError(ctx, c, models.UnAuthorizedError)
			return
		}

		usecase := uc.NewScreeningUsecase()
		screening, err := usecase.GetScreening(ctx, creds.UserId, screeningId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptScreeningWithMatchesDto(screening))
	}
}

func handleListScreenings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		creds, ok := utils.CredentialsFromCtx(ctx)
		if !ok {
			presentError(ctx, c, models.UnAuthorizedError)
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))

		usecase := uc.NewScreeningUsecase()
		screenings, err := usecase.ListScreenings(ctx, creds.UserId, limit)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"screenings": pure_utils.Map(screenings, dto.AdaptScreeningSummaryDto),
		})
	}
}
