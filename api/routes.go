package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clearwatch/clearwatch-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases, auth Authentication) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router := r.Use(auth.Middleware)

	router.POST("/screenings", handlePerformScreening(uc))
	router.GET("/screenings", handleListScreenings(uc))
	router.GET("/screenings/:screening_id", handleGetScreening(uc))
}
