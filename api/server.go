package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/clearwatch/clearwatch-backend/usecases"
	"github.com/clearwatch/clearwatch-backend/utils"
)

func NewRouter(conf Configuration, logger *slog.Logger) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders:    []string{"Authorization", "Content-Type"},
		AllowMethods:    []string{"GET", "POST"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(func(c *gin.Context) {
		// every handler down the chain finds the logger in the request context
		ctx := utils.StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	return r
}

func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases, auth Authentication) *http.Server {
	addRoutes(router, uc, auth)

	// Add a margin to the server timeout so our own deadline fires first
	maxTimeout := conf.DefaultTimeout + 5*time.Second

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
	}
}
