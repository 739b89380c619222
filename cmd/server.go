package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/clearwatch/clearwatch-backend/api"
	"github.com/clearwatch/clearwatch-backend/infra"
	"github.com/clearwatch/clearwatch-backend/repositories"
	"github.com/clearwatch/clearwatch-backend/usecases"
	"github.com/clearwatch/clearwatch-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		AppName:        "clearwatch-backend",
		Port:           utils.GetRequiredEnv[string]("PORT"),
		DefaultTimeout: time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "clearwatch",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
	}
	jwtSigningKey := utils.GetRequiredEnv[string]("AUTHENTICATION_JWT_SIGNING_KEY")

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		return err
	}
	defer pool.Close()

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repos,
		usecases.WithScreeningValidityWindow(
			time.Duration(utils.GetEnv("SCREENING_VALIDITY_DAYS", 90))*24*time.Hour),
		usecases.WithWatchlistReadTimeout(apiConfig.DefaultTimeout),
		usecases.WithMatcherParallelism(utils.GetEnv("MATCHER_PARALLELISM", 0)),
	)

	router := api.NewRouter(apiConfig, logger)
	auth := api.NewAuthentication([]byte(jwtSigningKey))
	server := api.NewServer(router, apiConfig, uc, auth)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", apiConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, "error serving the app", "error", err.Error())
		}
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	logger.InfoContext(ctx, "shutting down server")
	return server.Shutdown(shutdownCtx)
}
