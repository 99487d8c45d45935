package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"assetdesk/internal/mailer"
	"assetdesk/internal/middleware"
	"assetdesk/internal/shared/connection"
)

// BuildApp connects the infrastructure and wires every module onto the
// router. Cancelling ctx stops background work on shutdown.
func BuildApp(ctx context.Context, router *gin.Engine, logger *zap.Logger) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	mail := mailer.NewFromEnv(logger)

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	registerModules(ctx, router, gormDB, rdb, mail, logger)

	return nil
}
