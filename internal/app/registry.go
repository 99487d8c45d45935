package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"assetdesk/internal/assignment"
	"assetdesk/internal/device"
	"assetdesk/internal/employee"
	"assetdesk/internal/mailer"
	"assetdesk/internal/middleware"
	"assetdesk/internal/shared/response"
	"assetdesk/internal/user"
)

// registerModules builds the repository/service/handler chain for every
// module, mounts the route tree under /api/v1, and starts the token
// blacklist sweeper. ctx cancellation stops the sweeper.
func registerModules(
	ctx context.Context,
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	mail mailer.Sender,
	logger *zap.Logger,
) {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	deviceRepo := device.NewRepository(gormDB)
	assignmentRepo := assignment.NewRepository(gormDB)

	// --- Services ---
	userService := user.NewService(userRepo, mail, rdb, logger)
	employeeService := employee.NewService(employeeRepo, logger)
	deviceService := device.NewService(deviceRepo, logger)
	assignmentService := assignment.NewService(gormDB, assignmentRepo, deviceRepo, employeeRepo, logger)

	// --- Handlers ---
	userHandler := user.NewHandler(userService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	deviceHandler := device.NewHandler(deviceService, logger)
	assignmentHandler := assignment.NewHandler(assignmentService, logger)

	// --- Middleware ---
	authn := middleware.AuthMiddleware(userService)
	managerOnly := middleware.RequireRole(user.RoleITManager)
	ipLimit := middleware.RateLimitByIP(rate.Limit(5), 10)
	idem := middleware.Idempotency(rdb)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		api.GET("/health-check", func(c *gin.Context) {
			response.Success(c, http.StatusOK, "Service is healthy", nil)
		})

		user.RegisterRoutes(api, userHandler, authn, ipLimit)
		employee.RegisterRoutes(api, employeeHandler, authn, managerOnly)
		device.RegisterRoutes(api, deviceHandler, authn, managerOnly)
		assignment.RegisterRoutes(api, assignmentHandler, authn, managerOnly, idem)
	}

	user.StartBlacklistSweeper(ctx, userRepo, time.Hour, logger)
}
