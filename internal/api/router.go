package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pegasus-tool/admin-api/docs"
	"github.com/pegasus-tool/admin-api/internal/api/handler"
	"github.com/pegasus-tool/admin-api/internal/api/middleware"
	"github.com/pegasus-tool/admin-api/internal/core/domain"
	"github.com/pegasus-tool/admin-api/internal/core/service"
	mongodb "github.com/pegasus-tool/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pegasus-tool/admin-api/internal/infrastructure/db/redis"
	httphandlers "github.com/pegasus-tool/admin-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The dispatcher is started by the caller; the router only enqueues into it.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher handler.EventDispatcher, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pegasus"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	operationRepo := mongodb.NewOperationRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)

	directoryService := service.NewDirectoryService(userRepo, operationRepo, log)
	statsService := service.NewStatsService(directoryService, redisdb.NewStatsCache(rdb), log)
	billingService := service.NewBillingService(userRepo, operationRepo, redisdb.NewRefundGuard(rdb), log)
	authService := service.NewAuthService(adminRepo, jwtSecret, 24*time.Hour)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(directoryService, billingService)
	operationHandler := handler.NewOperationHandler(directoryService, billingService, dispatcher)
	dashboardHandler := handler.NewDashboardHandler(statsService)

	// --- Auth routes ---
	// The public register route only works while no admin exists (bootstrap).
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Console routes (admin only) ---
	v1 := e.Group("/v1", middleware.Auth(jwtSecret), middleware.RBAC(domain.RoleAdmin))
	// Once an admin exists, further operator accounts are created here.
	v1.POST("/auth/register", authHandler.Register)
	v1.GET("/users", userHandler.List)
	v1.POST("/users/:id/credits", userHandler.AddCredit)
	v1.POST("/users/:id/block", userHandler.SetBlock)
	v1.POST("/users/:id/renew", userHandler.Renew)
	v1.GET("/operations", operationHandler.List)
	v1.POST("/operations/:id/refund", operationHandler.Refund)
	v1.POST("/operations/events", operationHandler.ReceiveEvent)
	v1.POST("/operations/events/batch", operationHandler.ReceiveEventBatch)
	v1.GET("/dashboard", dashboardHandler.Get)
	v1.GET("/dashboard/monthly", dashboardHandler.Monthly)
	v1.GET("/dashboard/types", dashboardHandler.Types)
	v1.GET("/dashboard/countries", dashboardHandler.Countries)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
