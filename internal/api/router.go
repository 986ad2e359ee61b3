package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medilog/medilog-api/internal/api/handler"
	"github.com/medilog/medilog-api/internal/api/middleware"
	"github.com/medilog/medilog-api/internal/auth"
	"github.com/medilog/medilog-api/internal/core/service"
	mongodb "github.com/medilog/medilog-api/internal/infrastructure/db/mongo"
	"github.com/medilog/medilog-api/internal/infrastructure/db/naming"
)

// NewRouter builds and returns the Echo instance with all routes
// registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *auth.Codec, names *naming.Resolver, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("medilog"))
	e.Use(middleware.Identity(codec))

	// --- Dependencies ---
	tx := mongodb.NewTxManager(db.Client())
	userRepo := mongodb.NewUserRepository(db, names)
	metricsRepo := mongodb.NewHealthMetricsRepository(db, names)
	flagRepo := mongodb.NewFeatureFlagRepository(db, names)

	authService := service.NewAuthService(userRepo, codec, tx, log)
	userService := service.NewUserService(userRepo, log)
	metricsService := service.NewHealthMetricsService(metricsRepo, userRepo, tx, log)
	flagService := service.NewFeatureFlagService(flagRepo, tx, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	metricsHandler := handler.NewHealthMetricsHandler(metricsService)
	flagHandler := handler.NewFeatureFlagHandler(flagService)

	// --- Auth routes (public) ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)

	// --- Authenticated API ---
	e.GET("/api/user/profile", userHandler.Profile)

	metricsGroup := e.Group("/api/health-metrics")
	metricsGroup.POST("/get-by-date", metricsHandler.GetByDate)
	metricsGroup.POST("/save", metricsHandler.Save)

	flagGroup := e.Group("/api/superadmin/feature-flags")
	flagGroup.POST("", flagHandler.Create)
	flagGroup.GET("", flagHandler.GetAll)
	flagGroup.GET("/user", flagHandler.ListForUser)
	flagGroup.GET("/check/:name/user/:accountId", flagHandler.Check)
	flagGroup.GET("/:id", flagHandler.GetByID)
	flagGroup.PUT("/:id", flagHandler.Update)
	flagGroup.DELETE("/:id", flagHandler.Delete)

	// --- Probes and exposition (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
