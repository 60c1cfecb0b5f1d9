package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodbridge/coordination-api/internal/api/handler"
	"github.com/foodbridge/coordination-api/internal/api/middleware"
	"github.com/foodbridge/coordination-api/internal/core/domain"
	"github.com/foodbridge/coordination-api/internal/core/service"
	"github.com/foodbridge/coordination-api/internal/infrastructure/config"
	mongodb "github.com/foodbridge/coordination-api/internal/infrastructure/db/mongo"
	redisdb "github.com/foodbridge/coordination-api/internal/infrastructure/db/redis"
	"github.com/foodbridge/coordination-api/internal/infrastructure/embedder"
	"github.com/foodbridge/coordination-api/internal/infrastructure/jobs"
	"github.com/foodbridge/coordination-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.With("http"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("coordination"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	slotRepo := mongodb.NewAvailabilityRepository(db)
	featureRepo := mongodb.NewFeatureRepository(db)
	calendarRepo := mongodb.NewCalendarRepository(db)
	jobStore := redisdb.NewJobStore(rdb)
	eventCache := redisdb.NewEventCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	availabilityService := service.NewAvailabilityService(userRepo, slotRepo, logger.With("availability"))

	embedClient := embedder.NewClient(embedder.Config{
		BaseURL: cfg.Embedder.BaseURL,
		APIKey:  cfg.Embedder.APIKey,
		Model:   cfg.Embedder.Model,
	})
	runner := jobs.NewRunner(featureRepo, embedClient, jobStore,
		cfg.Jobs.EmbeddingWorkers, cfg.Jobs.ProgressInterval, logger.With("jobs"))
	searchService := service.NewSearchService(featureRepo, jobStore, runner, logger.With("search"))

	calendarService := service.NewCalendarService(calendarRepo, eventCache, logger.With("calendar"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)
	searchHandler := handler.NewSearchHandler(searchService)
	calendarHandler := handler.NewCalendarHandler(calendarService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/users/basic", userHandler.ListBasic)

	v1.GET("/availability", availabilityHandler.List)
	v1.POST("/availability", availabilityHandler.Create)
	v1.DELETE("/availability/:id", availabilityHandler.Delete, adminOnly)
	v1.GET("/availability/summary", availabilityHandler.Summary)

	v1.GET("/smart-search/features", searchHandler.Features)
	v1.POST("/smart-search/regenerate-embeddings", searchHandler.Regenerate, adminOnly)
	v1.GET("/smart-search/status", searchHandler.Status)

	v1.GET("/calendar/events", calendarHandler.Events)

	return e
}
