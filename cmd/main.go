package main

import (
	"strconv"
	"time"

	"facility-service/internal/handler"
	"facility-service/internal/location"
	"facility-service/internal/middleware"
	"facility-service/internal/model"
	"facility-service/pkg/config"
	"facility-service/pkg/database"
	"facility-service/pkg/jwtutil"
	"facility-service/pkg/logger"
	"facility-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting facility service...", zap.String("environment", cfg.Server.Env))

	// Initialize JWT utilities
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utilities initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize database and run migrations
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	err = database.MigrateModels(
		&model.Tenant{},
		&model.Category{},
		&model.Location{},
		&model.Asset{},
		&model.Job{},
		&model.JobSchedule{},
		&model.Supplier{},
		&model.Person{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	if err := location.EnsureIndexes(db); err != nil {
		log.Fatal("Failed to create location indexes", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed", zap.String("db_host", cfg.DB.Host), zap.String("db_name", cfg.DB.DBName))

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Process request
			err := next(c)

			// Calculate duration
			duration := time.Since(start).Seconds()
			status := c.Response().Status

			// Log request details
			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Float64("duration_s", duration),
				zap.String("ip", c.RealIP()),
			)

			// Update Prometheus metrics
			prometheus.HttpRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Request().URL.Path,
				strconv.Itoa(status),
			).Inc()

			prometheus.HttpRequestDuration.WithLabelValues(
				c.Request().Method,
				c.Request().URL.Path,
				strconv.Itoa(status),
			).Observe(duration)

			return err
		}
	})

	// Routes
	// Public routes that don't require authentication
	e.GET("/", handler.Hello)
	e.GET("/health", handler.Hello)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API routes that require authentication
	api := e.Group("/api")
	api.Use(middleware.AuthMiddleware)
	api.Use(middleware.RequireTenantContext)

	// Location tree endpoints
	locations := api.Group("/locations")
	locations.POST("", handler.CreateLocation)
	locations.GET("", handler.ListLocations)
	locations.GET("/:id", handler.GetLocation)
	locations.PUT("/:id", handler.UpdateLocation)
	locations.DELETE("/:id", handler.DeleteLocation)

	// Subtree-scoped listings
	locations.GET("/:id/assets", handler.ListLocationAssets)
	locations.GET("/:id/jobs", handler.ListLocationJobs)
	locations.GET("/:id/schedules", handler.ListLocationJobSchedules)
	locations.GET("/:id/people", handler.ListLocationPeople)

	// Category endpoints
	categories := api.Group("/categories")
	categories.POST("", handler.CreateCategory)
	categories.GET("", handler.ListCategories)

	// CSV import endpoints
	imports := api.Group("/imports")
	imports.POST("", handler.RunImport)
	imports.GET("/headers", handler.ImportHeaders)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
