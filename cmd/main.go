package main

import (
	"fmt"
	"os"

	"hotel-service/internal/handler"
	"hotel-service/internal/middleware"
	"hotel-service/internal/model"
	"hotel-service/internal/store"
	"hotel-service/pkg/config"
	"hotel-service/pkg/database"
	"hotel-service/pkg/jwtutil"
	"hotel-service/pkg/logger"
	"hotel-service/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found or error loading: %v\n", err)
	}

	// Load configuration
	conf, err := config.Load("hotel")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName,
	})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()
	log.Info("Configuration loaded", conf.LogConfig()...)

	// Initialize database connection
	db, err := database.InitDB(&conf.DB)
	if err != nil {
		log.Fatal("Failed to initialize database")
	}

	// Run migrations for all models
	if err := database.MigrateModels(
		&model.Tenant{},
		&model.Room{},
		&model.Guest{},
		&model.Booking{},
		&model.User{},
	); err != nil {
		log.Fatal("Failed to migrate database models")
	}

	// Initialize JWT utility
	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      conf.JWT.SigningKey,
		ExpirationHours: conf.JWT.ExpirationHours,
	})

	// Initialize HTTP metrics
	httpMetrics := metrics.NewHTTPMetrics(conf.ServiceName)

	// Initialize store and handlers
	hotelStore := store.NewGormStore(db)
	dashboardHandler := handler.NewDashboardHandler(hotelStore)
	hotelHandler := handler.NewHotelHandler(hotelStore)

	// Initialize Echo framework
	e := echo.New()

	// Apply middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(httpMetrics.Middleware())

	// Public routes
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	// Secured routes - require authentication
	e.GET("/dashboard", dashboardHandler.Show, middleware.JWTAuthMiddleware(jwt))

	hotels := e.Group("/hotels")
	hotels.Use(middleware.JWTAuthMiddleware(jwt))
	hotels.GET("", hotelHandler.List)
	hotels.POST("", hotelHandler.Create)
	hotels.PUT("/:id", hotelHandler.Update)

	// Start server
	log.Info("Starting hotel-service on port " + conf.Server.Port)
	e.Logger.Fatal(e.Start(":" + conf.Server.Port))
}
