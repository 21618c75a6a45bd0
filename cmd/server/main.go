package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GreenRoute/service-ecoroute/internal/adapter"
	"github.com/GreenRoute/service-ecoroute/internal/application"
	"github.com/GreenRoute/service-ecoroute/internal/config"
	"github.com/GreenRoute/service-ecoroute/internal/database"
	routeDomain "github.com/GreenRoute/service-ecoroute/internal/domain/route"
	tripDomain "github.com/GreenRoute/service-ecoroute/internal/domain/trip"
	"github.com/GreenRoute/service-ecoroute/internal/events"
	"github.com/GreenRoute/service-ecoroute/internal/handler"
	"github.com/GreenRoute/service-ecoroute/internal/logger"
	"github.com/GreenRoute/service-ecoroute/internal/middleware"
	"github.com/GreenRoute/service-ecoroute/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-ecoroute")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-ecoroute",
		zap.String("port", cfg.Port),
	)

	// Connect to the optional trip-history database
	var db *gorm.DB
	var tripRepo tripDomain.TripRepository
	if cfg.DB.Enabled() {
		db, err = database.Connect(cfg.DB, log)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}

		if cfg.AppEnv == "development" {
			if err := db.AutoMigrate(&repository.TripModel{}); err != nil {
				log.Fatal("failed to run auto-migration", zap.Error(err))
			}
			log.Info("database migration completed (dev auto-migrate)")
		} else {
			if err := database.RunMigrations(cfg.DB.DatabaseURL(), "migrations", log); err != nil {
				log.Fatal("failed to run migrations", zap.Error(err))
			}
		}

		tripRepo = repository.NewGormTripRepository(db)
	} else {
		log.Info("trip history disabled (no database configured)")
	}

	// Initialize the optional Kafka producer
	var producer *events.Producer
	if cfg.Kafka.Enabled() {
		producer = events.NewProducer(cfg.Kafka.Brokers, log)
		defer func() { _ = producer.Close() }()
	} else {
		log.Info("event publishing disabled (no brokers configured)")
	}

	// Initialize upstream adapters
	up := cfg.Upstream
	routeAdapter := adapter.NewORSRouteAdapter(up.RouteBaseURL, up.Timeout, log)
	energyAdapter := adapter.NewEIAEnergyPriceAdapter(up.EnergyBaseURL, up.EnergySeriesID, up.Timeout, log)
	weatherAdapter := adapter.NewOpenWeatherAdapter(up.WeatherBaseURL, up.Timeout, log)
	emissionsAdapter := adapter.NewCarbonInterfaceEmissionsAdapter(up.EmissionsBaseURL, up.VehicleModelID, up.Timeout, log)
	recommendationAdapter := adapter.NewOpenAIRecommendationAdapter(up.RecommendationBaseURL, up.RecommendationModel, up.Timeout, log)

	// Initialize the optimizer strategy
	optimizer := routeDomain.NewFixedRatioOptimizer()

	// Initialize application services
	planService := application.NewPlanService(
		routeAdapter,
		energyAdapter,
		weatherAdapter,
		emissionsAdapter,
		recommendationAdapter,
		optimizer,
		up.OriginLocation,
		up.DestinationLocation,
		tripRepo,
		producer,
		log,
	)

	// Initialize HTTP handlers
	planHandler := handler.NewPlanHandler(planService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := handler.NewHealthHandler(db, "service-ecoroute")
	healthHandler.RegisterRoutes(router)

	// Register routes
	planHandler.RegisterRoutes(&router.RouterGroup)

	// Trip history routes exist only when the store is configured
	if tripRepo != nil {
		tripService := application.NewTripService(tripRepo, log)
		tripHandler := handler.NewTripHandler(tripService)
		tripHandler.RegisterRoutes(&router.RouterGroup)

		adminTripHandler := handler.NewAdminTripHandler(tripService)
		adminTripHandler.RegisterRoutes(&router.RouterGroup)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:        cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// The pipeline may spend up to three upstream timeouts in sequence
		// (route, fan-out join, recommendation) before responding.
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-ecoroute...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-ecoroute stopped")
}
