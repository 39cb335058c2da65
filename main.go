package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	database "github.com/FACorreiaa/go-travel-planner/app/db"
	appLogger "github.com/FACorreiaa/go-travel-planner/app/logger"
	appMiddleware "github.com/FACorreiaa/go-travel-planner/app/middleware"
	"github.com/FACorreiaa/go-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-planner/app/tracer"
	"github.com/FACorreiaa/go-travel-planner/config"
	"github.com/FACorreiaa/go-travel-planner/internal/api/assistant"
	"github.com/FACorreiaa/go-travel-planner/internal/api/auth"
	"github.com/FACorreiaa/go-travel-planner/internal/api/itinerary"
	"github.com/FACorreiaa/go-travel-planner/internal/api/recommendation"
	"github.com/FACorreiaa/go-travel-planner/internal/api/trips"
	"github.com/FACorreiaa/go-travel-planner/internal/dataset"
	"github.com/FACorreiaa/go-travel-planner/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger(cfg.Mode)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port)
	metrics.InitAppMetrics()

	// --- Database Setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	// Run migrations before initializing the main pool
	err = database.RunMigrations(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if !database.WaitForDB(ctx, pool, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	// --- Dataset Loading ---
	// The city table is required; the itinerary table is optional and the
	// planner degrades to built-in day plans without it.
	var (
		cityTable      *dataset.CityTable
		itineraryTable *dataset.ItineraryTable
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var loadErr error
		cityTable, loadErr = dataset.LoadCityTable(cfg.Dataset.CitiesPath, logger)
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		itineraryTable, loadErr = dataset.LoadItineraryTable(cfg.Dataset.ItinerariesPath, logger)
		if loadErr != nil {
			logger.WarnContext(gCtx, "Itinerary templates unavailable, using built-in day plans",
				slog.Any("error", loadErr))
			itineraryTable = nil
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		logger.Error("Failed to load city dataset", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Dependency Injection ---
	authRepo := auth.NewPostgresAuthRepo(pool, logger)
	authService := auth.NewService(authRepo, cfg.JWT, logger)
	authHandler := auth.NewHandler(authService, logger)

	recommendationService := recommendation.NewService(cityTable, logger)
	recommendationHandler := recommendation.NewHandler(recommendationService, logger)

	itineraryService := itinerary.NewService(itineraryTable, logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, logger)

	assistantService := assistant.NewService(logger)
	assistantHandler := assistant.NewHandler(assistantService, logger)

	tripsRepo := trips.NewPostgresTripsRepo(pool, logger)
	tripsService := trips.NewService(tripsRepo, logger)
	tripsHandler := trips.NewHandler(tripsService, logger)

	// --- Router Setup ---
	routerConfig := &router.Config{
		AuthHandler:            authHandler,
		RecommendationHandler:  recommendationHandler,
		ItineraryHandler:       itineraryHandler,
		AssistantHandler:       assistantHandler,
		TripsHandler:           tripsHandler,
		AuthenticateMiddleware: appMiddleware.Authenticate(cfg.JWT, logger),
	}
	mainRouter := router.SetupRouter(routerConfig)

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.StructuredLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(60 * time.Second))
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	srv := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger(mode string) *slog.Logger {
	var logger *slog.Logger

	if mode == "development" || mode == "" {
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
