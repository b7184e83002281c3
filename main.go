package main

import (
	"context"
	"errors"
	"fmt"
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

	appLogger "github.com/vachspati/smart--trip/app/logger"
	appMiddleware "github.com/vachspati/smart--trip/app/middleware"
	"github.com/vachspati/smart--trip/app/observability/metrics"
	"github.com/vachspati/smart--trip/app/tracer"
	"github.com/vachspati/smart--trip/config"
	"github.com/vachspati/smart--trip/internal/api/catalog"
	generativeAI "github.com/vachspati/smart--trip/internal/api/generative_ai"
	"github.com/vachspati/smart--trip/internal/api/itinerary"
	"github.com/vachspati/smart--trip/internal/router"
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

	logger := setupLogger()
	slog.SetDefault(logger)

	// --- Application Context & Shutdown ---
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	tracer.InitTracingAndMetrics(cfg.Observability.MetricsPort)
	metrics.InitAppMetrics()

	// --- AI client selection ---
	// Gemini when a key is configured, OpenAI as second choice, otherwise no
	// client: the generation endpoint then always serves the fallback path.
	var aiClient itinerary.AIClient
	if gemini, err := generativeAI.NewAIClient(ctx, cfg.Generation.GeminiModel); err == nil {
		aiClient = gemini
		logger.Info("Using Gemini for itinerary generation", slog.String("model", cfg.Generation.GeminiModel))
	} else if openAI, err := generativeAI.NewOpenAIClient(cfg.Generation.OpenAIModel); err == nil {
		aiClient = openAI
		logger.Info("Using OpenAI for itinerary generation", slog.String("model", cfg.Generation.OpenAIModel))
	} else {
		logger.Warn("No AI credential configured, itineraries will use the deterministic fallback")
	}

	// --- Dependency Injection ---
	pacing := time.Duration(cfg.Generation.PacingMs) * time.Millisecond
	itineraryService := itinerary.NewItineraryService(aiClient, pacing, metrics.Get(), logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, logger)
	catalogHandler := catalog.NewHandler(cfg.Catalog.CacheTTL, logger)

	// --- Router Setup ---
	mainRouter := router.SetupRouter(&router.Config{
		ItineraryHandler: itineraryHandler,
		CatalogHandler:   catalogHandler,
	})

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.StructuredLogger(logger))
	mux.Use(appMiddleware.Recoverer(logger))
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(cfg.Server.Timeout))
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:        serverAddress,
		Handler:     mux,
		ReadTimeout: 5 * time.Second,
		// WriteTimeout must cover a full generation stream, not one write
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	// --- Graceful Shutdown ---
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
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
