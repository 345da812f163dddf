package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-assistant/config"
	_ "travel-assistant/docs" // Swagger docs
	"travel-assistant/internal/app"
	"travel-assistant/internal/httpserver"
	"travel-assistant/internal/middleware"
	"travel-assistant/pkg/log"
)

// @title       Vietnamese Travel Assistant API
// @description Conversational travel assistant: food, sights, itineraries, hotels and weather for Vietnamese destinations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Vietnam Travel Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant
	assistant, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build assistant: ", err)
		return
	}
	defer func() {
		if err := assistant.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close resources: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin}, assistant.Metrics),
		Metrics:     assistant.Metrics,
		ReadyCheck:  assistant.ReadyCheck,
		ChatUseCase: assistant.Orchestrator,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
