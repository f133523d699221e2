package main

// @title RunAnywhere API
// @version 1.0.0
// @description Поиск беговых сегментов рядом с точкой на карте.
// @description
// @description Основные возможности:
// @description - Сегменты Strava в квадрате вокруг точки, геометрия в порядке [lng, lat]
// @description - Регистрация, вход и сохранённый route bin пользователя
// @description - Route builder: наборы сегментов, экспорт в GPX, пешеходные связки Mapbox

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/runanywhere/runanywhere/docs"
	"github.com/runanywhere/runanywhere/internal/config"
	httpDelivery "github.com/runanywhere/runanywhere/internal/delivery/http"
	"github.com/runanywhere/runanywhere/internal/delivery/http/handler"
	"github.com/runanywhere/runanywhere/internal/infrastructure/mapbox"
	"github.com/runanywhere/runanywhere/internal/infrastructure/strava"
	"github.com/runanywhere/runanywhere/internal/pkg/logger"
	"github.com/runanywhere/runanywhere/internal/repository/cache"
	"github.com/runanywhere/runanywhere/internal/repository/postgres"
	"github.com/runanywhere/runanywhere/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting RunAnywhere")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	if cfg.Strava.AccessToken == "" {
		log.Warn("STRAVA_ACCESS_TOKEN is not set, /get_routes will fail")
	}
	if cfg.Mapbox.AccessToken == "" {
		log.Warn("MAPBOX_ACCESS_TOKEN is not set, connectors and the map page will not work")
	}

	// 3. Connect to PostgreSQL and apply migrations
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	userRepo := postgres.NewUserRepository(db)
	binRepo := postgres.NewRouteBinRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	sessionStorage := cache.NewSessionStorage(redisClient)

	stravaClient := strava.NewStravaClient(&cfg.Strava, log)
	mapboxClient := mapbox.NewMapboxClient(&cfg.Mapbox, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	segmentUC := usecase.NewSegmentUseCase(
		stravaClient,
		cacheRepo,
		usecase.SegmentOptions{
			BBoxMargin:   cfg.Segments.BBoxMargin,
			ActivityType: cfg.Strava.ActivityType,
			CacheTTL:     cfg.Cache.SegmentsCacheTTL,
		},
		log,
	)

	authUC := usecase.NewAuthUseCase(userRepo, log)

	binUC := usecase.NewRouteBinUseCase(
		binRepo,
		mapboxClient,
		cfg.Mapbox.MaxConcurrency,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	sessions := httpDelivery.NewSessionStore(&cfg.Session, sessionStorage)

	pageHandler, err := handler.NewPageHandler(cfg.Mapbox.AccessToken, log)
	if err != nil {
		log.Fatal("Failed to parse page templates", zap.Error(err))
	}

	handlers := httpDelivery.Handlers{
		Pages:    pageHandler,
		Segments: handler.NewSegmentHandler(segmentUC, log),
		Auth:     handler.NewAuthHandler(authUC, sessions, pageHandler, log),
		Bins:     handler.NewBinHandler(binUC, log),
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, sessions, handlers, map[string]httpDelivery.HealthCheck{
		"postgres": db.Health,
		"redis":    redisClient.Health,
	})

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
