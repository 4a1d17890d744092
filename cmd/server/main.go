package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"game_catalog/internal/api"
	"game_catalog/internal/app/service"
	"game_catalog/internal/common/security"
	"game_catalog/internal/domain/repository"
	"game_catalog/internal/platform/cache"
	"game_catalog/internal/platform/config"
	"game_catalog/internal/platform/database"
	"game_catalog/internal/platform/storage"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	config.Load()
	logger.Info("Configuration loaded.")

	security.InitJWT()
	logger.Info("JWT initialized.")

	database.Connect()
	defer database.Close()
	logger.Info("Database connected.")

	cache.ConnectRedis()
	defer cache.CloseRedis()
	logger.Info("Redis connected.")

	blobStore, err := storage.NewLocalStore(config.AppConfig.UploadDir, config.AppConfig.UploadBaseURL)
	if err != nil {
		logger.Fatalf("Could not initialize upload storage: %v", err)
	}

	// Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	gameRepo := repository.NewCachedGameRepository(
		repository.NewPgGameRepository(database.DB),
		cache.RDB,
		config.AppConfig.GameCacheTTL,
		logger,
	)
	reviewRepo := repository.NewPgReviewRepository(database.DB)

	// Services
	authService := service.NewAuthService(userRepo, logger)
	gameService := service.NewGameService(gameRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, gameRepo, logger)

	// Router & HTTP Server
	router := api.NewRouter(authService, gameService, reviewService, userRepo, blobStore, config.AppConfig.UploadDir)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Could not listen on %s: %v", config.AppConfig.APIPort, err)
		}
	}()
	logger.Info("Server started successfully.")

	<-stop // Wait for interrupt signal

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Server shutdown failed: %v", err)
	}

	logger.Info("Server stopped gracefully.")
}
