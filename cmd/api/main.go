package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/feed"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
)

// @title           Job Board API
// @version         1.0
// @description     Filterable listing of job postings loaded once from a static JSON resource.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "jobs_source", cfg.JobsSourceURL)

	// 3. Setup Job Source
	source, err := feed.NewSource(cfg.JobsSourceURL, cfg.JobsSourceTimeout())
	if err != nil {
		logger.Log.Error("Invalid jobs source", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Setup Redis (rate limiter store, optional)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		}
	}
	defer redis.Close()

	// 5. Setup UseCases; the dataset is retrieved once, in the background
	loader := usecase.NewJobLoader(source)
	go loader.Load(ctx)
	jobUC := usecase.NewJobUsecase(loader)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:  jobUC,
		Config: cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
