package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shivamratti13/youtube-comment-analysis/internal/classifier"
	"github.com/shivamratti13/youtube-comment-analysis/internal/config"
	"github.com/shivamratti13/youtube-comment-analysis/internal/handler"
	"github.com/shivamratti13/youtube-comment-analysis/internal/middleware"
	"github.com/shivamratti13/youtube-comment-analysis/internal/service"
	"github.com/shivamratti13/youtube-comment-analysis/internal/youtube"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// A local .env may supply YOUTUBE_API_KEY and HF_API_TOKEN
	_ = godotenv.Load()

	configPath := "configs/config.yml"
	if p := os.Getenv("DASHBOARD_CONFIG"); p != "" {
		configPath = p
	}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Logging.Production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting Comment Sentiment Dashboard...")

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	// YouTube Data API client
	yt, err := youtube.NewClient(ctx, youtube.Config{
		APIKey:   cfg.YouTube.APIKey,
		BaseURL:  cfg.YouTube.BaseURL,
		PageSize: cfg.YouTube.PageSize,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize YouTube client", zap.Error(err))
	}

	// Sentiment model, loaded once and shared by every request
	provider, err := classifier.NewProvider(ctx, classifier.ProviderConfig{
		Type:      classifier.ProviderType(cfg.Classifier.Provider),
		ModelName: cfg.Classifier.ModelName,
		Endpoint:  cfg.Classifier.Endpoint,
		APIKey:    cfg.Classifier.APIKey,
		CacheSize: cfg.Classifier.CacheSize,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize classifier", zap.Error(err))
	}
	clf := classifier.New(provider, cfg.Classifier.Threshold, logger)
	defer clf.Close()

	analyzer := service.NewAnalyzer(yt, clf, cfg.YouTube.MaxComments, logger)
	dashboard := handler.NewHandler(analyzer, clf, logger)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))

	dashboard.RegisterRoutes(router)

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	modelInfo := clf.GetModelInfo()
	modelName := "unknown"
	if m, ok := modelInfo["model"].(string); ok {
		modelName = m
	}

	logger.Info("Dashboard is running",
		zap.String("address", serverAddr),
		zap.String("model", modelName),
		zap.Float64("threshold", clf.Threshold()),
		zap.Int("max_comments", cfg.YouTube.MaxComments))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
