package main

import (
	"log"

	"github.com/Luciano655dev/HobbyASAP/budget"
	"github.com/Luciano655dev/HobbyASAP/config"
	"github.com/Luciano655dev/HobbyASAP/handlers"
	"github.com/Luciano655dev/HobbyASAP/llm"
	"github.com/Luciano655dev/HobbyASAP/logger"
	"github.com/Luciano655dev/HobbyASAP/middleware"
	"github.com/Luciano655dev/HobbyASAP/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.IsDevelopment(), logger.LogLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Shared counters are optional; without REDIS_URL the budget gate fails
	// open and the usage metrics report as disabled.
	var counters store.Counters
	if cfg.RedisURL != "" {
		client, err := store.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Get().Fatal("failed to configure redis", zap.Error(err))
		}
		redisCounters, err := store.NewRedisCounters(client)
		if err != nil {
			logger.Get().Fatal("failed to configure counter store", zap.Error(err))
		}
		counters = redisCounters
		logger.Get().Info("shared counter store enabled")
	} else {
		logger.Get().Warn("REDIS_URL not set, token budgeting and metrics disabled")
	}

	gate := budget.NewGate(counters, cfg.DailyTokenLimit)
	completer := llm.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
	h := handlers.New(completer, gate, counters)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"}) // Only trust local proxies

	router.Use(middleware.Cors(cfg.CORSOrigin))
	router.Use(middleware.RequestMetrics())

	api := router.Group("/api")
	{
		api.POST("/generate", h.HandleGenerate)
		api.POST("/lesson", h.HandleLesson)
		api.POST("/ask", h.HandleAsk)
		api.POST("/metrics", h.HandleMetricsIncrement)
		api.GET("/metrics", h.HandleMetricsGet)
	}

	router.GET("/healthz", h.HandleHealth)
	router.GET("/internal/metrics", gin.WrapH(promhttp.Handler()))

	logger.Get().Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("model", cfg.GroqModel),
		zap.Bool("budgeting", gate.Enabled()))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Get().Fatal("Failed to start server", zap.Error(err))
	}
}
