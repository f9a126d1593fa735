package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/thelineup/draft-engine/internal/api"
	"github.com/thelineup/draft-engine/internal/api/handlers"
	"github.com/thelineup/draft-engine/internal/api/middleware"
	"github.com/thelineup/draft-engine/internal/services"
	"github.com/thelineup/draft-engine/pkg/config"
	"github.com/thelineup/draft-engine/pkg/database"
	"github.com/thelineup/draft-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	log := logger.InitLogger("", cfg.IsDevelopment())
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	var cacheService *services.CacheService
	if cfg.RedisEnabled {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cacheService = services.NewCacheService(redisClient)
	} else {
		log.Warn("Redis disabled, player pool caching is off")
	}

	// Load the season player pool
	poolService := services.NewPlayerPoolService(db.DB, cacheService, log)
	pool, err := poolService.Load(context.Background(), cfg.DefaultSeason)
	if err != nil {
		log.Fatalf("Failed to load player pool: %v", err)
	}

	// Initialize draft services
	hub := services.NewDraftHub(log)
	go hub.Run()
	sessions := services.NewSessionManager(pool, hub, cfg.SessionIdleTTL, log)
	defer sessions.Stop()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CorsOrigins))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(pool)
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, pool, sessions)

	// WebSocket endpoint at root level (not under /api/v1)
	router.GET("/ws/drafts/:id", hub.HandleWebSocket)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverLog := logger.WithComponent("server")
	go func() {
		serverLog.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverLog.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	serverLog.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		serverLog.Errorf("Server forced to shutdown: %v", err)
	}

	serverLog.Info("Server exited")
}
