package http

import (
	"github.com/BakedBeans3210/limigo/internal/cache"
	"github.com/BakedBeans3210/limigo/internal/config"
	"github.com/BakedBeans3210/limigo/internal/http/handlers"
	"github.com/BakedBeans3210/limigo/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, feed *cache.FeedCache, version string, cfg *config.Config) {
	h := handlers.NewHandler(db, feed, handlers.HandlerConfig{
		FeedLimit: cfg.FeedLimit,
	})
	healthHandler := handlers.NewHealthHandler(db, feed, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h, cfg)

	// Legacy /api routes (kept for backward compatibility)
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	api.GET("/health", healthHandler.Health)
	registerAPIRoutes(api, h, cfg)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	// Auth
	api.POST("/auth", middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow), h.Auth)

	// User profile
	api.GET("/me", middleware.JWT(), h.Me)
	api.GET("/me/posts", middleware.JWT(), h.MyPosts)
	api.GET("/me/ledger", middleware.JWT(), h.MyLedger)

	// Post rate limiter (per user, not per IP)
	postRL := middleware.PostRateLimit(cfg.PostRateLimit, cfg.PostRateWindow)

	// Posting and regeneration
	api.POST("/posts", middleware.JWT(), postRL, h.CreatePost)
	api.POST("/regen", middleware.JWT(), h.Regenerate)

	// Public feed
	api.GET("/posts", h.FeedLatest)
}
