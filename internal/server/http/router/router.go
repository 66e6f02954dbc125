package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/polkiloo/customersystem/internal/config"
	"github.com/polkiloo/customersystem/internal/metrics"
	"github.com/polkiloo/customersystem/internal/server/http/handlers"
	"github.com/polkiloo/customersystem/internal/server/http/middleware"
)

const metricsPath = "/metrics"

// Params lists router dependencies resolved by fx.
type Params struct {
	fx.In

	Facade  handlers.Facade
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Config  *config.Config
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.Recovery(p.Logger))
	engine.Use(middleware.RateLimit(newLimiter(p.Config.RateLimit), p.Logger))
	engine.Use(middleware.Compression(metricsPath))
	engine.Use(middleware.ErrorHandler())

	userHandler := handlers.NewUserHandler(p.Facade)
	customerHandler := handlers.NewCustomerHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	users := engine.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:name", userHandler.ByName)
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)

	customers := engine.Group("/customers")
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.DELETE("/:id", customerHandler.Delete)
	customers.PUT("/:id", customerHandler.Update)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET(metricsPath, gin.WrapH(p.Metrics.Handler()))
	engine.NoRoute(middleware.NotFound)

	return engine
}

// newLimiter returns nil when rate limiting is disabled.
func newLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	if cfg.RPS <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
}
