package server

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cyphera/onramp-engine/internal/constants"
	"github.com/cyphera/onramp-engine/internal/handlers"
	"github.com/cyphera/onramp-engine/internal/middleware"
)

// NewRouter builds the gin engine serving the onramp API.
func NewRouter(engine *Engine) *gin.Engine {
	if engine.Config.Stage == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	InitializeRoutes(router, engine, middleware.NewRateLimiter(engine.Config.RateLimit))
	return router
}

// InitializeRoutes registers middleware and routes on router.
func InitializeRoutes(router *gin.Engine, engine *Engine, rateLimiter *middleware.RateLimiter) {
	healthHandler := handlers.NewHealthHandler(engine.Config.EnabledNetworks())
	priceHandler := handlers.NewPriceHandler(engine.Oracle)
	onrampHandler := handlers.NewOnrampHandler(engine.Onramp)
	coverageHandler := handlers.NewCoverageHandler(engine.Coverage)
	reserveHandler := handlers.NewReserveHandler(engine.Reserve)

	router.Use(gin.Recovery())
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(engine.Metrics))

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(engine.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		prices := v1.Group("/prices")
		{
			prices.GET("/:network/:token", priceHandler.GetBestPrice)
			prices.GET("/:network/:token/quick", priceHandler.GetQuickPrice)
		}

		v1.POST("/onramp/validate", onrampHandler.Validate)

		businesses := v1.Group("/businesses")
		{
			businesses.POST("/token-coverage", coverageHandler.ValidateTokens)
			businesses.GET("/:business_id/token-coverage", coverageHandler.ValidateBusiness)
		}

		reserve := v1.Group("/reserve/:network")
		{
			reserve.GET("/tokens/:address", reserveHandler.IsSupported)
			reserve.GET("/configuration", reserveHandler.GetConfiguration)
			reserve.GET("/balances", reserveHandler.GetBalances)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = splitEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = splitEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"})
	corsConfig.AllowHeaders = splitEnv("CORS_ALLOWED_HEADERS", []string{
		"Origin", "Content-Type", "Accept", "Authorization",
		middleware.APIKeyHeader, middleware.BusinessIDHeader, middleware.CorrelationIDHeader,
	})
	corsConfig.ExposeHeaders = splitEnv("CORS_EXPOSED_HEADERS", []string{middleware.CorrelationIDHeader})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func splitEnv(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	values := strings.Split(raw, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}
