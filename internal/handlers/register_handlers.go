package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/accounts_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/middleware"
	"github.com/SscSPs/accounts_backoffice/internal/platform/config"
)

// RegisterRoutes sets up all application routes. rateLimiter may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services, rateLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}

	RegisterMasterDataRoutes(v1, services.MasterData)
	RegisterJournalEntryRoutes(v1, services.JournalEntry)
	RegisterInvoiceRoutes(v1, services.Invoice)
	RegisterEquityRoutes(v1, services.Equity, cfg.StatementTimeout)
	RegisterCashFlowRoutes(v1, services.CashFlow, cfg.StatementTimeout)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
