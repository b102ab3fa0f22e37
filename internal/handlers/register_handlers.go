package handlers

import (
	"github.com/bizledger/bizledger_app/cmd/docs"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/bizledger/bizledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register public authentication routes
	if err := registerAuthRoutes(r, cfg, services.Auth); err != nil {
		return err
	}

	// Setup API v1 routes with auth and tenant resolution middleware
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// Every route in the group runs behind AuthMiddleware and TenantResolutionMiddleware, so by the time
// a handler executes, the request context carries both the authenticated user and the resolved tenant.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.TenantResolutionMiddleware(services.Tenant),
	)

	// Delegate route registration to specific handlers, passing required services
	registerTenantRoutes(v1, services.Tenant)
	registerUserRoutes(v1, services.User)
	registerCurrencyRoutes(v1, services.Currency)
	registerPurchaseRoutes(v1, services.Purchase)
	registerSaleRoutes(v1, services.Sale)
	registerExpenseRoutes(v1, services.Expense)
	registerPaymentRoutes(v1, services.Payment)
	registerStockRoutes(v1, services.Stock)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
