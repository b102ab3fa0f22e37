package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/gin-gonic/gin"
)

// TenantResolutionMiddleware establishes the tenant context for every request
// that reaches the business API. It must run after AuthMiddleware: the tenant
// is derived server-side from the authenticated user's stored membership,
// never from anything the client sends. If no valid tenant can be resolved
// the request is rejected before any handler runs, so downstream code can
// rely on the tenant context being present and verified.
func TenantResolutionMiddleware(resolver portssvc.TenantResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, found := GetUserIDFromContext(c)
		if !found {
			logger.Error("Tenant resolution reached without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		tenant, err := resolver.ResolveTenantForUser(c.Request.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrTenantNotFound):
				logger.Error("User references a missing tenant", slog.String("user_id", userID))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No business account available"})
			case errors.Is(err, apperrors.ErrTenantInactive):
				logger.Warn("Tenant is deactivated", slog.String("user_id", userID))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Business account is deactivated"})
			case errors.Is(err, apperrors.ErrTenantExpired):
				logger.Warn("Tenant subscription has expired", slog.String("user_id", userID))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Business account subscription has expired"})
			case errors.Is(err, apperrors.ErrNotFound):
				logger.Warn("Authenticated user no longer exists", slog.String("user_id", userID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			default:
				logger.Error("Tenant resolution failed", slog.String("user_id", userID), slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve business account"})
			}
			return
		}

		// Install the tenant context and enrich the request logger with it.
		ctx := tenantctx.WithTenant(c.Request.Context(), tenant.TenantID)
		enrichedLogger := logger.With(slog.String("tenant_id", tenant.TenantID))
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
