package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates service-layer errors into HTTP responses.
// A cross-tenant access attempt deliberately maps to the same 404 as a
// missing record: a different status would let a caller probe which record
// identifiers exist in other tenants. The attempt is still logged and counted
// as a security event.
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrCrossTenantAccess):
		logger.Warn("Denied cross-tenant access attempt", slog.String("path", c.Request.URL.Path))
		middleware.CountCrossTenantDenial()
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrNoTenantContext):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
