package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tenantHandler exposes self-service operations on the caller's own tenant.
// There is deliberately no route that takes a tenant identifier: the tenant
// is always the one resolved by the middleware for the authenticated user.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

// newTenantHandler creates a new tenantHandler.
func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// registerTenantRoutes sets up the tenant self-service routes.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := newTenantHandler(tenantService)

	tenant := rg.Group("/tenant")
	{
		tenant.GET("", h.getTenant)
		tenant.PATCH("", h.updateTenant)
		tenant.POST("/deactivate", h.deactivateTenant)
	}
}

// getTenant godoc
// @Summary Get the caller's business account
// @Description Returns the business account the authenticated user belongs to.
// @Tags tenant
// @Produce json
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to fetch business account"
// @Security BearerAuth
// @Router /tenant [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	tenant, err := h.tenantService.GetTenant(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Business account not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateTenant godoc
// @Summary Update the caller's business account
// @Description Updates display and contact details of the business account. The identifier is immutable.
// @Tags tenant
// @Accept json
// @Produce json
// @Param tenant body dto.UpdateTenantRequest true "Fields to update"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update business account"
// @Security BearerAuth
// @Router /tenant [patch]
func (h *tenantHandler) updateTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenant, err := h.tenantService.UpdateTenantDetails(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Business account not found")
		return
	}

	logger.Info("Tenant details updated", slog.String("updated_by", userID))
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// deactivateTenant godoc
// @Summary Deactivate the caller's business account
// @Description Soft-disables the business account. Only the owner may do this.
// @Tags tenant
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Only the owner can deactivate"
// @Failure 500 {object} map[string]string "Failed to deactivate business account"
// @Security BearerAuth
// @Router /tenant/deactivate [post]
func (h *tenantHandler) deactivateTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.tenantService.DeactivateTenant(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "Business account not found")
		return
	}

	logger.Info("Tenant deactivated", slog.String("requested_by", userID))
	c.Status(http.StatusNoContent)
}
