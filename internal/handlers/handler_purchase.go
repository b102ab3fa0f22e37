package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/bizledger/bizledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles purchase records for the caller's tenant.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes sets up the purchase routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:purchaseID", h.getPurchase)
		purchases.PATCH("/:purchaseID", h.updatePurchase)
		purchases.DELETE("/:purchaseID", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Records a stock purchase for the caller's business account.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "Purchase not found")
		return
	}

	logger.Info("Purchase recorded", slog.String("purchase_id", purchase.PurchaseID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List purchases
// @Description Returns purchases of the caller's business account, most recent first.
// @Tags purchases
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results to skip"
// @Success 200 {array} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	limit, offset, err := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Purchases not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPurchaseResponse(purchases))
}

// getPurchase godoc
// @Summary Get a purchase by ID
// @Description Returns a single purchase of the caller's business account.
// @Tags purchases
// @Produce json
// @Param purchaseID path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to fetch purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), c.Param("purchaseID"))
	if err != nil {
		respondServiceError(c, err, "Purchase not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// updatePurchase godoc
// @Summary Update a purchase
// @Description Updates a purchase of the caller's business account. Totals are recomputed.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchaseID path string true "Purchase ID"
// @Param purchase body dto.UpdatePurchaseRequest true "Fields to update"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to update purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [patch]
func (h *purchaseHandler) updatePurchase(c *gin.Context) {
	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), c.Param("purchaseID"), req, updaterID)
	if err != nil {
		respondServiceError(c, err, "Purchase not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// deletePurchase godoc
// @Summary Delete a purchase
// @Description Deletes a purchase of the caller's business account.
// @Tags purchases
// @Produce json
// @Param purchaseID path string true "Purchase ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to delete purchase"
// @Security BearerAuth
// @Router /purchases/{purchaseID} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	deleterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), c.Param("purchaseID"), deleterID); err != nil {
		respondServiceError(c, err, "Purchase not found")
		return
	}
	c.Status(http.StatusNoContent)
}
