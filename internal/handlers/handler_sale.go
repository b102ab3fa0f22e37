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

// saleHandler handles sale records for the caller's tenant.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes sets up the sale routes.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSale)
		sales.PATCH("/:saleID", h.updateSale)
		sales.DELETE("/:saleID", h.deleteSale)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale for the caller's business account.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "Sale not found")
		return
	}

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Returns sales of the caller's business account, most recent first.
// @Tags sales
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results to skip"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	limit, offset, err := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Sales not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSaleResponse(sales))
}

// getSale godoc
// @Summary Get a sale by ID
// @Description Returns a single sale of the caller's business account.
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to fetch sale"
// @Security BearerAuth
// @Router /sales/{saleID} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	sale, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondServiceError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// updateSale godoc
// @Summary Update a sale
// @Description Updates a sale of the caller's business account. Totals are recomputed.
// @Tags sales
// @Accept json
// @Produce json
// @Param saleID path string true "Sale ID"
// @Param sale body dto.UpdateSaleRequest true "Fields to update"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to update sale"
// @Security BearerAuth
// @Router /sales/{saleID} [patch]
func (h *saleHandler) updateSale(c *gin.Context) {
	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), c.Param("saleID"), req, updaterID)
	if err != nil {
		respondServiceError(c, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Deletes a sale of the caller's business account.
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to delete sale"
// @Security BearerAuth
// @Router /sales/{saleID} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	deleterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), c.Param("saleID"), deleterID); err != nil {
		respondServiceError(c, err, "Sale not found")
		return
	}
	c.Status(http.StatusNoContent)
}
