package handlers

import (
	"net/http"

	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// stockHandler exposes the derived inventory view for the caller's tenant.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes sets up the stock routes.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.GET("", h.listStockLevels)
		stock.GET("/:itemSKU", h.getStockBySKU)
	}
}

// listStockLevels godoc
// @Summary List stock levels
// @Description Returns the derived on-hand quantity per SKU for the caller's business account.
// @Tags stock
// @Produce json
// @Success 200 {array} dto.StockLevelResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list stock levels"
// @Security BearerAuth
// @Router /stock [get]
func (h *stockHandler) listStockLevels(c *gin.Context) {
	levels, err := h.stockService.ListStockLevels(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Stock levels not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockLevelResponse(levels))
}

// getStockBySKU godoc
// @Summary Get stock level for a SKU
// @Description Returns the derived inventory position of a single SKU.
// @Tags stock
// @Produce json
// @Param itemSKU path string true "Item SKU"
// @Success 200 {object} dto.StockLevelResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "SKU not found"
// @Failure 500 {object} map[string]string "Failed to fetch stock level"
// @Security BearerAuth
// @Router /stock/{itemSKU} [get]
func (h *stockHandler) getStockBySKU(c *gin.Context) {
	level, err := h.stockService.GetStockBySKU(c.Request.Context(), c.Param("itemSKU"))
	if err != nil {
		respondServiceError(c, err, "SKU not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToStockLevelResponse(level))
}
