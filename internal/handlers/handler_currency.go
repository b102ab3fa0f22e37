package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles currency configuration for the caller's tenant.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes sets up the currency routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currencyCode", h.getCurrency)
	}
}

// createCurrency godoc
// @Summary Add a currency
// @Description Registers a currency for use in the caller's business account.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Currency already configured"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "Currency not found")
		return
	}

	logger.Info("Currency created", slog.String("currency_code", currency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Returns the currencies configured for the caller's business account.
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Currencies not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrency godoc
// @Summary Get a currency by code
// @Description Returns a single configured currency.
// @Tags currencies
// @Produce json
// @Param currencyCode path string true "Currency Code (e.g. USD)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to fetch currency"
// @Security BearerAuth
// @Router /currencies/{currencyCode} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("currencyCode"))
	if err != nil {
		respondServiceError(c, err, "Currency not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}
