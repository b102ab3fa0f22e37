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

// paymentHandler handles payment records for the caller's tenant.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes sets up the payment routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:paymentID", h.getPayment)
		payments.PATCH("/:paymentID", h.updatePayment)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records an incoming or outgoing payment for the caller's business account.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "Payment not found")
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Description Returns payments of the caller's business account, most recent first.
// @Tags payments
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results to skip"
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	limit, offset, err := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Payments not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Description Returns a single payment of the caller's business account.
// @Tags payments
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to fetch payment"
// @Security BearerAuth
// @Router /payments/{paymentID} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		respondServiceError(c, err, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Update a payment
// @Description Updates a payment of the caller's business account. Direction is immutable.
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to update payment"
// @Security BearerAuth
// @Router /payments/{paymentID} [patch]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), c.Param("paymentID"), req, updaterID)
	if err != nil {
		respondServiceError(c, err, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Deletes a payment of the caller's business account.
// @Tags payments
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Security BearerAuth
// @Router /payments/{paymentID} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	deleterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("paymentID"), deleterID); err != nil {
		respondServiceError(c, err, "Payment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
