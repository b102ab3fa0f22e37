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

// expenseHandler handles expense records for the caller's tenant.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes sets up the expense routes.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpense)
		expenses.PATCH("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an expense for the caller's business account.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "Expense not found")
		return
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Returns expenses of the caller's business account, most recent first.
// @Tags expenses
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results to skip"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	limit, offset, err := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Expenses not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// getExpense godoc
// @Summary Get an expense by ID
// @Description Returns a single expense of the caller's business account.
// @Tags expenses
// @Produce json
// @Param expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to fetch expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("expenseID"))
	if err != nil {
		respondServiceError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Updates an expense of the caller's business account.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expenseID path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to update expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [patch]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("expenseID"), req, updaterID)
	if err != nil {
		respondServiceError(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Deletes an expense of the caller's business account.
// @Tags expenses
// @Produce json
// @Param expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to delete expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	deleterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("expenseID"), deleterID); err != nil {
		respondServiceError(c, err, "Expense not found")
		return
	}
	c.Status(http.StatusNoContent)
}
