package dto

import (
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Category     string          `json:"category" binding:"required,max=50"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Note         string          `json:"note" binding:"omitempty,max=500"`
	IncurredAt   *time.Time      `json:"incurredAt"`
}

// UpdateExpenseRequest defines the mutable expense fields.
type UpdateExpenseRequest struct {
	Category   *string          `json:"category" binding:"omitempty,max=50"`
	Amount     *decimal.Decimal `json:"amount"`
	Note       *string          `json:"note" binding:"omitempty,max=500"`
	IncurredAt *time.Time       `json:"incurredAt"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID    string          `json:"expenseID"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Note         string          `json:"note"`
	IncurredAt   time.Time       `json:"incurredAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		Category:     e.Category,
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		Note:         e.Note,
		IncurredAt:   e.IncurredAt,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to ExpenseResponse DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}
