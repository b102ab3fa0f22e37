package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/dto"
)

// ExpenseSvcFacade defines operations on the caller's tenant expenses.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error
}
