package repositories

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// ExpenseReader defines tenant-scoped read operations for expense data.
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense visible to the current tenant.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves the current tenant's expenses, newest first.
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data.
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates mutable expense fields.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense belonging to the current tenant.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	ScopedOwnershipProber
}

// ExpenseRepositoryWithTx extends ExpenseRepositoryFacade with transaction capabilities.
type ExpenseRepositoryWithTx interface {
	ExpenseRepositoryFacade
	TransactionManager
}
