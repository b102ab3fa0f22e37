package pgsql

import (
	"context"
	"errors"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryWithTx {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryWithTx
var _ portsrepo.ExpenseRepositoryWithTx = (*PgxExpenseRepository)(nil)

var FULL_EXPENSE_SELECT_QUERY = `
SELECT
	e.expense_id, e.tenant_id, e.category, e.amount, e.currency_code, e.note, e.incurred_at,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
FROM expenses e
`

func (r *PgxExpenseRepository) getExpenses(ctx context.Context, filterQuery string, args ...any) ([]domain.Expense, error) {
	query := FULL_EXPENSE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	defer rows.Close()
	expenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Expense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Expense{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect expense rows", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (
			expense_id, tenant_id, category, amount, currency_code, note, incurred_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.TenantID,
		expense.Category,
		expense.Amount,
		expense.CurrencyCode,
		expense.Note,
		expense.IncurredAt,
		expense.CreatedAt,
		expense.CreatedBy,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("expense ID " + expense.ExpenseID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("tenant or currency does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save expense "+expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := r.getExpenses(ctx, `WHERE e.expense_id = $1 AND e.tenant_id = $2`, expenseID, tenantID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &expenses[0], nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return r.getExpenses(ctx,
		`WHERE e.tenant_id = $1 ORDER BY e.incurred_at DESC, e.created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
}

// UpdateExpense updates mutable fields, doubly keyed on (expense_id, tenant_id).
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE expenses
		SET category = $1, amount = $2, note = $3, incurred_at = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE expense_id = $7 AND tenant_id = $8;
	`
	result, err := r.Pool.Exec(ctx, query,
		expense.Category,
		expense.Amount,
		expense.Note,
		expense.IncurredAt,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
		expense.ExpenseID,
		tenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expense "+expense.ExpenseID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	result, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1 AND tenant_id = $2`, expenseID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete expense "+expenseID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// OwnerTenantID reads the stored tenant reference without the row filter, for
// the service-layer write-path ownership check.
func (r *PgxExpenseRepository) OwnerTenantID(ctx context.Context, expenseID string) (string, error) {
	var tenantID string
	err := r.Pool.QueryRow(ctx, `SELECT tenant_id FROM expenses WHERE expense_id = $1`, expenseID).Scan(&tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to read owner tenant for expense "+expenseID, err)
	}
	return tenantID, nil
}
