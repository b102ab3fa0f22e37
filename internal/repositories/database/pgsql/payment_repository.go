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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

var FULL_PAYMENT_SELECT_QUERY = `
SELECT
	p.payment_id, p.tenant_id, p.direction, p.amount, p.currency_code,
	p.method, p.reference, p.paid_at,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM payments p
`

func (r *PgxPaymentRepository) getPayments(ctx context.Context, filterQuery string, args ...any) ([]domain.Payment, error) {
	query := FULL_PAYMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()
	payments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Payment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Payment{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect payment rows", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		INSERT INTO payments (
			payment_id, tenant_id, direction, amount, currency_code,
			method, reference, paid_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.TenantID,
		payment.Direction,
		payment.Amount,
		payment.CurrencyCode,
		payment.Method,
		payment.Reference,
		payment.PaidAt,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("payment ID " + payment.PaymentID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("tenant or currency does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save payment "+payment.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := r.getPayments(ctx, `WHERE p.payment_id = $1 AND p.tenant_id = $2`, paymentID, tenantID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &payments[0], nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
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
	return r.getPayments(ctx,
		`WHERE p.tenant_id = $1 ORDER BY p.paid_at DESC, p.created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
}

// UpdatePayment updates mutable fields, doubly keyed on (payment_id, tenant_id).
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE payments
		SET direction = $1, amount = $2, method = $3, reference = $4, paid_at = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE payment_id = $8 AND tenant_id = $9;
	`
	result, err := r.Pool.Exec(ctx, query,
		payment.Direction,
		payment.Amount,
		payment.Method,
		payment.Reference,
		payment.PaidAt,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
		payment.PaymentID,
		tenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment "+payment.PaymentID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	result, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1 AND tenant_id = $2`, paymentID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment "+paymentID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// OwnerTenantID reads the stored tenant reference without the row filter, for
// the service-layer write-path ownership check.
func (r *PgxPaymentRepository) OwnerTenantID(ctx context.Context, paymentID string) (string, error) {
	var tenantID string
	err := r.Pool.QueryRow(ctx, `SELECT tenant_id FROM payments WHERE payment_id = $1`, paymentID).Scan(&tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to read owner tenant for payment "+paymentID, err)
	}
	return tenantID, nil
}
