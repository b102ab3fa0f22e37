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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

var FULL_CURRENCY_SELECT_QUERY = `
SELECT
	c.tenant_id, c.currency_code, c.symbol, c.name, c.is_default,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM currencies c
`

// SaveCurrency inserts a new currency for the tenant in context.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO currencies (tenant_id, currency_code, symbol, name, is_default, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.Pool.Exec(ctx, query,
		tenantID,
		currency.CurrencyCode,
		currency.Symbol,
		currency.Name,
		currency.IsDefault,
		currency.CreatedAt,
		currency.CreatedBy,
		currency.LastUpdatedAt,
		currency.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("currency " + currency.CurrencyCode + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save currency "+currency.CurrencyCode, err)
	}
	return nil
}

// EnsureCurrency inserts the currency if absent for the tenant in context.
// ON CONFLICT DO NOTHING keyed on (tenant_id, currency_code) makes bootstrap
// seeding idempotent.
func (r *PgxCurrencyRepository) EnsureCurrency(ctx context.Context, currency domain.Currency) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO currencies (tenant_id, currency_code, symbol, name, is_default, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (tenant_id, currency_code) DO NOTHING;
	`
	_, err = r.Pool.Exec(ctx, query,
		tenantID,
		currency.CurrencyCode,
		currency.Symbol,
		currency.Name,
		currency.IsDefault,
		currency.CreatedAt,
		currency.CreatedBy,
		currency.LastUpdatedAt,
		currency.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to ensure currency "+currency.CurrencyCode, err)
	}
	return nil
}

// FindCurrencyByCode retrieves one of the current tenant's currencies.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	query := FULL_CURRENCY_SELECT_QUERY + `WHERE c.tenant_id = $1 AND c.currency_code = $2`
	rows, err := r.Pool.Query(ctx, query, tenantID, currencyCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currency", err)
	}
	defer rows.Close()

	currency, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Currency])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect currency row", err)
	}
	return &currency, nil
}

// ListCurrencies retrieves all of the current tenant's currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	query := FULL_CURRENCY_SELECT_QUERY + `WHERE c.tenant_id = $1 ORDER BY c.currency_code`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Currency])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect currency rows", err)
	}
	return currencies, nil
}
