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

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale data.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

var FULL_SALE_SELECT_QUERY = `
SELECT
	s.sale_id, s.tenant_id, s.customer_name, s.item_sku, s.item_name,
	s.quantity, s.unit_price, s.total, s.currency_code, s.sold_at,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM sales s
`

func (r *PgxSaleRepository) getSales(ctx context.Context, filterQuery string, args ...any) ([]domain.Sale, error) {
	query := FULL_SALE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales", err)
	}
	defer rows.Close()
	sales, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Sale])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Sale{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect sale rows", err)
	}
	return sales, nil
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (
			sale_id, tenant_id, customer_name, item_sku, item_name,
			quantity, unit_price, total, currency_code, sold_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		sale.SaleID,
		sale.TenantID,
		sale.CustomerName,
		sale.ItemSKU,
		sale.ItemName,
		sale.Quantity,
		sale.UnitPrice,
		sale.Total,
		sale.CurrencyCode,
		sale.SoldAt,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("sale ID " + sale.SaleID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("tenant or currency does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save sale "+sale.SaleID, err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := r.getSales(ctx, `WHERE s.sale_id = $1 AND s.tenant_id = $2`, saleID, tenantID)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &sales[0], nil
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
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
	return r.getSales(ctx,
		`WHERE s.tenant_id = $1 ORDER BY s.sold_at DESC, s.created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
}

// UpdateSale updates mutable fields, doubly keyed on (sale_id, tenant_id).
func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE sales
		SET customer_name = $1, item_name = $2, quantity = $3, unit_price = $4, total = $5,
			sold_at = $6, last_updated_at = $7, last_updated_by = $8
		WHERE sale_id = $9 AND tenant_id = $10;
	`
	result, err := r.Pool.Exec(ctx, query,
		sale.CustomerName,
		sale.ItemName,
		sale.Quantity,
		sale.UnitPrice,
		sale.Total,
		sale.SoldAt,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
		sale.SaleID,
		tenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update sale "+sale.SaleID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	result, err := r.Pool.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1 AND tenant_id = $2`, saleID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete sale "+saleID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// OwnerTenantID reads the stored tenant reference without the row filter, for
// the service-layer write-path ownership check.
func (r *PgxSaleRepository) OwnerTenantID(ctx context.Context, saleID string) (string, error) {
	var tenantID string
	err := r.Pool.QueryRow(ctx, `SELECT tenant_id FROM sales WHERE sale_id = $1`, saleID).Scan(&tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to read owner tenant for sale "+saleID, err)
	}
	return tenantID, nil
}
