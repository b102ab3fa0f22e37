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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase data.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryWithTx {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryWithTx
var _ portsrepo.PurchaseRepositoryWithTx = (*PgxPurchaseRepository)(nil)

var FULL_PURCHASE_SELECT_QUERY = `
SELECT
	p.purchase_id, p.tenant_id, p.supplier_name, p.item_sku, p.item_name,
	p.quantity, p.unit_cost, p.total, p.currency_code, p.purchased_at,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM purchases p
`

func (r *PgxPurchaseRepository) getPurchases(ctx context.Context, filterQuery string, args ...any) ([]domain.Purchase, error) {
	query := FULL_PURCHASE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchases", err)
	}
	defer rows.Close()
	purchases, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Purchase])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Purchase{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect purchase rows", err)
	}
	return purchases, nil
}

func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	query := `
		INSERT INTO purchases (
			purchase_id, tenant_id, supplier_name, item_sku, item_name,
			quantity, unit_cost, total, currency_code, purchased_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		purchase.PurchaseID,
		purchase.TenantID,
		purchase.SupplierName,
		purchase.ItemSKU,
		purchase.ItemName,
		purchase.Quantity,
		purchase.UnitCost,
		purchase.Total,
		purchase.CurrencyCode,
		purchase.PurchasedAt,
		purchase.CreatedAt,
		purchase.CreatedBy,
		purchase.LastUpdatedAt,
		purchase.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("purchase ID " + purchase.PurchaseID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("tenant or currency does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save purchase "+purchase.PurchaseID, err)
	}
	return nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := r.getPurchases(ctx, `WHERE p.purchase_id = $1 AND p.tenant_id = $2`, purchaseID, tenantID)
	if err != nil {
		return nil, err
	}
	if len(purchases) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &purchases[0], nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, limit, offset int) ([]domain.Purchase, error) {
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
	return r.getPurchases(ctx,
		`WHERE p.tenant_id = $1 ORDER BY p.purchased_at DESC, p.created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
}

// UpdatePurchase updates mutable fields. Doubly keyed on (purchase_id,
// tenant_id); the tenant_id column itself is never written.
func (r *PgxPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE purchases
		SET supplier_name = $1, item_name = $2, quantity = $3, unit_cost = $4, total = $5,
			purchased_at = $6, last_updated_at = $7, last_updated_by = $8
		WHERE purchase_id = $9 AND tenant_id = $10;
	`
	result, err := r.Pool.Exec(ctx, query,
		purchase.SupplierName,
		purchase.ItemName,
		purchase.Quantity,
		purchase.UnitCost,
		purchase.Total,
		purchase.PurchasedAt,
		purchase.LastUpdatedAt,
		purchase.LastUpdatedBy,
		purchase.PurchaseID,
		tenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update purchase "+purchase.PurchaseID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	result, err := r.Pool.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1 AND tenant_id = $2`, purchaseID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete purchase "+purchaseID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// OwnerTenantID reads the stored tenant reference without the row filter, for
// the service-layer write-path ownership check.
func (r *PgxPurchaseRepository) OwnerTenantID(ctx context.Context, purchaseID string) (string, error) {
	var tenantID string
	err := r.Pool.QueryRow(ctx, `SELECT tenant_id FROM purchases WHERE purchase_id = $1`, purchaseID).Scan(&tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to read owner tenant for purchase "+purchaseID, err)
	}
	return tenantID, nil
}
