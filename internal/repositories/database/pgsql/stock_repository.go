package pgsql

import (
	"context"
	"errors"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStockRepository derives inventory positions from purchases and sales.
// There is no stock table; both sides of the aggregation carry the same
// tenant predicate so the join never mixes tenants.
type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for derived stock queries.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockReader {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStockRepository implements portsrepo.StockReader
var _ portsrepo.StockReader = (*PgxStockRepository)(nil)

var STOCK_LEVEL_QUERY = `
SELECT
	COALESCE(p.item_sku, s.item_sku) AS item_sku,
	COALESCE(p.item_name, s.item_name, '') AS item_name,
	COALESCE(p.quantity_purchased, 0) AS quantity_purchased,
	COALESCE(s.quantity_sold, 0) AS quantity_sold,
	COALESCE(p.quantity_purchased, 0) - COALESCE(s.quantity_sold, 0) AS quantity_on_hand,
	GREATEST(p.last_purchased_at, s.last_sold_at) AS last_movement_at
FROM (
	SELECT item_sku, MAX(item_name) AS item_name, SUM(quantity) AS quantity_purchased, MAX(purchased_at) AS last_purchased_at
	FROM purchases
	WHERE tenant_id = $1
	GROUP BY item_sku
) p
FULL OUTER JOIN (
	SELECT item_sku, MAX(item_name) AS item_name, SUM(quantity) AS quantity_sold, MAX(sold_at) AS last_sold_at
	FROM sales
	WHERE tenant_id = $1
	GROUP BY item_sku
) s ON p.item_sku = s.item_sku
`

// ListStockLevels aggregates per-SKU positions for the current tenant.
func (r *PgxStockRepository) ListStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	query := STOCK_LEVEL_QUERY + `ORDER BY item_sku`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock levels", err)
	}
	defer rows.Close()

	levels, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.StockLevel])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.StockLevel{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect stock level rows", err)
	}
	return levels, nil
}

// FindStockBySKU aggregates the position of a single SKU for the current tenant.
func (r *PgxStockRepository) FindStockBySKU(ctx context.Context, itemSKU string) (*domain.StockLevel, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	query := STOCK_LEVEL_QUERY + `WHERE COALESCE(p.item_sku, s.item_sku) = $2`
	rows, err := r.Pool.Query(ctx, query, tenantID, itemSKU)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock level", err)
	}
	defer rows.Close()

	level, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.StockLevel])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect stock level row", err)
	}
	return &level, nil
}
