package repositories

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// StockReader defines the derived, read-only inventory queries. Stock levels
// are aggregated from the current tenant's purchases and sales at query time.
type StockReader interface {
	// ListStockLevels returns per-SKU inventory positions for the current tenant.
	ListStockLevels(ctx context.Context) ([]domain.StockLevel, error)

	// FindStockBySKU returns the inventory position of one SKU.
	FindStockBySKU(ctx context.Context, itemSKU string) (*domain.StockLevel, error)
}
