package repositories

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// SaleReader defines tenant-scoped read operations for sale data.
type SaleReader interface {
	// FindSaleByID retrieves a sale visible to the current tenant.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves the current tenant's sales, newest first.
	ListSales(ctx context.Context, limit, offset int) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data.
type SaleWriter interface {
	// SaveSale persists a new sale.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// UpdateSale updates mutable sale fields.
	UpdateSale(ctx context.Context, sale domain.Sale) error

	// DeleteSale removes a sale belonging to the current tenant.
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
	ScopedOwnershipProber
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities.
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
