package repositories

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// PurchaseReader defines tenant-scoped read operations for purchase data.
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase visible to the current tenant.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves the current tenant's purchases, newest first.
	ListPurchases(ctx context.Context, limit, offset int) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchase data.
type PurchaseWriter interface {
	// SavePurchase persists a new purchase.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error

	// UpdatePurchase updates mutable purchase fields. The tenant reference is
	// never part of the update.
	UpdatePurchase(ctx context.Context, purchase domain.Purchase) error

	// DeletePurchase removes a purchase belonging to the current tenant.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
	ScopedOwnershipProber
}

// PurchaseRepositoryWithTx extends PurchaseRepositoryFacade with transaction capabilities.
type PurchaseRepositoryWithTx interface {
	PurchaseRepositoryFacade
	TransactionManager
}
