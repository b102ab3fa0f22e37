package repositories

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// CurrencyReader defines tenant-scoped read operations for currency data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves one of the current tenant's currencies.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all of the current tenant's currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
type CurrencyWriter interface {
	// SaveCurrency persists a new currency; duplicates are a conflict.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// EnsureCurrency persists a currency if it does not already exist for the
	// tenant in context. Re-running it is a no-op, which makes bootstrap
	// seeding idempotent.
	EnsureCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities.
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
