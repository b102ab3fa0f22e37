package pgsql

import (
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		TenantRepo:   newPgxTenantRepository(pool),
		UserRepo:     newPgxUserRepository(pool),
		CurrencyRepo: newPgxCurrencyRepository(pool),
		PurchaseRepo: newPgxPurchaseRepository(pool),
		SaleRepo:     newPgxSaleRepository(pool),
		ExpenseRepo:  newPgxExpenseRepository(pool),
		PaymentRepo:  newPgxPaymentRepository(pool),
		StockRepo:    newPgxStockRepository(pool),
	}
}
