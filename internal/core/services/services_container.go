package services

import (
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Tenant service first since auth depends on it for resolution and bootstrap
	container.Tenant = NewTenantService(repos.TenantRepo, repos.UserRepo, repos.CurrencyRepo)

	container.Auth = NewAuthService(
		repos.UserRepo,
		container.Tenant,
		cfg.JWTSecret,
		cfg.JWTExpiryDuration,
		cfg.JWTIssuer,
	)

	container.User = NewUserService(repos.UserRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.CurrencyRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.CurrencyRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.CurrencyRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.CurrencyRepo)
	container.Stock = NewStockService(repos.StockRepo)

	return container
}
