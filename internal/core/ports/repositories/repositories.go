package repositories

// RepositoryProvider bundles all repository facades for dependency injection.
type RepositoryProvider struct {
	TenantRepo   TenantRepositoryWithTx
	UserRepo     UserRepositoryWithTx
	CurrencyRepo CurrencyRepositoryWithTx
	PurchaseRepo PurchaseRepositoryWithTx
	SaleRepo     SaleRepositoryWithTx
	ExpenseRepo  ExpenseRepositoryWithTx
	PaymentRepo  PaymentRepositoryWithTx
	StockRepo    StockReader
}
