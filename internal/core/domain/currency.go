package domain

// Currency represents a currency configured for one tenant. Each tenant gets
// a default currency seeded at bootstrap so it starts from a usable baseline.
type Currency struct {
	TenantID     string `json:"tenantID" db:"tenant_id"`
	CurrencyCode string `json:"currencyCode" db:"currency_code"` // e.g. "USD"; unique per tenant
	Symbol       string `json:"symbol" db:"symbol"`              // e.g. "$"
	Name         string `json:"name" db:"name"`                  // e.g. "US Dollar"
	IsDefault    bool   `json:"isDefault" db:"is_default"`
	AuditFields
}

// Default reference data seeded for every new tenant.
const (
	DefaultCurrencyCode   = "USD"
	DefaultCurrencySymbol = "$"
	DefaultCurrencyName   = "US Dollar"
)
