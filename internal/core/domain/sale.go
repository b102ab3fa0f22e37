package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records goods sold to a customer. Tenant-scoped.
type Sale struct {
	SaleID       string          `json:"saleID" db:"sale_id"` // Primary key (UUID)
	TenantID     string          `json:"tenantID" db:"tenant_id"`
	CustomerName string          `json:"customerName" db:"customer_name"`
	ItemSKU      string          `json:"itemSKU" db:"item_sku"`
	ItemName     string          `json:"itemName" db:"item_name"`
	Quantity     int64           `json:"quantity" db:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice" db:"unit_price"`
	Total        decimal.Decimal `json:"total" db:"total"`
	CurrencyCode string          `json:"currencyCode" db:"currency_code"`
	SoldAt       time.Time       `json:"soldAt" db:"sold_at"`
	AuditFields
}
