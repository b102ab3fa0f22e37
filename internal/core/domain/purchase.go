package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records goods bought from a supplier. Tenant-scoped.
type Purchase struct {
	PurchaseID   string          `json:"purchaseID" db:"purchase_id"` // Primary key (UUID)
	TenantID     string          `json:"tenantID" db:"tenant_id"`
	SupplierName string          `json:"supplierName" db:"supplier_name"`
	ItemSKU      string          `json:"itemSKU" db:"item_sku"`
	ItemName     string          `json:"itemName" db:"item_name"`
	Quantity     int64           `json:"quantity" db:"quantity"`
	UnitCost     decimal.Decimal `json:"unitCost" db:"unit_cost"`
	Total        decimal.Decimal `json:"total" db:"total"` // quantity * unit cost, computed at creation
	CurrencyCode string          `json:"currencyCode" db:"currency_code"`
	PurchasedAt  time.Time       `json:"purchasedAt" db:"purchased_at"`
	AuditFields
}
