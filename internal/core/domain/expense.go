package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense records a business cost outside of purchases. Tenant-scoped.
type Expense struct {
	ExpenseID    string          `json:"expenseID" db:"expense_id"` // Primary key (UUID)
	TenantID     string          `json:"tenantID" db:"tenant_id"`
	Category     string          `json:"category" db:"category"` // e.g. "RENT", "UTILITIES"
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	CurrencyCode string          `json:"currencyCode" db:"currency_code"`
	Note         string          `json:"note" db:"note"`
	IncurredAt   time.Time       `json:"incurredAt" db:"incurred_at"`
	AuditFields
}
