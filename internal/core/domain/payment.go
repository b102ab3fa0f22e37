package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDirection distinguishes money received from money paid out.
type PaymentDirection string

const (
	PaymentIn  PaymentDirection = "IN"
	PaymentOut PaymentDirection = "OUT"
)

// PaymentMethod enumerates how a payment was settled.
type PaymentMethod string

const (
	MethodCash  PaymentMethod = "CASH"
	MethodCard  PaymentMethod = "CARD"
	MethodBank  PaymentMethod = "BANK"
	MethodOther PaymentMethod = "OTHER"
)

// Payment records money moving in or out of the business. Tenant-scoped.
type Payment struct {
	PaymentID    string           `json:"paymentID" db:"payment_id"` // Primary key (UUID)
	TenantID     string           `json:"tenantID" db:"tenant_id"`
	Direction    PaymentDirection `json:"direction" db:"direction"`
	Amount       decimal.Decimal  `json:"amount" db:"amount"`
	CurrencyCode string           `json:"currencyCode" db:"currency_code"`
	Method       PaymentMethod    `json:"method" db:"method"`
	Reference    string           `json:"reference" db:"reference"` // Free-form external reference (invoice no, txn id)
	PaidAt       time.Time        `json:"paidAt" db:"paid_at"`
	AuditFields
}
