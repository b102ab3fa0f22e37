package repositories

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// PaymentReader defines tenant-scoped read operations for payment data.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment visible to the current tenant.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves the current tenant's payments, newest first.
	ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayment updates mutable payment fields.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment belonging to the current tenant.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	ScopedOwnershipProber
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities.
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
