package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/dto"
)

// PaymentSvcFacade defines operations on the caller's tenant payments.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, updaterUserID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string, deleterUserID string) error
}
