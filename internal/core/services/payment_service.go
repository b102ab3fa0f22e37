package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/google/uuid"
)

// paymentServiceImpl implements the PaymentSvcFacade interface
type paymentServiceImpl struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryWithTx
	currencyRepo portsrepo.CurrencyReader
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryWithTx, currencyRepo portsrepo.CurrencyReader) portssvc.PaymentSvcFacade {
	return &paymentServiceImpl{
		paymentRepo:  paymentRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure paymentServiceImpl implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentServiceImpl)(nil)

func (s *paymentServiceImpl) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	tenantID, err := tenantctx.MustTenantID(ctx)
	if err != nil {
		return nil, err
	}

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, apperrors.NewValidationFailedError("payment amount must be positive")
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("currency %s is not configured", req.CurrencyCode))
		}
		return nil, err
	}

	now := time.Now()
	paidAt := now
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	payment := domain.Payment{
		PaymentID:    uuid.NewString(),
		TenantID:     tenantID,
		Direction:    domain.PaymentDirection(req.Direction),
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		Method:       domain.PaymentMethod(req.Method),
		Reference:    req.Reference,
		PaidAt:       paidAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded", slog.String("payment_id", payment.PaymentID))
	return &payment, nil
}

func (s *paymentServiceImpl) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentServiceImpl) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentServiceImpl) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, updaterUserID string) (*domain.Payment, error) {
	if err := s.VerifyTenantOwnership(ctx, s.paymentRepo, paymentID); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return nil, apperrors.NewValidationFailedError("payment amount must be positive")
		}
		payment.Amount = *req.Amount
	}
	if req.Method != nil {
		payment.Method = domain.PaymentMethod(*req.Method)
	}
	if req.Reference != nil {
		payment.Reference = *req.Reference
	}
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}
	payment.LastUpdatedAt = time.Now()
	payment.LastUpdatedBy = updaterUserID

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, err
	}

	return payment, nil
}

func (s *paymentServiceImpl) DeletePayment(ctx context.Context, paymentID string, deleterUserID string) error {
	if err := s.VerifyTenantOwnership(ctx, s.paymentRepo, paymentID); err != nil {
		return err
	}

	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}

	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID), slog.String("deleted_by", deleterUserID))
	return nil
}
