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
	"github.com/shopspring/decimal"
)

// purchaseServiceImpl implements the PurchaseSvcFacade interface
type purchaseServiceImpl struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryWithTx
	currencyRepo portsrepo.CurrencyReader
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryWithTx, currencyRepo portsrepo.CurrencyReader) portssvc.PurchaseSvcFacade {
	return &purchaseServiceImpl{
		purchaseRepo: purchaseRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure purchaseServiceImpl implements the PurchaseSvcFacade interface
var _ portssvc.PurchaseSvcFacade = (*purchaseServiceImpl)(nil)

// CreatePurchase records a purchase for the caller's tenant. The tenant
// reference is stamped from the verified context, the currency must already
// be configured for the tenant and the total is computed server-side.
func (s *purchaseServiceImpl) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	tenantID, err := tenantctx.MustTenantID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("currency %s is not configured", req.CurrencyCode))
		}
		return nil, err
	}

	now := time.Now()
	purchasedAt := now
	if req.PurchasedAt != nil {
		purchasedAt = *req.PurchasedAt
	}

	purchase := domain.Purchase{
		PurchaseID:   uuid.NewString(),
		TenantID:     tenantID,
		SupplierName: req.SupplierName,
		ItemSKU:      req.ItemSKU,
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		Total:        req.UnitCost.Mul(decimal.NewFromInt(req.Quantity)),
		CurrencyCode: req.CurrencyCode,
		PurchasedAt:  purchasedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("purchase_id", purchase.PurchaseID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded", slog.String("purchase_id", purchase.PurchaseID))
	return &purchase, nil
}

func (s *purchaseServiceImpl) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

func (s *purchaseServiceImpl) ListPurchases(ctx context.Context, limit, offset int) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if purchases == nil {
		return []domain.Purchase{}, nil
	}
	return purchases, nil
}

func (s *purchaseServiceImpl) UpdatePurchase(ctx context.Context, purchaseID string, req dto.UpdatePurchaseRequest, updaterUserID string) (*domain.Purchase, error) {
	if err := s.VerifyTenantOwnership(ctx, s.purchaseRepo, purchaseID); err != nil {
		return nil, err
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	if req.SupplierName != nil {
		purchase.SupplierName = *req.SupplierName
	}
	if req.ItemName != nil {
		purchase.ItemName = *req.ItemName
	}
	if req.Quantity != nil {
		purchase.Quantity = *req.Quantity
	}
	if req.UnitCost != nil {
		purchase.UnitCost = *req.UnitCost
	}
	if req.PurchasedAt != nil {
		purchase.PurchasedAt = *req.PurchasedAt
	}
	purchase.Total = purchase.UnitCost.Mul(decimal.NewFromInt(purchase.Quantity))
	purchase.LastUpdatedAt = time.Now()
	purchase.LastUpdatedBy = updaterUserID

	if err := s.purchaseRepo.UpdatePurchase(ctx, *purchase); err != nil {
		s.LogError(ctx, err, "Failed to update purchase", slog.String("purchase_id", purchaseID))
		return nil, err
	}

	return purchase, nil
}

func (s *purchaseServiceImpl) DeletePurchase(ctx context.Context, purchaseID string, deleterUserID string) error {
	if err := s.VerifyTenantOwnership(ctx, s.purchaseRepo, purchaseID); err != nil {
		return err
	}

	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase", slog.String("purchase_id", purchaseID))
		return err
	}

	s.LogInfo(ctx, "Purchase deleted", slog.String("purchase_id", purchaseID), slog.String("deleted_by", deleterUserID))
	return nil
}
