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

// saleServiceImpl implements the SaleSvcFacade interface
type saleServiceImpl struct {
	BaseService
	saleRepo     portsrepo.SaleRepositoryWithTx
	currencyRepo portsrepo.CurrencyReader
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryWithTx, currencyRepo portsrepo.CurrencyReader) portssvc.SaleSvcFacade {
	return &saleServiceImpl{
		saleRepo:     saleRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure saleServiceImpl implements the SaleSvcFacade interface
var _ portssvc.SaleSvcFacade = (*saleServiceImpl)(nil)

// CreateSale records a sale for the caller's tenant, stamping the tenant
// reference from the verified context and computing the total server-side.
func (s *saleServiceImpl) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error) {
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
	soldAt := now
	if req.SoldAt != nil {
		soldAt = *req.SoldAt
	}

	sale := domain.Sale{
		SaleID:       uuid.NewString(),
		TenantID:     tenantID,
		CustomerName: req.CustomerName,
		ItemSKU:      req.ItemSKU,
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Total:        req.UnitPrice.Mul(decimal.NewFromInt(req.Quantity)),
		CurrencyCode: req.CurrencyCode,
		SoldAt:       soldAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded", slog.String("sale_id", sale.SaleID))
	return &sale, nil
}

func (s *saleServiceImpl) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func (s *saleServiceImpl) ListSales(ctx context.Context, limit, offset int) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

func (s *saleServiceImpl) UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest, updaterUserID string) (*domain.Sale, error) {
	if err := s.VerifyTenantOwnership(ctx, s.saleRepo, saleID); err != nil {
		return nil, err
	}

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		sale.CustomerName = *req.CustomerName
	}
	if req.ItemName != nil {
		sale.ItemName = *req.ItemName
	}
	if req.Quantity != nil {
		sale.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		sale.UnitPrice = *req.UnitPrice
	}
	if req.SoldAt != nil {
		sale.SoldAt = *req.SoldAt
	}
	sale.Total = sale.UnitPrice.Mul(decimal.NewFromInt(sale.Quantity))
	sale.LastUpdatedAt = time.Now()
	sale.LastUpdatedBy = updaterUserID

	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to update sale", slog.String("sale_id", saleID))
		return nil, err
	}

	return sale, nil
}

func (s *saleServiceImpl) DeleteSale(ctx context.Context, saleID string, deleterUserID string) error {
	if err := s.VerifyTenantOwnership(ctx, s.saleRepo, saleID); err != nil {
		return err
	}

	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		s.LogError(ctx, err, "Failed to delete sale", slog.String("sale_id", saleID))
		return err
	}

	s.LogInfo(ctx, "Sale deleted", slog.String("sale_id", saleID), slog.String("deleted_by", deleterUserID))
	return nil
}
