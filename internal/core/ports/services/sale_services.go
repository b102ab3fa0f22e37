package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/dto"
)

// SaleSvcFacade defines operations on the caller's tenant sales.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error)
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, limit, offset int) ([]domain.Sale, error)
	UpdateSale(ctx context.Context, saleID string, req dto.UpdateSaleRequest, updaterUserID string) (*domain.Sale, error)
	DeleteSale(ctx context.Context, saleID string, deleterUserID string) error
}
