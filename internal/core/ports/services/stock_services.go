package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// StockSvcFacade exposes the derived inventory view for the caller's tenant.
type StockSvcFacade interface {
	ListStockLevels(ctx context.Context) ([]domain.StockLevel, error)
	GetStockBySKU(ctx context.Context, itemSKU string) (*domain.StockLevel, error)
}
