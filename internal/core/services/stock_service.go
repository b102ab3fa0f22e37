package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
)

// stockServiceImpl implements the StockSvcFacade interface
type stockServiceImpl struct {
	BaseService
	stockRepo portsrepo.StockReader
}

// NewStockService creates a new stock service.
func NewStockService(stockRepo portsrepo.StockReader) portssvc.StockSvcFacade {
	return &stockServiceImpl{stockRepo: stockRepo}
}

// Ensure stockServiceImpl implements the StockSvcFacade interface
var _ portssvc.StockSvcFacade = (*stockServiceImpl)(nil)

func (s *stockServiceImpl) ListStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	levels, err := s.stockRepo.ListStockLevels(ctx)
	if err != nil {
		return nil, err
	}
	if levels == nil {
		return []domain.StockLevel{}, nil
	}
	return levels, nil
}

func (s *stockServiceImpl) GetStockBySKU(ctx context.Context, itemSKU string) (*domain.StockLevel, error) {
	return s.stockRepo.FindStockBySKU(ctx, itemSKU)
}
