package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
)

// currencyServiceImpl implements the CurrencySvcFacade interface
type currencyServiceImpl struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryWithTx
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryWithTx) portssvc.CurrencySvcFacade {
	return &currencyServiceImpl{currencyRepo: currencyRepo}
}

// Ensure currencyServiceImpl implements the CurrencySvcFacade interface
var _ portssvc.CurrencySvcFacade = (*currencyServiceImpl)(nil)

func (s *currencyServiceImpl) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	tenantID, err := tenantctx.MustTenantID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	currency := domain.Currency{
		TenantID:     tenantID,
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", req.CurrencyCode))
		return nil, err
	}

	return &currency, nil
}

func (s *currencyServiceImpl) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
}

func (s *currencyServiceImpl) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
