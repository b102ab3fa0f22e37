package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/dto"
)

// CurrencySvcFacade defines operations on the caller's tenant currencies.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
