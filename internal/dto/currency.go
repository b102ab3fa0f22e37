package dto

import (
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to add a currency for the
// caller's tenant.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string    `json:"currencyCode"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	IsDefault    bool      `json:"isDefault"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		IsDefault:    c.IsDefault,
		CreatedAt:    c.CreatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(&c)
	}
	return res
}
