package dto

import (
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	CustomerName string          `json:"customerName" binding:"required,max=100"`
	ItemSKU      string          `json:"itemSKU" binding:"required,max=64"`
	ItemName     string          `json:"itemName" binding:"required,max=200"`
	Quantity     int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice    decimal.Decimal `json:"unitPrice" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	SoldAt       *time.Time      `json:"soldAt"`
}

// UpdateSaleRequest defines the mutable sale fields.
type UpdateSaleRequest struct {
	CustomerName *string          `json:"customerName" binding:"omitempty,max=100"`
	ItemName     *string          `json:"itemName" binding:"omitempty,max=200"`
	Quantity     *int64           `json:"quantity" binding:"omitempty,gt=0"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	SoldAt       *time.Time       `json:"soldAt"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID       string          `json:"saleID"`
	CustomerName string          `json:"customerName"`
	ItemSKU      string          `json:"itemSKU"`
	ItemName     string          `json:"itemName"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Total        decimal.Decimal `json:"total"`
	CurrencyCode string          `json:"currencyCode"`
	SoldAt       time.Time       `json:"soldAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:       s.SaleID,
		CustomerName: s.CustomerName,
		ItemSKU:      s.ItemSKU,
		ItemName:     s.ItemName,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		Total:        s.Total,
		CurrencyCode: s.CurrencyCode,
		SoldAt:       s.SoldAt,
		CreatedAt:    s.CreatedAt,
		CreatedBy:    s.CreatedBy,
	}
}

// ToListSaleResponse converts a slice of domain.Sale to SaleResponse DTOs
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, s := range sales {
		res[i] = ToSaleResponse(&s)
	}
	return res
}
