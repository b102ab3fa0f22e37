package dto

import (
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to record a purchase.
type CreatePurchaseRequest struct {
	SupplierName string          `json:"supplierName" binding:"required,max=100"`
	ItemSKU      string          `json:"itemSKU" binding:"required,max=64"`
	ItemName     string          `json:"itemName" binding:"required,max=200"`
	Quantity     int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost     decimal.Decimal `json:"unitCost" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	PurchasedAt  *time.Time      `json:"purchasedAt"`
}

// UpdatePurchaseRequest defines the mutable purchase fields.
type UpdatePurchaseRequest struct {
	SupplierName *string          `json:"supplierName" binding:"omitempty,max=100"`
	ItemName     *string          `json:"itemName" binding:"omitempty,max=200"`
	Quantity     *int64           `json:"quantity" binding:"omitempty,gt=0"`
	UnitCost     *decimal.Decimal `json:"unitCost"`
	PurchasedAt  *time.Time       `json:"purchasedAt"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID   string          `json:"purchaseID"`
	SupplierName string          `json:"supplierName"`
	ItemSKU      string          `json:"itemSKU"`
	ItemName     string          `json:"itemName"`
	Quantity     int64           `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	Total        decimal.Decimal `json:"total"`
	CurrencyCode string          `json:"currencyCode"`
	PurchasedAt  time.Time       `json:"purchasedAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:   p.PurchaseID,
		SupplierName: p.SupplierName,
		ItemSKU:      p.ItemSKU,
		ItemName:     p.ItemName,
		Quantity:     p.Quantity,
		UnitCost:     p.UnitCost,
		Total:        p.Total,
		CurrencyCode: p.CurrencyCode,
		PurchasedAt:  p.PurchasedAt,
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}

// ToListPurchaseResponse converts a slice of domain.Purchase to PurchaseResponse DTOs
func ToListPurchaseResponse(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		res[i] = ToPurchaseResponse(&p)
	}
	return res
}
