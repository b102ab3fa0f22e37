package dto

import (
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// StockLevelResponse defines the derived inventory position returned per SKU.
type StockLevelResponse struct {
	ItemSKU           string     `json:"itemSKU"`
	ItemName          string     `json:"itemName"`
	QuantityPurchased int64      `json:"quantityPurchased"`
	QuantitySold      int64      `json:"quantitySold"`
	QuantityOnHand    int64      `json:"quantityOnHand"`
	LastMovementAt    *time.Time `json:"lastMovementAt,omitempty"`
}

// ToStockLevelResponse converts a domain.StockLevel to StockLevelResponse DTO
func ToStockLevelResponse(s *domain.StockLevel) StockLevelResponse {
	return StockLevelResponse{
		ItemSKU:           s.ItemSKU,
		ItemName:          s.ItemName,
		QuantityPurchased: s.QuantityPurchased,
		QuantitySold:      s.QuantitySold,
		QuantityOnHand:    s.QuantityOnHand,
		LastMovementAt:    s.LastMovementAt,
	}
}

// ToListStockLevelResponse converts a slice of domain.StockLevel to StockLevelResponse DTOs
func ToListStockLevelResponse(levels []domain.StockLevel) []StockLevelResponse {
	res := make([]StockLevelResponse, len(levels))
	for i, s := range levels {
		res[i] = ToStockLevelResponse(&s)
	}
	return res
}
