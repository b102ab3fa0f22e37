package domain

import "time"

// StockLevel is the derived inventory position for one SKU: purchases minus
// sales, aggregated at query time. It is never persisted as its own row.
type StockLevel struct {
	ItemSKU           string     `json:"itemSKU" db:"item_sku"`
	ItemName          string     `json:"itemName" db:"item_name"`
	QuantityPurchased int64      `json:"quantityPurchased" db:"quantity_purchased"`
	QuantitySold      int64      `json:"quantitySold" db:"quantity_sold"`
	QuantityOnHand    int64      `json:"quantityOnHand" db:"quantity_on_hand"`
	LastMovementAt    *time.Time `json:"lastMovementAt,omitempty" db:"last_movement_at"`
}
