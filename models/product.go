package models

// ═══════════════════════════════════════════════════════════
// Inventory Models
// ═══════════════════════════════════════════════════════════

// Product is a single part record. The inventory document groups products
// by category; Category is flattened into each record at load time and is
// preserved through every transformation after that.
type Product struct {
	PartNumber      string  `json:"part_number"`
	PartDescription string  `json:"part_description"`
	Brand           string  `json:"brand"`
	VehicleFitment  string  `json:"vehicle_fitment"`
	RetailPrice     float64 `json:"retail_price"`
	LaborHours      float64 `json:"labor_hours"`
	QuantityOnHand  int     `json:"quantity_on_hand"`
	Category        string  `json:"category"`
}

// InventoryDocument mirrors the raw inventory.json layout: category name to
// ordered product list. Raw records carry no category field of their own.
type InventoryDocument map[string][]Product

// InStock reports whether the part has any units on hand.
func (p Product) InStock() bool {
	return p.QuantityOnHand > 0
}

// PriceStats summarises retail prices over a product set.
type PriceStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}
