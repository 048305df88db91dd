package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

// Inventory holds the flattened product catalog. It is read-only after load;
// every accessor returns copies so callers can never mutate the base data.
type Inventory struct {
	products []models.Product
	byPart   map[string]models.Product
}

// NewInventory flattens the raw category-keyed document into a single product
// list, stamping each record with its category. Categories are walked in
// sorted name order so the flattened load order is deterministic. Duplicate
// part numbers across categories are tolerated; ByPartNumber resolves to the
// first occurrence.
func NewInventory(doc models.InventoryDocument) *Inventory {
	categories := make([]string, 0, len(doc))
	for name := range doc {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	inv := &Inventory{byPart: make(map[string]models.Product)}
	for _, name := range categories {
		for _, p := range doc[name] {
			p.Category = name
			inv.products = append(inv.products, p)
			if _, seen := inv.byPart[p.PartNumber]; !seen {
				inv.byPart[p.PartNumber] = p
			}
		}
	}
	return inv
}

// LoadInventory reads and flattens an inventory document from disk.
func LoadInventory(path string) (*Inventory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory document: %w", err)
	}
	var doc models.InventoryDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse inventory document: %w", err)
	}
	return NewInventory(doc), nil
}

// Products returns a copy of the full flattened catalog in load order.
func (inv *Inventory) Products() []models.Product {
	out := make([]models.Product, len(inv.products))
	copy(out, inv.products)
	return out
}

// Len returns the number of products in the catalog.
func (inv *Inventory) Len() int {
	return len(inv.products)
}

// ByPartNumber looks up a product by its part number.
func (inv *Inventory) ByPartNumber(partNumber string) (models.Product, bool) {
	p, ok := inv.byPart[partNumber]
	return p, ok
}

// ByCategory returns all products in the named category, load order.
func (inv *Inventory) ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range inv.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category names, ascending.
func (inv *Inventory) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range inv.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Brands returns the distinct non-empty brand names, ascending.
func (inv *Inventory) Brands() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range inv.products {
		if p.Brand != "" && !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	sort.Strings(out)
	return out
}

// AvailabilityCounts tallies in-stock vs out-of-stock products.
func (inv *Inventory) AvailabilityCounts() models.AvailabilityData {
	var data models.AvailabilityData
	for _, p := range inv.products {
		if p.InStock() {
			data.InStock++
		} else {
			data.OutOfStock++
		}
	}
	return data
}

// PriceStatsFor computes min/max/average retail price over a product set.
// An empty set yields all zeros.
func PriceStatsFor(products []models.Product) models.PriceStats {
	if len(products) == 0 {
		return models.PriceStats{}
	}
	stats := models.PriceStats{Min: products[0].RetailPrice, Max: products[0].RetailPrice}
	var sum float64
	for _, p := range products {
		if p.RetailPrice < stats.Min {
			stats.Min = p.RetailPrice
		}
		if p.RetailPrice > stats.Max {
			stats.Max = p.RetailPrice
		}
		sum += p.RetailPrice
	}
	stats.Average = sum / float64(len(products))
	return stats
}
