// models/filters.go
package models

// Sort keys accepted by the storefront product listing.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
	SortStock     = "stock"
	SortJobPrice  = "job-price"
	SortRandom    = "random"
)

// Stock filter values. Anything else means "no stock filtering".
const (
	StockAny        = "any"
	StockInStock    = "in-stock"
	StockOutOfStock = "out-of-stock"
)

// FilterCriteria is a value object describing one filtering pass. It is
// re-derived from the request on every call and never mutated in place.
// Zero-valued fields disable their predicate.
type FilterCriteria struct {
	SearchTerm string `json:"searchTerm,omitempty" form:"q"`
	Category   string `json:"category,omitempty" form:"category"`
	Brand      string `json:"brand,omitempty" form:"brand"`
	PriceRange string `json:"priceRange,omitempty" form:"price"`
	Stock      string `json:"stock,omitempty" form:"stock"`
	SortKey    string `json:"sortKey,omitempty" form:"sort"`
}

// IsZero reports whether every filter field (sort key aside) is empty.
func (c FilterCriteria) IsZero() bool {
	return c.SearchTerm == "" && c.Category == "" && c.Brand == "" &&
		c.PriceRange == "" && c.Stock == ""
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Categories   []string          `json:"categories"`
	Brands       []string          `json:"brands"`
	PriceRange   *PriceStats       `json:"priceRange"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}
