package catalog

import (
	"strconv"
	"strings"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

// Filter applies the criteria to a product set as a conjunction of
// independent predicates and returns the survivors in input order. Each
// predicate is a no-op when its criteria field is empty, so the zero
// criteria is the identity. Filter never inspects previous filter output;
// callers always hand it the retained base collection, which keeps repeated
// filtering idempotent.
func Filter(products []models.Product, c models.FilterCriteria) []models.Product {
	search := strings.ToLower(c.SearchTerm)
	minPrice, maxPrice, priceOK := parsePriceRange(c.PriceRange)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.PartDescription), search) &&
			!strings.Contains(strings.ToLower(p.PartNumber), search) {
			// Fitment text is deliberately not searched here; that scan
			// belongs to the van matcher.
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.Brand != "" && p.Brand != c.Brand {
			continue
		}
		if priceOK {
			if p.RetailPrice < minPrice {
				continue
			}
			if maxPrice > 0 && p.RetailPrice > maxPrice {
				continue
			}
		}
		if c.Stock == models.StockInStock && p.QuantityOnHand == 0 {
			continue
		}
		if c.Stock == models.StockOutOfStock && p.QuantityOnHand > 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// parsePriceRange parses "min-max" or the open-ended "min-". Bounds are
// inclusive; maxPrice 0 means unbounded above. Anything unparseable
// disables the price predicate entirely rather than failing the pipeline.
func parsePriceRange(s string) (minPrice, maxPrice float64, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(s, "-", 2)
	minPrice, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		// An unparseable upper bound degrades to open-ended, mirroring the
		// permissive handling of the whole range.
		if v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			maxPrice = v
		}
	}
	return minPrice, maxPrice, true
}
