package catalog

import "github.com/abduulthecoder/fam-vans-parts-store/models"

// DefaultPageSize matches the storefront grid.
const DefaultPageSize = 12

// Page returns the 1-indexed page of at most pageSize products. Out-of-range
// pages (including page numbers below 1) yield an empty slice rather than an
// error; callers that want clamping do it themselves.
func Page(products []models.Product, pageSize, pageNumber int) []models.Product {
	if pageSize < 1 || pageNumber < 1 {
		return []models.Product{}
	}
	start := (pageNumber - 1) * pageSize
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// TotalPages returns ceil(count/pageSize); zero for an empty collection.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count < 1 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
