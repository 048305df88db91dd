package product_controller

import (
	"strconv"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseVanSpec reads the van seed from the query string. A malformed year
// degrades to "no year" rather than failing the request.
func parseVanSpec(c *gin.Context) models.VanSpec {
	spec := models.VanSpec{
		Make:  c.Query("make"),
		Model: c.Query("model"),
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		spec.Year = year
	}
	return spec
}

// parseCriteria reads the filter fields. Every field is optional; the zero
// criteria filters nothing.
func parseCriteria(c *gin.Context) models.FilterCriteria {
	return models.FilterCriteria{
		SearchTerm: c.Query("q"),
		Category:   c.Query("category"),
		Brand:      c.Query("brand"),
		PriceRange: c.Query("price"),
		Stock:      c.Query("stock"),
		SortKey:    c.DefaultQuery("sort", models.SortRandom),
	}
}
