package product_controller

import (
	"net/http"

	"github.com/abduulthecoder/fam-vans-parts-store/catalog"
	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary List storefront products
// @Description List products, optionally matched to a van (year/make/model) and filtered, sorted and paginated.
// @Tags Storefront - Products
// @Produce json
// @Param year query int false "Van year"
// @Param make query string false "Van make"
// @Param model query string false "Van model"
// @Param q query string false "Search query (part description or part number)"
// @Param category query string false "Category name"
// @Param brand query string false "Brand name"
// @Param price query string false "Price range, inclusive: min-max or min- for open-ended"
// @Param stock query string false "Stock filter (in-stock | out-of-stock)"
// @Param sort query string false "Sort key (price-low, price-high, name, stock, job-price, random)" default(random)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	spec := parseVanSpec(c)
	criteria := parseCriteria(c)

	// Base collection: van-compatible products when a van is seeded, the
	// full catalog otherwise. An unmatched spec yields an empty set, which
	// is a "no results" response, never an error.
	var base []models.Product
	if spec.IsZero() {
		base = config.Inventory.Products()
	} else {
		base = config.Vans.CompatibleProducts(config.Inventory, spec)
	}

	sess := catalog.NewSession(base, limit)
	sess.ApplyFilters(criteria)
	sess.SetPage(page)

	meta := &models.Pagination{
		Page:       sess.PageNumber(),
		Limit:      limit,
		Total:      sess.Total(),
		TotalPages: sess.TotalPages(),
	}

	var van *models.VanSpec
	if !spec.IsZero() {
		van = &spec
	}

	c.JSON(http.StatusOK, models.VanPaginatedResponse(
		c,
		"Products fetched successfully",
		sess.CurrentPage(),
		meta,
		van,
	))
}
