package filter_controller

import (
	"net/http"

	metadata_cache "github.com/abduulthecoder/fam-vans-parts-store/cache"
	"github.com/abduulthecoder/fam-vans-parts-store/catalog"
	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, categories, brands and price range for storefront filters
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := metadata_cache.GetMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", cached))
		return
	}

	inv := config.Inventory

	availability := inv.AvailabilityCounts()
	stats := catalog.PriceStatsFor(inv.Products())
	metadata := &models.FilterMetadata{
		Availability: &availability,
		Categories:   inv.Categories(),
		Brands:       inv.Brands(),
		PriceRange:   &stats,
	}

	metadata_cache.SetMetadata(metadata)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
