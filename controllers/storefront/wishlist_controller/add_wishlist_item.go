package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// AddWishlistItem godoc
// @Summary Add a part to the wishlist
// @Description Stores a snapshot of the product as it exists in the catalog right now.
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param item body models.WishlistItemRequest true "Part to add"
// @Success 200 {object} models.ApiResponse "Added (or already present)"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 404 {object} models.ApiResponse "Unknown part number"
// @Failure 500 {object} models.ApiResponse "Store error"
// @Router /store/wishlist [post]
func AddWishlistItem(c *gin.Context) {
	var req models.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "part_number is required"))
		return
	}

	product, ok := config.Inventory.ByPartNumber(req.PartNumber)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	added, err := store.Add(c.Request.Context(), product)
	if err != nil {
		log.Printf("[wishlist.add] store error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	message := "Part added to wishlist"
	if !added {
		message = "Part already in wishlist"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, gin.H{
		"part_number": product.PartNumber,
		"added":       added,
	}))
}
