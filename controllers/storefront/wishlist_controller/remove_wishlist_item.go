package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// RemoveWishlistItem godoc
// @Summary Remove a part from the wishlist
// @Tags Storefront - Wishlist
// @Produce json
// @Param partNumber path string true "Part number"
// @Success 200 {object} models.ApiResponse "Removed"
// @Failure 404 {object} models.ApiResponse "Part not in wishlist"
// @Failure 500 {object} models.ApiResponse "Store error"
// @Router /store/wishlist/{partNumber} [delete]
func RemoveWishlistItem(c *gin.Context) {
	partNumber := c.Param("partNumber")

	removed, err := store.Remove(c.Request.Context(), partNumber)
	if err != nil {
		log.Printf("[wishlist.remove] store error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Part not in wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Part removed from wishlist", gin.H{
		"part_number": partNumber,
	}))
}

// ClearWishlist godoc
// @Summary Clear the wishlist
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse "Cleared"
// @Failure 500 {object} models.ApiResponse "Store error"
// @Router /store/wishlist [delete]
func ClearWishlist(c *gin.Context) {
	if err := store.Clear(c.Request.Context()); err != nil {
		log.Printf("[wishlist.clear] store error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist cleared", nil))
}
