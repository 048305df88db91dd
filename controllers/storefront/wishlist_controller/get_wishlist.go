package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// GetWishlist godoc
// @Summary Get the wishlist
// @Description Returns the stored product snapshots in the order they were added.
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Store error"
// @Router /store/wishlist [get]
func GetWishlist(c *gin.Context) {
	items, err := store.Items(c.Request.Context())
	if err != nil {
		log.Printf("[wishlist.get] store error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched", items))
}
