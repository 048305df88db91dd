package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// GetWishlistQuote godoc
// @Summary Get a job-price quote for the wishlist
// @Description Prices every wishlist part as a full job (retail + labor hours × hourly rate) and totals the lot.
// @Tags Storefront - Wishlist
// @Produce json
// @Param rate query number false "Hourly labor rate override" default(50)
// @Success 200 {object} models.ApiResponse{data=models.Quote}
// @Failure 500 {object} models.ApiResponse "Store error"
// @Router /store/wishlist/quote [get]
func GetWishlistQuote(c *gin.Context) {
	items, err := store.Items(c.Request.Context())
	if err != nil {
		log.Printf("[wishlist.quote] store error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	quote := buildQuote(items, parseLaborRate(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quote generated", quote))
}
