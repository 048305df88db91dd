package van_controller

import (
	"net/http"

	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// GetVanYears godoc
// @Summary List van model years
// @Description Distinct model years in the van database, newest first.
// @Tags Storefront - Vans
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/vans/years [get]
func GetVanYears(c *gin.Context) {
	years := config.Vans.AvailableYears()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Van years fetched", years))
}
