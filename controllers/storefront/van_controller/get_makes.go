package van_controller

import (
	"net/http"
	"strconv"

	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// GetVanMakes godoc
// @Summary List van makes
// @Description Distinct makes, ascending. Without a year, all makes across all years.
// @Tags Storefront - Vans
// @Produce json
// @Param year query int false "Model year"
// @Success 200 {object} models.ApiResponse
// @Router /store/vans/makes [get]
func GetVanMakes(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	makes := config.Vans.MakesForYear(year)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Van makes fetched", makes))
}
