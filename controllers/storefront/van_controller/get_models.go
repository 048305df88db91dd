package van_controller

import (
	"net/http"
	"strconv"

	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// GetVanModels godoc
// @Summary List van models
// @Description Model selector options, ascending by model name. With both year and make each option carries a model number; with fewer fields, names only.
// @Tags Storefront - Vans
// @Produce json
// @Param year query int false "Model year"
// @Param make query string false "Make"
// @Success 200 {object} models.ApiResponse
// @Router /store/vans/models [get]
func GetVanModels(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	vanMake := c.Query("make")
	options := config.Vans.ModelsForYearAndMake(year, vanMake)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Van models fetched", options))
}
