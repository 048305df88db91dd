package van_controller

import (
	"net/http"

	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

// GetVanVariations godoc
// @Summary List variations of a van model
// @Description Every trim of a make/model across years (roof, wheelbase, engine variations), ascending by year.
// @Tags Storefront - Vans
// @Produce json
// @Param make query string true "Make"
// @Param model query string true "Model"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing make or model"
// @Router /store/vans/variations [get]
func GetVanVariations(c *gin.Context) {
	vanMake := c.Query("make")
	model := c.Query("model")
	if vanMake == "" || model == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Both make and model are required"))
		return
	}

	variations := config.Vans.Variations(vanMake, model)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Van variations fetched", variations))
}
