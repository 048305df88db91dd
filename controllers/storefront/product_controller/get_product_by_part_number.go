package product_controller

import (
	"log"
	"net/http"

	"github.com/abduulthecoder/fam-vans-parts-store/catalog"
	"github.com/abduulthecoder/fam-vans-parts-store/config"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/gin-gonic/gin"
)

type productDetail struct {
	models.Product
	JobPrice float64 `json:"job_price"`
}

// GetStorefrontProductByPartNumber godoc
// @Summary Get a single product
// @Description Retrieve one product by part number, with its job price at the default labor rate.
// @Tags Storefront - Products
// @Produce json
// @Param partNumber path string true "Part number"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{partNumber} [get]
func GetStorefrontProductByPartNumber(c *gin.Context) {
	partNumber := c.Param("partNumber")

	product, ok := config.Inventory.ByPartNumber(partNumber)
	if !ok {
		log.Printf("[store.product] part not found: %s", partNumber)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	detail := productDetail{
		Product:  product,
		JobPrice: catalog.DefaultJobPrice(product.RetailPrice, product.LaborHours),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
