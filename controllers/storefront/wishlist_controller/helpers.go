package wishlist_controller

import (
	"strconv"
	"strings"

	"github.com/abduulthecoder/fam-vans-parts-store/catalog"
	"github.com/abduulthecoder/fam-vans-parts-store/models"
	"github.com/abduulthecoder/fam-vans-parts-store/wishlist"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var store wishlist.Store

// Init wires the wishlist key-value store. Must be called before the
// wishlist routes are served.
func Init(s wishlist.Store) {
	store = s
}

// parseLaborRate reads an hourly labor rate override from the query string.
// Missing, malformed or non-positive values fall back to the default rate.
func parseLaborRate(c *gin.Context) float64 {
	rate, err := strconv.ParseFloat(c.Query("rate"), 64)
	if err != nil || rate <= 0 {
		return catalog.DefaultLaborRate
	}
	return rate
}

// buildQuote prices every wishlist snapshot as a full job at the given rate.
func buildQuote(items []models.Product, laborRate float64) models.Quote {
	quote := models.Quote{
		QuoteNumber: "FV-" + strings.ToUpper(uuid.NewString()[:8]),
		LaborRate:   laborRate,
		Lines:       make([]models.QuoteLine, 0, len(items)),
	}
	for _, p := range items {
		jobPrice := catalog.JobPrice(p.RetailPrice, p.LaborHours, laborRate)
		quote.Lines = append(quote.Lines, models.QuoteLine{
			PartNumber:      p.PartNumber,
			PartDescription: p.PartDescription,
			Brand:           p.Brand,
			RetailPrice:     p.RetailPrice,
			LaborHours:      p.LaborHours,
			JobPrice:        jobPrice,
		})
		quote.TotalRetail += p.RetailPrice
		quote.TotalLabor += p.LaborHours * laborRate
		quote.TotalJob += jobPrice
	}
	return quote
}
