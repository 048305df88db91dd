package wishlist_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

// DownloadWishlistQuotePDF godoc
// @Summary Download the wishlist quote as a PDF
// @Description Generate and download a job-price quote PDF for the current wishlist.
// @Tags Storefront - Wishlist
// @Produce octet-stream
// @Param rate query number false "Hourly labor rate override" default(50)
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Wishlist is empty"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/wishlist/quote/pdf [get]
func DownloadWishlistQuotePDF(c *gin.Context) {
	items, err := store.Items(c.Request.Context())
	if err != nil {
		log.Printf("[wishlist.quote-pdf] store error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Wishlist is empty"))
		return
	}

	quote := buildQuote(items, parseLaborRate(c))

	pdfBuffer, err := generateQuotePDF(quote)
	if err != nil {
		log.Printf("[wishlist.quote-pdf] PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate quote PDF"))
		return
	}

	filename := fmt.Sprintf("quote-%s.pdf", quote.QuoteNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[wishlist.quote-pdf] quote %s downloaded (%d lines)", quote.QuoteNumber, len(quote.Lines))
}

func generateQuotePDF(quote models.Quote) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Quote Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("JOB QUOTE", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Company Info
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("FAM VANS PARTS", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("parts@famvans.com", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Quote %s — %s", quote.QuoteNumber, time.Now().Format("Jan 2, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Labor rate: $%.2f/hr", quote.LaborRate), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Table header
	m.Row(7, func() {
		m.Col(2, func() {
			m.Text("Part #", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text("Description", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Retail", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Labor Hrs", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Job Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	// Lines
	for _, line := range quote.Lines {
		m.Row(6, func() {
			m.Col(2, func() {
				m.Text(line.PartNumber, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(line.PartDescription, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", line.RetailPrice), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%.1f", line.LaborHours), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", line.JobPrice), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Summary Section
	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Parts", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", quote.TotalRetail), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Labor", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", quote.TotalLabor), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(7, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", quote.TotalJob), props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(10, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Quote valid for 30 days. Labor estimates assume standard installation.", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
