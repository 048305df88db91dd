package models

// ═══════════════════════════════════════════════════════════
// Wishlist & Quote Models
// ═══════════════════════════════════════════════════════════

// WishlistItemRequest adds a part to the wishlist. The stored entry is a
// snapshot of the product at add time, not a live reference.
type WishlistItemRequest struct {
	PartNumber string `json:"part_number" binding:"required" example:"FV-10234"`
}

// QuoteLine is one wishlist part priced as a full job.
type QuoteLine struct {
	PartNumber      string  `json:"part_number"`
	PartDescription string  `json:"part_description"`
	Brand           string  `json:"brand"`
	RetailPrice     float64 `json:"retail_price"`
	LaborHours      float64 `json:"labor_hours"`
	JobPrice        float64 `json:"job_price"`
}

// Quote is a priced summary of the wishlist at a given labor rate.
type Quote struct {
	QuoteNumber string      `json:"quote_number"`
	LaborRate   float64     `json:"labor_rate"`
	Lines       []QuoteLine `json:"lines"`
	TotalRetail float64     `json:"total_retail"`
	TotalLabor  float64     `json:"total_labor"`
	TotalJob    float64     `json:"total_job"`
}
