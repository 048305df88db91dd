package catalog

// DefaultLaborRate is the shop's hourly labor rate in dollars.
const DefaultLaborRate = 50.0

// JobPrice derives the total job price from retail price, labor hours and
// an hourly labor rate. Pure arithmetic; NaN inputs propagate unguarded.
func JobPrice(retailPrice, laborHours, laborRate float64) float64 {
	return retailPrice + laborHours*laborRate
}

// DefaultJobPrice is JobPrice at the default labor rate.
func DefaultJobPrice(retailPrice, laborHours float64) float64 {
	return JobPrice(retailPrice, laborHours, DefaultLaborRate)
}
