package catalog

import (
	"strconv"
	"strings"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

// FindVans returns every van matching all set fields of the spec, exact
// equality, load order. Unset fields are wildcards.
func (ix *VanIndex) FindVans(spec models.VanSpec) []models.Van {
	var out []models.Van
	for _, v := range ix.vans {
		if spec.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}

// CompatibleProducts resolves a van spec to the products whose fitment text
// mentions the van. Resolution is against the FIRST van matching the spec;
// when several trims match, the rest are ignored rather than unioned. No
// matching van means an empty result, not an error.
//
// A product is compatible when its vehicle_fitment contains any of the van's
// identifiers (year, make, model, "make model", "year make", type) as a
// case-insensitive substring. This is a coarse free-text heuristic: a bare
// year can match inside an unrelated number in the fitment text. That
// false-positive risk is accepted; do not narrow the matching rules here.
// Results are deduplicated by part number and keep catalog load order.
func (ix *VanIndex) CompatibleProducts(inv *Inventory, spec models.VanSpec) []models.Product {
	vans := ix.FindVans(spec)
	if len(vans) == 0 {
		return nil
	}
	van := vans[0]

	year := strconv.Itoa(van.Year)
	identifiers := []string{
		year,
		van.Make,
		van.Model,
		van.Make + " " + van.Model,
		year + " " + van.Make,
		van.Type,
	}
	needles := make([]string, 0, len(identifiers))
	for _, id := range identifiers {
		if strings.TrimSpace(id) == "" {
			continue
		}
		needles = append(needles, strings.ToLower(id))
	}

	seen := make(map[string]bool)
	var out []models.Product
	for _, p := range inv.products {
		fitment := strings.ToLower(p.VehicleFitment)
		for _, needle := range needles {
			if strings.Contains(fitment, needle) {
				if !seen[p.PartNumber] {
					seen[p.PartNumber] = true
					out = append(out, p)
				}
				break
			}
		}
	}
	return out
}
