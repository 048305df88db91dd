package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

// Passenger minivans are dropped at load time; the catalog only serves
// cargo/commercial vans.
var passengerMinivans = map[string]bool{
	"Odyssey": true,
	"Sienna":  true,
	"Voyager": true,
}

// VanIndex holds the van database and answers year/make/model enumeration
// queries for the van selector. Read-only after load.
type VanIndex struct {
	vans []models.Van
}

// NewVanIndex builds an index over the given vans, excluding passenger
// minivan models.
func NewVanIndex(vans []models.Van) *VanIndex {
	ix := &VanIndex{}
	for _, v := range vans {
		if passengerMinivans[v.Model] {
			continue
		}
		ix.vans = append(ix.vans, v)
	}
	return ix
}

// LoadVans reads the van database document from disk.
func LoadVans(path string) (*VanIndex, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vans document: %w", err)
	}
	var doc models.VansDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse vans document: %w", err)
	}
	return NewVanIndex(doc.Vans), nil
}

// Vans returns a copy of the indexed vans in load order.
func (ix *VanIndex) Vans() []models.Van {
	out := make([]models.Van, len(ix.vans))
	copy(out, ix.vans)
	return out
}

// AvailableYears returns the distinct model years, descending.
func (ix *VanIndex) AvailableYears() []int {
	seen := make(map[int]bool)
	var years []int
	for _, v := range ix.vans {
		if !seen[v.Year] {
			seen[v.Year] = true
			years = append(years, v.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// MakesForYear returns the distinct makes for the given year, ascending.
// A zero year means all makes across all years.
func (ix *VanIndex) MakesForYear(year int) []string {
	seen := make(map[string]bool)
	var makes []string
	for _, v := range ix.vans {
		if year != 0 && v.Year != year {
			continue
		}
		if !seen[v.Make] {
			seen[v.Make] = true
			makes = append(makes, v.Make)
		}
	}
	sort.Strings(makes)
	return makes
}

// ModelsForYearAndMake returns the model selector options, ascending by
// model name. With both year and make set, each option carries the model
// number of the first trim encountered in load order for that model — when
// several trims share a model this is an arbitrary pick, not a canonical
// one. With only one of year/make set, options are distinct model names
// filtered by whichever is present; with neither, all distinct model names.
func (ix *VanIndex) ModelsForYearAndMake(year int, vanMake string) []models.ModelOption {
	withNumbers := year != 0 && vanMake != ""

	seen := make(map[string]bool)
	var options []models.ModelOption
	for _, v := range ix.vans {
		if year != 0 && v.Year != year {
			continue
		}
		if vanMake != "" && v.Make != vanMake {
			continue
		}
		if seen[v.Model] {
			continue
		}
		seen[v.Model] = true
		opt := models.ModelOption{Model: v.Model}
		if withNumbers {
			opt.ModelNumber = v.ModelNumber
		}
		options = append(options, opt)
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Model < options[j].Model
	})
	return options
}

// ByModelNumber looks up a van by model number.
func (ix *VanIndex) ByModelNumber(modelNumber string) (models.Van, bool) {
	for _, v := range ix.vans {
		if v.ModelNumber == modelNumber {
			return v, true
		}
	}
	return models.Van{}, false
}

// Variations returns every trim of a make/model across years, ascending by
// year.
func (ix *VanIndex) Variations(vanMake, model string) []models.Van {
	var out []models.Van
	for _, v := range ix.vans {
		if v.Make == vanMake && v.Model == model {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
