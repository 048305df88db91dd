package catalog

import (
	"math/rand/v2"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

var (
	shuffleMu  sync.Mutex
	shuffleSrc *rand.Rand // nil → shared top-level source
)

// SetShuffleSource swaps the random source behind the "random" sort key.
// Passing nil restores the ambient source. Random ordering is explicitly
// non-deterministic; inject a seeded source only for tests.
func SetShuffleSource(r *rand.Rand) {
	shuffleMu.Lock()
	shuffleSrc = r
	shuffleMu.Unlock()
}

func shuffle(n int, swap func(i, j int)) {
	shuffleMu.Lock()
	defer shuffleMu.Unlock()
	if shuffleSrc != nil {
		shuffleSrc.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}

// Sort orders a copy of the product set by the given key and returns it;
// the input is never reordered. Price and stock sorts are stable, so equal
// keys keep their relative input order. Any unrecognised key (including
// "random") shuffles.
func Sort(products []models.Product, key string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch key {
	case models.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].RetailPrice < sorted[j].RetailPrice
		})
	case models.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].RetailPrice > sorted[j].RetailPrice
		})
	case models.SortName:
		cl := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return cl.CompareString(sorted[i].PartDescription, sorted[j].PartDescription) < 0
		})
	case models.SortStock:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].QuantityOnHand > sorted[j].QuantityOnHand
		})
	case models.SortJobPrice:
		// Fixed default labor rate here, independent of any per-quote rate.
		sort.SliceStable(sorted, func(i, j int) bool {
			return DefaultJobPrice(sorted[i].RetailPrice, sorted[i].LaborHours) <
				DefaultJobPrice(sorted[j].RetailPrice, sorted[j].LaborHours)
		})
	default:
		shuffle(len(sorted), func(i, j int) {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		})
	}
	return sorted
}
