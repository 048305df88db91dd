package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

func TestFindVansExactEqualityWithWildcards(t *testing.T) {
	ix := testIndex()

	// Every provided field must match exactly
	found := ix.FindVans(models.VanSpec{Year: 2019, Make: "Ford", Roof: "Low"})
	require.Len(t, found, 1)
	assert.Equal(t, "T350", found[0].ModelNumber)

	// Absent fields are wildcards
	assert.Len(t, ix.FindVans(models.VanSpec{Make: "Ford"}), 2)

	// No text matching: "For" is not "Ford"
	assert.Empty(t, ix.FindVans(models.VanSpec{Make: "For"}))

	// Zero spec matches everything
	assert.Len(t, ix.FindVans(models.VanSpec{}), 5)
}

func TestCompatibleProductsMatchesFitmentText(t *testing.T) {
	ix := testIndex()
	inv := testInventory()

	// The identifier "Ford" appears in "2015-2023 Ford Transit"
	products := ix.CompatibleProducts(inv, models.VanSpec{Year: 2019, Make: "Ford"})
	partNumbers := make([]string, 0, len(products))
	for _, p := range products {
		partNumbers = append(partNumbers, p.PartNumber)
	}
	assert.Contains(t, partNumbers, "SH-100")

	// The type identifier "Cargo" also pulls in the universal partition
	assert.Contains(t, partNumbers, "PT-310")
}

func TestCompatibleProductsNoVanMatch(t *testing.T) {
	products := testIndex().CompatibleProducts(testInventory(), models.VanSpec{Year: 1999, Make: "Ford"})
	assert.Empty(t, products)
}

func TestCompatibleProductsUsesFirstVanOnly(t *testing.T) {
	// Two vans match {2019, Ford}; resolution uses the first in load order
	// (T250 High/148) and ignores the second. Matching still hits the same
	// fitment text either way here; what we pin down is that an ambiguous
	// spec does not error and does not union.
	ix := testIndex()
	found := ix.FindVans(models.VanSpec{Year: 2019, Make: "Ford"})
	require.Len(t, found, 2)

	products := ix.CompatibleProducts(testInventory(), models.VanSpec{Year: 2019, Make: "Ford"})
	assert.NotEmpty(t, products)
}

func TestCompatibleProductsDedupesByPartNumber(t *testing.T) {
	// One product whose fitment matches several identifiers (year, make,
	// "year make") must appear once.
	doc := models.InventoryDocument{
		"shelving": {
			{PartNumber: "SH-900", PartDescription: "Universal Shelf", VehicleFitment: "2019 Ford Transit and friends", RetailPrice: 100, QuantityOnHand: 1},
		},
	}
	products := testIndex().CompatibleProducts(NewInventory(doc), models.VanSpec{Year: 2019, Make: "Ford"})
	assert.Len(t, products, 1)
}

func TestCompatibleProductsSkipsBlankIdentifiers(t *testing.T) {
	// A van with no type must not produce an empty identifier that matches
	// every fitment string.
	vans := []models.Van{{Year: 2022, Make: "GMC", Model: "Savana", ModelNumber: "G2500"}}
	doc := models.InventoryDocument{
		"flooring": {
			{PartNumber: "FL-100", PartDescription: "Floor Mat", VehicleFitment: "Nissan NV200 only", RetailPrice: 50, QuantityOnHand: 3},
		},
	}
	products := NewVanIndex(vans).CompatibleProducts(NewInventory(doc), models.VanSpec{Make: "GMC"})
	assert.Empty(t, products)
}

func TestCompatibleProductsYearSubstringFalsePositive(t *testing.T) {
	// Documented heuristic behavior: a bare year matching inside an
	// unrelated number still counts as compatible.
	vans := []models.Van{{Year: 250, Make: "Ford", Model: "Transit", ModelNumber: "X"}}
	doc := models.InventoryDocument{
		"shelving": {
			{PartNumber: "SH-250", PartDescription: "Shelf", VehicleFitment: "Fits model T2500 vans", RetailPrice: 10, QuantityOnHand: 1},
		},
	}
	products := NewVanIndex(vans).CompatibleProducts(NewInventory(doc), models.VanSpec{Year: 250})
	assert.Len(t, products, 1)
}
