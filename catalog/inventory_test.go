package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryFlattensAndStampsCategories(t *testing.T) {
	inv := testInventory()

	require.Equal(t, 4, inv.Len())

	// Categories walk in sorted order, so partitions precede shelving
	products := inv.Products()
	assert.Equal(t, "PT-300", products[0].PartNumber)
	assert.Equal(t, "partitions", products[0].Category)
	assert.Equal(t, "SH-100", products[2].PartNumber)
	assert.Equal(t, "shelving", products[2].Category)
}

func TestInventoryProductsReturnsCopy(t *testing.T) {
	inv := testInventory()

	first := inv.Products()
	first[0].PartNumber = "MUTATED"

	assert.Equal(t, "PT-300", inv.Products()[0].PartNumber)
}

func TestInventoryByPartNumber(t *testing.T) {
	inv := testInventory()

	p, ok := inv.ByPartNumber("SH-200")
	require.True(t, ok)
	assert.Equal(t, "Aluminum Shelf Kit", p.PartDescription)
	assert.Equal(t, "shelving", p.Category)

	_, ok = inv.ByPartNumber("NOPE-1")
	assert.False(t, ok)
}

func TestInventoryByCategory(t *testing.T) {
	inv := testInventory()

	shelving := inv.ByCategory("shelving")
	require.Len(t, shelving, 2)
	assert.Equal(t, "SH-100", shelving[0].PartNumber)

	assert.Empty(t, inv.ByCategory("flooring"))
}

func TestInventoryCategoriesAndBrandsSorted(t *testing.T) {
	inv := testInventory()

	assert.Equal(t, []string{"partitions", "shelving"}, inv.Categories())
	assert.Equal(t, []string{"Adrian", "Ranger", "Weather Guard"}, inv.Brands())
}

func TestInventoryAvailabilityCounts(t *testing.T) {
	counts := testInventory().AvailabilityCounts()
	assert.Equal(t, 3, counts.InStock)
	assert.Equal(t, 1, counts.OutOfStock)
}

func TestPriceStatsFor(t *testing.T) {
	stats := PriceStatsFor(testInventory().Products())
	assert.InDelta(t, 189, stats.Min, 1e-9)
	assert.InDelta(t, 449.5, stats.Max, 1e-9)
	assert.InDelta(t, (189+210+299.99+449.5)/4, stats.Average, 1e-9)

	assert.Zero(t, PriceStatsFor(nil))
}

func TestLoadInventoryFromDisk(t *testing.T) {
	raw, err := json.Marshal(testInventoryDoc())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	inv, err := LoadInventory(path)
	require.NoError(t, err)
	assert.Equal(t, 4, inv.Len())

	_, err = LoadInventory(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadInventoryRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadInventory(path)
	assert.Error(t, err)
}
