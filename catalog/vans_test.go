package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

func TestVanIndexDropsPassengerMinivans(t *testing.T) {
	ix := testIndex()
	for _, v := range ix.Vans() {
		assert.NotContains(t, []string{"Odyssey", "Sienna", "Voyager"}, v.Model)
	}
	assert.Len(t, ix.Vans(), 5)
}

func TestAvailableYearsDescendingDistinct(t *testing.T) {
	years := testIndex().AvailableYears()
	assert.Equal(t, []int{2021, 2020, 2019}, years)
}

func TestMakesForYear(t *testing.T) {
	ix := testIndex()

	assert.Equal(t, []string{"Ram"}, ix.MakesForYear(2020))

	// Zero year → all makes, ascending
	assert.Equal(t, []string{"Ford", "Mercedes-Benz", "Ram"}, ix.MakesForYear(0))

	// Unknown year → empty
	assert.Empty(t, ix.MakesForYear(1999))
}

func TestModelsForYearAndMake(t *testing.T) {
	ix := testIndex()

	// Both present: ascending by model, with model numbers
	options := ix.ModelsForYearAndMake(2020, "Ram")
	require.Len(t, options, 2)
	assert.Equal(t, models.ModelOption{Model: "ProMaster", ModelNumber: "1500"}, options[0])
	assert.Equal(t, models.ModelOption{Model: "ProMaster City", ModelNumber: "SLT"}, options[1])

	// Only year: names only
	options = ix.ModelsForYearAndMake(2019, "")
	require.Len(t, options, 1)
	assert.Equal(t, models.ModelOption{Model: "Transit"}, options[0])

	// Neither: all distinct model names
	options = ix.ModelsForYearAndMake(0, "")
	require.Len(t, options, 4)
	assert.Equal(t, "ProMaster", options[0].Model)
	assert.Empty(t, options[0].ModelNumber)
}

func TestModelsForYearAndMakeFirstTrimWins(t *testing.T) {
	// Two 2019 Ford Transits with different model numbers: the selector
	// surfaces the first one in load order.
	options := testIndex().ModelsForYearAndMake(2019, "Ford")
	require.Len(t, options, 1)
	assert.Equal(t, "T250", options[0].ModelNumber)
}

func TestByModelNumber(t *testing.T) {
	ix := testIndex()

	van, ok := ix.ByModelNumber("2500")
	require.True(t, ok)
	assert.Equal(t, "Sprinter", van.Model)

	_, ok = ix.ByModelNumber("nope")
	assert.False(t, ok)
}

func TestVariationsSortedByYear(t *testing.T) {
	vans := []models.Van{
		{Year: 2021, Make: "Ford", Model: "Transit", ModelNumber: "T250"},
		{Year: 2019, Make: "Ford", Model: "Transit", ModelNumber: "T250"},
		{Year: 2020, Make: "Ford", Model: "Transit", ModelNumber: "T350"},
	}
	variations := NewVanIndex(vans).Variations("Ford", "Transit")
	require.Len(t, variations, 3)
	assert.Equal(t, 2019, variations[0].Year)
	assert.Equal(t, 2021, variations[2].Year)
}
