package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

func TestSessionStartsUnfilteredOnPageOne(t *testing.T) {
	base := testInventory().Products()
	s := NewSession(base, 2)

	assert.Equal(t, 1, s.PageNumber())
	assert.Equal(t, base, s.Working())
	assert.Len(t, s.CurrentPage(), 2)
	assert.Equal(t, 2, s.TotalPages())
}

func TestSessionApplyFiltersResetsPage(t *testing.T) {
	s := NewSession(numberedProducts(30), 10)
	s.SetPage(3)
	require.Equal(t, 3, s.PageNumber())

	s.ApplyFilters(models.FilterCriteria{SortKey: models.SortName})
	assert.Equal(t, 1, s.PageNumber())
}

func TestSessionFiltersFromBaseNotWorking(t *testing.T) {
	s := NewSession(testInventory().Products(), DefaultPageSize)

	s.ApplyFilters(models.FilterCriteria{Category: "shelving"})
	require.Equal(t, 2, s.Total())

	// A broader criteria set must see the full base again, not the
	// previously narrowed working collection.
	s.ApplyFilters(models.FilterCriteria{Brand: "Ranger"})
	assert.Equal(t, 2, s.Total())
	for _, p := range s.Working() {
		assert.Equal(t, "Ranger", p.Brand)
	}
}

func TestSessionApplyFiltersIdempotent(t *testing.T) {
	s := NewSession(testInventory().Products(), DefaultPageSize)
	criteria := models.FilterCriteria{Stock: models.StockInStock, SortKey: models.SortPriceLow}

	s.ApplyFilters(criteria)
	first := s.Working()
	s.ApplyFilters(criteria)
	assert.Equal(t, first, s.Working())
}

func TestSessionClearFiltersRestoresBase(t *testing.T) {
	base := testInventory().Products()
	s := NewSession(base, DefaultPageSize)

	s.ApplyFilters(models.FilterCriteria{Category: "partitions", SortKey: models.SortPriceHigh})
	require.NotEqual(t, base, s.Working())

	s.ClearFilters()
	assert.Equal(t, base, s.Working())
	assert.Equal(t, 1, s.PageNumber())
	assert.True(t, s.Criteria().IsZero())
}

func TestSessionSetPageClamps(t *testing.T) {
	s := NewSession(numberedProducts(25), 10)

	s.SetPage(99)
	assert.Equal(t, 3, s.PageNumber())

	s.SetPage(-4)
	assert.Equal(t, 1, s.PageNumber())
}

func TestSessionEmptyBase(t *testing.T) {
	s := NewSession(nil, DefaultPageSize)

	assert.Zero(t, s.Total())
	assert.Zero(t, s.TotalPages())
	assert.Empty(t, s.CurrentPage())

	s.SetPage(5)
	assert.Equal(t, 5, s.PageNumber()) // nothing to clamp against
	assert.Empty(t, s.CurrentPage())
}

func TestSessionDefaultPageSize(t *testing.T) {
	s := NewSession(numberedProducts(13), 0)
	assert.Equal(t, DefaultPageSize, s.PageSize())
	assert.Equal(t, 2, s.TotalPages())
}
