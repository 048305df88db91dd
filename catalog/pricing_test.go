package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobPrice(t *testing.T) {
	assert.InDelta(t, 200, DefaultJobPrice(100, 2), 1e-9)
	assert.InDelta(t, 212.49, JobPrice(99.99, 1.5, 75), 1e-9)
	assert.InDelta(t, 100, JobPrice(100, 0, 50), 1e-9)
	assert.InDelta(t, 0, JobPrice(0, 0, 0), 1e-9)
}

func TestJobPricePropagatesNaN(t *testing.T) {
	assert.True(t, math.IsNaN(JobPrice(math.NaN(), 1, 50)))
}
