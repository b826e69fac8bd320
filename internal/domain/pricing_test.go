package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcPrivateTourPrice_FlatTier(t *testing.T) {
	tests := []struct {
		guests    int
		perPerson float64
	}{
		{1, 249.95},
		{2, 124.95},
		{3, 83.95},
		{4, 62.95},
		{5, 49.95},
		{6, 41.95},
		{7, 35.95},
		{8, 31.95},
		{9, 27.95},
		{10, 24.95},
	}

	for _, tt := range tests {
		price := CalcPrivateTourPrice(tt.guests)
		assert.InDelta(t, tt.perPerson, price.PerPerson, 0.001, "per-person for %d guests", tt.guests)
		assert.InDelta(t, PrivateTourFlatTotal, price.Total, 0.001, "total for %d guests", tt.guests)
	}
}

func TestCalcPrivateTourPrice_AboveTier(t *testing.T) {
	tests := []struct {
		guests int
		total  float64
	}{
		{11, 274.45},
		{15, 374.25},
		{20, 499.0},
		{30, 748.5},
	}

	for _, tt := range tests {
		price := CalcPrivateTourPrice(tt.guests)
		assert.InDelta(t, PrivateTourPerPersonXL, price.PerPerson, 0.001, "per-person for %d guests", tt.guests)
		assert.InDelta(t, tt.total, price.Total, 0.001, "total for %d guests", tt.guests)
	}
}

func TestCalcPrivateTourPrice_ClampsBelowMinimum(t *testing.T) {
	price := CalcPrivateTourPrice(0)
	assert.InDelta(t, 249.95, price.PerPerson, 0.001)
	assert.InDelta(t, PrivateTourFlatTotal, price.Total, 0.001)
}
