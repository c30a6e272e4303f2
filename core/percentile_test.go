package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPercentile tests linear interpolation between nearest ranks.
func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		sorted   []float64
		p        float64
		expected float64
	}{
		{
			name:     "empty slice",
			sorted:   []float64{},
			p:        50,
			expected: 0,
		},
		{
			name:     "single value",
			sorted:   []float64{5},
			p:        90,
			expected: 5,
		},
		{
			name:     "median interpolates between middle pair",
			sorted:   []float64{10, 20, 30, 40},
			p:        50,
			expected: 25,
		},
		{
			name:     "p25 interpolates",
			sorted:   []float64{10, 20, 30, 40},
			p:        25,
			expected: 17.5,
		},
		{
			name:     "p75 interpolates",
			sorted:   []float64{10, 20, 30, 40},
			p:        75,
			expected: 32.5,
		},
		{
			name:     "p0 is the minimum",
			sorted:   []float64{10, 20, 30, 40},
			p:        0,
			expected: 10,
		},
		{
			name:     "p100 is the maximum",
			sorted:   []float64{10, 20, 30, 40},
			p:        100,
			expected: 40,
		},
		{
			name:     "exact rank needs no interpolation",
			sorted:   []float64{1, 2, 3},
			p:        50,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Percentile(tt.sorted, tt.p), 0.001)
		})
	}
}

// TestMean tests the arithmetic mean helper.
func TestMean(t *testing.T) {
	assert.InDelta(t, 0, Mean(nil), 0.001)
	assert.InDelta(t, 2, Mean([]float64{1, 2, 3}), 0.001)
}
