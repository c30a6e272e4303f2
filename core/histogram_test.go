package core

import (
	"math"
	"testing"
	"time"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildHourHistogram verifies the percentile cut points over all project
// hours in the population.
func TestBuildHourHistogram(t *testing.T) {
	users := []schema.UserSnapshot{
		userWith("a", project(10, false, false), project(20, false, false)),
		userWith("b", project(30, false, false), project(40, false, false)),
		userWith("c"),
	}

	hist := BuildHourHistogram(users, time.Now())

	assert.Equal(t, 4, hist.ProjectCount)
	assert.InDelta(t, 17.5, hist.P25, 0.001)
	assert.InDelta(t, 25, hist.P50, 0.001)
	assert.InDelta(t, 32.5, hist.P75, 0.001)
	assert.InDelta(t, 37, hist.P90, 0.001)
}

// TestClassifyHourValue verifies banding against the cut points.
func TestClassifyHourValue(t *testing.T) {
	hist := &schema.HourHistogram{
		ProjectCount: 4,
		P25:          17.5,
		P50:          25,
		P75:          32.5,
		P90:          37,
	}

	tests := []struct {
		name     string
		hours    float64
		expected schema.HourBand
	}{
		{name: "below p25 is minimal", hours: 5, expected: schema.MinimalBand},
		{name: "below p50 is light", hours: 20, expected: schema.LightBand},
		{name: "below p75 is solid", hours: 25, expected: schema.SolidBand},
		{name: "below p90 is deep", hours: 33, expected: schema.DeepBand},
		{name: "at p90 and above is marathon", hours: 37, expected: schema.MarathonBand},
		{name: "zero is minimal", hours: 0, expected: schema.MinimalBand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ClassifyHourValue(hist, tt.hours)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Band)
			assert.Equal(t, schema.BandDescription(tt.expected), c.Description)
		})
	}
}

// TestClassifyHourValueInvalid verifies rejection of bad input.
func TestClassifyHourValueInvalid(t *testing.T) {
	hist := &schema.HourHistogram{ProjectCount: 4, P25: 1, P50: 2, P75: 3, P90: 4}

	for _, hours := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := ClassifyHourValue(hist, hours)
		assert.ErrorIs(t, err, contract.ErrInvalidHours)
	}
}

// TestClassifyHourValueEmptyHistogram verifies the empty-population guard.
func TestClassifyHourValueEmptyHistogram(t *testing.T) {
	c, err := ClassifyHourValue(&schema.HourHistogram{}, 100)
	require.NoError(t, err)
	assert.Equal(t, schema.MinimalBand, c.Band)
}
