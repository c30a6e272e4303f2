package core

import (
	"math"
	"sort"
	"time"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
)

// BuildHourHistogram computes percentile cut points over every project's
// effective hours across the whole population. Projects with zero hours
// still count; they anchor the lower bands.
func BuildHourHistogram(users []schema.UserSnapshot, now time.Time) *schema.HourHistogram {
	var hours []float64
	for i := range users {
		for j := range users[i].Projects {
			hours = append(hours, ProjectHours(&users[i].Projects[j]))
		}
	}
	sort.Float64s(hours)

	return &schema.HourHistogram{
		ProjectCount: len(hours),
		P25:          Percentile(hours, 25),
		P50:          Percentile(hours, 50),
		P75:          Percentile(hours, 75),
		P90:          Percentile(hours, 90),
		LastUpdated:  now,
	}
}

// ClassifyHourValue bands a single hour value against the histogram.
// Negative or non-finite input is rejected with ErrInvalidHours, never
// clamped. An empty histogram bands everything as minimal.
func ClassifyHourValue(hist *schema.HourHistogram, hours float64) (schema.HourClassification, error) {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return schema.HourClassification{}, contract.ErrInvalidHours
	}

	band := schema.MinimalBand
	if hist.ProjectCount > 0 {
		switch {
		case hours < hist.P25:
			band = schema.MinimalBand
		case hours < hist.P50:
			band = schema.LightBand
		case hours < hist.P75:
			band = schema.SolidBand
		case hours < hist.P90:
			band = schema.DeepBand
		default:
			band = schema.MarathonBand
		}
	}

	return schema.HourClassification{
		Hours:       hours,
		Band:        band,
		Description: schema.BandDescription(band),
	}, nil
}
