// Package core implements the scoring and clustering engine: effective hour
// resolution, capped progress scoring, percentile math, population clustering
// and the per-project hour histogram.
package core

import (
	"github.com/shipshapehq/shipshape/schema"
)

// LinkHours resolves the effective hours for a single time-tracking link.
// An override takes precedence over the raw reading; negative values from
// either source count as zero. A nil link resolves to 0.
func LinkHours(link *schema.HackatimeLink) float64 {
	if link == nil {
		return 0
	}
	if link.HoursOverride != nil {
		return nonNegative(*link.HoursOverride)
	}
	return nonNegative(link.RawHours)
}

// ProjectHours resolves the effective hours for a project. Linked projects sum
// their link hours; unlinked projects fall back to the project-level override,
// then the project-level raw reading. A nil project resolves to 0 so callers
// can pass partially loaded data.
func ProjectHours(p *schema.Project) float64 {
	if p == nil {
		return 0
	}
	if len(p.Links) > 0 {
		total := 0.0
		for i := range p.Links {
			total += LinkHours(&p.Links[i])
		}
		return total
	}
	if p.HoursOverride != nil {
		return nonNegative(*p.HoursOverride)
	}
	return nonNegative(p.RawHours)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
