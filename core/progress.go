package core

import (
	"math"
	"sort"

	"github.com/shipshapehq/shipshape/schema"
)

// Tunable caps for the progress score.
const (
	// TopProjectCount is how many projects count toward the score.
	TopProjectCount = 4

	// ProjectHourCap is the per-project ceiling for a shipped or viral project.
	ProjectHourCap = 15.0

	// UnshippedHourCap is the per-project ceiling for everything else. It sits
	// just under the shipped cap so shipping always wins ties.
	UnshippedHourCap = 14.75

	// TotalHourCap is the ceiling for the summed score.
	TotalHourCap = 60.0
)

// ClamshellsPerHour is the bonus currency rate: the golden ratio times ten.
var ClamshellsPerHour = (1 + math.Sqrt(5)) / 2 * 10

// contributionKind is the scoring bucket for a top project.
type contributionKind int

const (
	otherKind contributionKind = iota
	shippedKind
	viralKind
)

// kindOf buckets a project for scoring. Viral beats shipped; anything else,
// including projects still in review, caps at the unshipped ceiling.
func kindOf(p *schema.Project) contributionKind {
	switch {
	case p.Viral:
		return viralKind
	case p.Shipped:
		return shippedKind
	default:
		return otherKind
	}
}

type scoredProject struct {
	project *schema.Project
	hours   float64
}

// CalculateProgress computes the capped progress score and clamshell currency
// for one user's projects. The top projects by effective hours count toward
// the score; shipped hours beyond the per-project cap, and shipped projects
// outside the top set, convert to clamshells instead.
func CalculateProgress(projects []schema.Project) schema.ProgressMetrics {
	entries := make([]scoredProject, 0, len(projects))
	for i := range projects {
		entries = append(entries, scoredProject{
			project: &projects[i],
			hours:   ProjectHours(&projects[i]),
		})
	}

	// Stable sort keeps input order for equal-hour projects, so the top set
	// is deterministic.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].hours > entries[j].hours
	})

	var m schema.ProgressMetrics
	rawTotal := 0.0
	currency := 0.0

	for i, e := range entries {
		rawTotal += e.hours

		if i < TopProjectCount {
			switch kindOf(e.project) {
			case viralKind:
				m.ViralHours += math.Min(e.hours, ProjectHourCap)
			case shippedKind:
				m.ShippedHours += math.Min(e.hours, ProjectHourCap)
			default:
				m.OtherHours += math.Min(e.hours, UnshippedHourCap)
			}
			// Overflow on a shipped top project converts to currency. The
			// Shipped flag gates this on its own: a viral shipped project
			// scores as viral but still earns overflow currency.
			if e.project.Shipped && e.hours > ProjectHourCap {
				currency += (e.hours - ProjectHourCap) * ClamshellsPerHour
			}
		} else if e.project.Shipped {
			currency += e.hours * ClamshellsPerHour
		}
	}

	m.TotalHours = math.Min(m.ShippedHours+m.ViralHours+m.OtherHours, TotalHourCap)
	m.TotalPercentage = math.Min(m.TotalHours/TotalHourCap*100, 100)
	m.RawHours = int(math.Round(rawTotal))
	m.Clamshells = int(math.Floor(currency))
	return m
}

// ComputeUserMetrics reduces a user snapshot to the three clustering
// dimensions: uncapped total hours, project count and shipped count.
func ComputeUserMetrics(user *schema.UserSnapshot) schema.UserMetrics {
	m := schema.UserMetrics{
		UserID:       user.ID,
		ProjectCount: len(user.Projects),
	}
	for i := range user.Projects {
		m.TotalHours += ProjectHours(&user.Projects[i])
		if user.Projects[i].Shipped {
			m.ShippedCount++
		}
	}
	return m
}
