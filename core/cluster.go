package core

import (
	"math"
	"sort"
	"time"

	"github.com/shipshapehq/shipshape/schema"
)

// BuildClusterAnalysis clusters the whole population into whales, shippers
// and newbies from data-derived percentile thresholds. The thresholds adapt
// to the population, so there are no magic hour counts to retune.
func BuildClusterAnalysis(users []schema.UserSnapshot, now time.Time) *schema.ClusterAnalysis {
	metrics := make([]schema.UserMetrics, 0, len(users))
	for i := range users {
		metrics = append(metrics, ComputeUserMetrics(&users[i]))
	}

	hours := make([]float64, len(metrics))
	projects := make([]float64, len(metrics))
	shipped := make([]float64, len(metrics))
	for i, m := range metrics {
		hours[i] = m.TotalHours
		projects[i] = float64(m.ProjectCount)
		shipped[i] = float64(m.ShippedCount)
	}
	sort.Float64s(hours)
	sort.Float64s(projects)
	sort.Float64s(shipped)

	analysis := &schema.ClusterAnalysis{
		TotalUsers: len(metrics),
		Whale: schema.WhaleThresholds{
			MinHours:    Percentile(hours, 50),
			MinProjects: Percentile(projects, 50),
			MinShipped:  math.Max(1, Percentile(shipped, 50)),
		},
		Newbie: schema.NewbieThresholds{
			MaxHours:    Percentile(hours, 25),
			MaxProjects: math.Max(1, Percentile(projects, 25)),
			MaxShipped:  0,
		},
		Shipper: schema.ShipperRange{
			MinHours:    Percentile(hours, 25),
			MaxHours:    Percentile(hours, 75),
			MinProjects: Percentile(projects, 25),
			MaxProjects: Percentile(projects, 75),
			MinShipped:  Percentile(shipped, 25),
			MaxShipped:  Percentile(shipped, 75),
		},
		High: schema.HighCutoffs{
			Hours:    Percentile(hours, 75),
			Projects: Percentile(projects, 75),
			Shipped:  Percentile(shipped, 75),
		},
		Stats: schema.PopulationStats{
			Hours:    dimensionStats(hours),
			Projects: dimensionStats(projects),
			Shipped:  dimensionStats(shipped),
		},
		LastUpdated: now,
	}

	for _, m := range metrics {
		switch classifyAgainst(analysis, m) {
		case schema.WhaleCategory:
			analysis.Whales.UserIDs = append(analysis.Whales.UserIDs, m.UserID)
		case schema.NewbieCategory:
			analysis.Newbies.UserIDs = append(analysis.Newbies.UserIDs, m.UserID)
		default:
			analysis.Shippers.UserIDs = append(analysis.Shippers.UserIDs, m.UserID)
		}
	}
	finalizeBucket(&analysis.Whales, len(metrics))
	finalizeBucket(&analysis.Shippers, len(metrics))
	finalizeBucket(&analysis.Newbies, len(metrics))

	return analysis
}

// ClassifyMetrics assigns a single user's metrics to a cluster using an
// existing analysis. Users absent from the analyzed population classify
// against the same thresholds as everyone else.
func ClassifyMetrics(analysis *schema.ClusterAnalysis, m schema.UserMetrics) schema.UserClassification {
	category := classifyAgainst(analysis, m)
	return schema.UserClassification{
		UserID:      m.UserID,
		Category:    category,
		Metrics:     m,
		Percentiles: coarsePercentiles(analysis, m),
		Description: schema.CategoryDescription(category),
	}
}

// classifyAgainst is the single classification rule. Whale requires being
// high (above p75) on at least two dimensions and meeting every median
// minimum; newbie requires being at or below every floor with nothing
// shipped; shipper is the catch-all.
func classifyAgainst(a *schema.ClusterAnalysis, m schema.UserMetrics) schema.Category {
	highCount := 0
	if m.TotalHours >= a.High.Hours {
		highCount++
	}
	if float64(m.ProjectCount) >= a.High.Projects {
		highCount++
	}
	if float64(m.ShippedCount) >= a.High.Shipped {
		highCount++
	}
	meetsMinimums := m.TotalHours >= a.Whale.MinHours &&
		float64(m.ProjectCount) >= a.Whale.MinProjects &&
		float64(m.ShippedCount) >= a.Whale.MinShipped
	if highCount >= 2 && meetsMinimums {
		return schema.WhaleCategory
	}

	if m.TotalHours <= a.Newbie.MaxHours &&
		float64(m.ProjectCount) <= a.Newbie.MaxProjects &&
		float64(m.ShippedCount) <= a.Newbie.MaxShipped {
		return schema.NewbieCategory
	}

	return schema.ShipperCategory
}

// coarsePercentiles is a two-bucket indicator per dimension: "75th percentile"
// when the value sits strictly above the population median, "25th percentile"
// otherwise. Sitting exactly on the median reports the lower bucket. It is a
// display hint, not a true percentile rank.
func coarsePercentiles(a *schema.ClusterAnalysis, m schema.UserMetrics) map[string]string {
	bucket := func(v, median float64) string {
		if v > median {
			return "75th percentile"
		}
		return "25th percentile"
	}
	return map[string]string{
		"hours":    bucket(m.TotalHours, a.Stats.Hours.Median),
		"projects": bucket(float64(m.ProjectCount), a.Stats.Projects.Median),
		"shipped":  bucket(float64(m.ShippedCount), a.Stats.Shipped.Median),
	}
}

func dimensionStats(sorted []float64) schema.DimensionStats {
	return schema.DimensionStats{
		Mean:   Mean(sorted),
		Median: Percentile(sorted, 50),
		P75:    Percentile(sorted, 75),
		P90:    Percentile(sorted, 90),
	}
}

func finalizeBucket(b *schema.ClusterBucket, total int) {
	b.Count = len(b.UserIDs)
	if total > 0 {
		b.Percentage = float64(b.Count) / float64(total) * 100
	}
}
