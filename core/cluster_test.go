package core

import (
	"testing"
	"time"

	"github.com/shipshapehq/shipshape/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWith(id string, projects ...schema.Project) schema.UserSnapshot {
	return schema.UserSnapshot{ID: id, Projects: projects}
}

// TestBuildClusterAnalysisEmpty verifies the degenerate empty population.
func TestBuildClusterAnalysisEmpty(t *testing.T) {
	analysis := BuildClusterAnalysis(nil, time.Now())

	assert.Equal(t, 0, analysis.TotalUsers)
	assert.Equal(t, 0, analysis.Whales.Count)
	assert.Equal(t, 0, analysis.Shippers.Count)
	assert.Equal(t, 0, analysis.Newbies.Count)
	assert.InDelta(t, 0, analysis.Whales.Percentage, 0.001)
}

// TestBuildClusterAnalysisSkewed verifies clustering on a population where a
// single user holds all the activity.
func TestBuildClusterAnalysisSkewed(t *testing.T) {
	shipped20 := func() schema.Project { return project(20, true, false) }
	users := []schema.UserSnapshot{
		userWith("idle1"),
		userWith("idle2"),
		userWith("idle3"),
		userWith("giant", shipped20(), shipped20(), shipped20(), shipped20(), shipped20()),
	}

	analysis := BuildClusterAnalysis(users, time.Now())

	assert.Equal(t, 4, analysis.TotalUsers)
	assert.Equal(t, []string{"giant"}, analysis.Whales.UserIDs)
	assert.ElementsMatch(t, []string{"idle1", "idle2", "idle3"}, analysis.Newbies.UserIDs)
	assert.Equal(t, 0, analysis.Shippers.Count)
	assert.InDelta(t, 25, analysis.Whales.Percentage, 0.001)
	assert.InDelta(t, 75, analysis.Newbies.Percentage, 0.001)

	// Shipped median is zero here, so the whale floor snaps to one.
	assert.InDelta(t, 1, analysis.Whale.MinShipped, 0.001)
}

// TestBuildClusterAnalysisMixed verifies all three buckets on a spread-out
// population.
func TestBuildClusterAnalysisMixed(t *testing.T) {
	users := []schema.UserSnapshot{
		userWith("starter", project(1, false, false)),
		userWith("early", project(5, true, false), project(5, false, false)),
		userWith("steady", project(10, true, false), project(5, true, false), project(5, false, false)),
		userWith("strong", project(10, true, false), project(10, true, false), project(10, true, false)),
		userWith("giant",
			project(20, true, false), project(20, true, false), project(20, true, false),
			project(20, true, false), project(20, true, false)),
	}

	analysis := BuildClusterAnalysis(users, time.Now())

	assert.ElementsMatch(t, []string{"strong", "giant"}, analysis.Whales.UserIDs)
	assert.ElementsMatch(t, []string{"early", "steady"}, analysis.Shippers.UserIDs)
	assert.Equal(t, []string{"starter"}, analysis.Newbies.UserIDs)

	// Thresholds derive from the population percentiles.
	assert.InDelta(t, 20, analysis.Whale.MinHours, 0.001)
	assert.InDelta(t, 10, analysis.Newbie.MaxHours, 0.001)
	assert.InDelta(t, 30, analysis.High.Hours, 0.001)
}

// TestMemberCategory tests bucket lookup on a built analysis.
func TestMemberCategory(t *testing.T) {
	users := []schema.UserSnapshot{
		userWith("idle1"),
		userWith("idle2"),
		userWith("idle3"),
		userWith("giant",
			project(20, true, false), project(20, true, false), project(20, true, false),
			project(20, true, false), project(20, true, false)),
	}
	analysis := BuildClusterAnalysis(users, time.Now())

	category, ok := analysis.MemberCategory("giant")
	require.True(t, ok)
	assert.Equal(t, schema.WhaleCategory, category)

	category, ok = analysis.MemberCategory("idle2")
	require.True(t, ok)
	assert.Equal(t, schema.NewbieCategory, category)

	_, ok = analysis.MemberCategory("stranger")
	assert.False(t, ok)
}

// TestClassifyMetricsNonMember verifies that users outside the analyzed
// population classify against the same thresholds.
func TestClassifyMetricsNonMember(t *testing.T) {
	users := []schema.UserSnapshot{
		userWith("idle1"),
		userWith("idle2"),
		userWith("idle3"),
		userWith("giant",
			project(20, true, false), project(20, true, false), project(20, true, false),
			project(20, true, false), project(20, true, false)),
	}
	// High cutoffs here are 25 hours, 1.25 projects, 1.25 shipped.
	analysis := BuildClusterAnalysis(users, time.Now())

	c := ClassifyMetrics(analysis, schema.UserMetrics{
		UserID:       "stranger",
		TotalHours:   50,
		ProjectCount: 2,
		ShippedCount: 2,
	})

	assert.Equal(t, schema.WhaleCategory, c.Category)
	assert.Equal(t, "75th percentile", c.Percentiles["hours"])
	assert.NotEmpty(t, c.Description)
}

// TestCoarsePercentilesMedianBoundary verifies that sitting exactly on the
// population median reports the lower bucket on every dimension.
func TestCoarsePercentilesMedianBoundary(t *testing.T) {
	users := []schema.UserSnapshot{
		userWith("idle1"),
		userWith("idle2"),
		userWith("idle3"),
		userWith("giant",
			project(20, true, false), project(20, true, false), project(20, true, false),
			project(20, true, false), project(20, true, false)),
	}
	// All three medians are zero, matching the idle users exactly.
	analysis := BuildClusterAnalysis(users, time.Now())

	c := ClassifyMetrics(analysis, schema.UserMetrics{UserID: "idle1"})
	assert.Equal(t, "25th percentile", c.Percentiles["hours"])
	assert.Equal(t, "25th percentile", c.Percentiles["projects"])
	assert.Equal(t, "25th percentile", c.Percentiles["shipped"])

	c = ClassifyMetrics(analysis, schema.UserMetrics{
		UserID:       "giant",
		TotalHours:   100,
		ProjectCount: 5,
		ShippedCount: 5,
	})
	assert.Equal(t, "75th percentile", c.Percentiles["hours"])
}
