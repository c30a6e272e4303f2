package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, output schema.OutputMode) *contract.Config {
	t.Helper()
	return &contract.Config{
		Precision:    1,
		Output:       output,
		OutputFile:   filepath.Join(t.TempDir(), "out.txt"),
		Width:        120,
		StoreBackend: schema.SQLiteBackend,
	}
}

func readOutput(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	return string(data)
}

func sampleAnalysis() *schema.ClusterAnalysis {
	return &schema.ClusterAnalysis{
		TotalUsers:  4,
		Whales:      schema.ClusterBucket{Count: 1, Percentage: 25, UserIDs: []string{"giant"}},
		Shippers:    schema.ClusterBucket{Count: 0, Percentage: 0},
		Newbies:     schema.ClusterBucket{Count: 3, Percentage: 75, UserIDs: []string{"a", "b", "c"}},
		LastUpdated: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestWriteProgressFormats exercises all three output formats for progress.
func TestWriteProgressFormats(t *testing.T) {
	ow := NewOutWriter()
	m := schema.ProgressMetrics{
		ShippedHours:    15,
		TotalHours:      15,
		TotalPercentage: 25,
		RawHours:        20,
		Clamshells:      80,
	}

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut)
		require.NoError(t, ow.WriteProgress("u1", m, cfg, time.Millisecond))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "user_id,shipped_hours")
		assert.Contains(t, out, "u1,15.0")
		assert.Contains(t, out, ",80")
	})

	t.Run("json", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut)
		require.NoError(t, ow.WriteProgress("u1", m, cfg, time.Millisecond))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &decoded))
		assert.Equal(t, "u1", decoded["user_id"])
		assert.InDelta(t, 80, decoded["clamshells"], 0.001)
	})

	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut)
		require.NoError(t, ow.WriteProgress("u1", m, cfg, time.Millisecond))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "Progress for u1")
		assert.Contains(t, out, "25.0%")
	})
}

// TestWriteClustersFormats exercises cluster output in CSV and JSON.
func TestWriteClustersFormats(t *testing.T) {
	ow := NewOutWriter()

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut)
		require.NoError(t, ow.WriteClusters(sampleAnalysis(), cfg, time.Millisecond))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "cluster,count,percentage")
		assert.Contains(t, out, "whale,1,25.0")
		assert.Contains(t, out, "newbie,3,75.0")
	})

	t.Run("json", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut)
		require.NoError(t, ow.WriteClusters(sampleAnalysis(), cfg, time.Millisecond))

		var decoded schema.ClusterAnalysis
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &decoded))
		assert.Equal(t, 4, decoded.TotalUsers)
		assert.Equal(t, []string{"giant"}, decoded.Whales.UserIDs)
	})

	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut)
		require.NoError(t, ow.WriteClusters(sampleAnalysis(), cfg, time.Millisecond))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "Population Clusters")
		assert.Contains(t, out, "Analyzed 4 users")
	})
}

// TestWriteClassifications verifies that failed entries render alongside
// successes.
func TestWriteClassifications(t *testing.T) {
	ow := NewOutWriter()
	results := []schema.ClassificationResult{
		{
			UserID: "giant",
			Classification: &schema.UserClassification{
				UserID:   "giant",
				Category: schema.WhaleCategory,
				Metrics:  schema.UserMetrics{UserID: "giant", TotalHours: 100, ProjectCount: 5, ShippedCount: 5},
			},
		},
		{UserID: "missing", Error: "user not found: missing"},
	}

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut)
		require.NoError(t, ow.WriteClassifications(results, cfg, time.Millisecond))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "giant,whale,100.0,5,5")
		assert.Contains(t, out, "missing,,,,,,user not found: missing")
	})

	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut)
		require.NoError(t, ow.WriteClassifications(results, cfg, time.Millisecond))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "Classified 1 users (1 failed)")
	})
}

// TestWriteHourClassification verifies text and CSV banding output.
func TestWriteHourClassification(t *testing.T) {
	ow := NewOutWriter()
	hist := &schema.HourHistogram{ProjectCount: 10, P25: 5, P50: 10, P75: 20, P90: 40}
	c := schema.HourClassification{Hours: 12, Band: schema.SolidBand, Description: schema.BandDescription(schema.SolidBand)}

	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut)
		require.NoError(t, ow.WriteHourClassification(hist, c, cfg))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "12.0 hours -> solid")
		assert.Contains(t, out, "p50=10.0")
	})

	t.Run("csv", func(t *testing.T) {
		cfg := testConfig(t, schema.CSVOut)
		require.NoError(t, ow.WriteHourClassification(hist, c, cfg))
		assert.Contains(t, readOutput(t, cfg), "12.0,solid")
	})
}

// TestWriteStatus verifies store status output.
func TestWriteStatus(t *testing.T) {
	ow := NewOutWriter()
	status := schema.StoreStatus{Backend: "sqlite", Connected: true, Users: 3, Projects: 7, Links: 2}

	t.Run("text", func(t *testing.T) {
		cfg := testConfig(t, schema.TextOut)
		require.NoError(t, ow.WriteStatus(status, cfg))
		out := readOutput(t, cfg)
		assert.Contains(t, out, "Backend:   sqlite")
		assert.Contains(t, out, "3 users, 7 projects, 2 links")
	})

	t.Run("json", func(t *testing.T) {
		cfg := testConfig(t, schema.JSONOut)
		require.NoError(t, ow.WriteStatus(status, cfg))

		var decoded schema.StoreStatus
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg)), &decoded))
		assert.Equal(t, int64(7), decoded.Projects)
	})
}

// TestGetMaxTableNameWidth verifies width clamping with overrides.
func TestGetMaxTableNameWidth(t *testing.T) {
	assert.Equal(t, 15, getMaxTableNameWidth(&contract.Config{Width: 40}))
	assert.Equal(t, 30, getMaxTableNameWidth(&contract.Config{Width: 80}))
	assert.Equal(t, 40, getMaxTableNameWidth(&contract.Config{Width: 200}))
}
