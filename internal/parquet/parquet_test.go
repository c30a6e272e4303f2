package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipshapehq/shipshape/schema"
)

func TestUserClusterRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(UserClusterRow))
	require.NotNil(t, s)

	expectedColumns := []string{
		"user_id",
		"category",
		"total_hours",
		"project_count",
		"shipped_count",
		"hours_percentile",
		"analyzed_at",
	}

	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteUserClusterRowsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "clusters.parquet")

	now := time.Now()
	pct := "75th percentile"
	data := []UserClusterRow{
		{
			UserID:          "giant",
			Category:        "whale",
			TotalHours:      100,
			ProjectCount:    5,
			ShippedCount:    5,
			HoursPercentile: &pct,
			AnalyzedAt:      now,
		},
		{
			UserID:     "idle",
			Category:   "newbie",
			AnalyzedAt: now,
			// HoursPercentile nil to cover the nullable path
		},
	}

	require.NoError(t, WriteUserClusterRowsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[UserClusterRow](file)
	defer reader.Close()

	readData := make([]UserClusterRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n, "Should read all records")

	assert.Equal(t, "giant", readData[0].UserID)
	assert.Equal(t, "whale", readData[0].Category)
	require.NotNil(t, readData[0].HoursPercentile)
	assert.Equal(t, "75th percentile", *readData[0].HoursPercentile)
	assert.WithinDuration(t, now, readData[0].AnalyzedAt, time.Nanosecond)

	assert.Equal(t, "idle", readData[1].UserID)
	assert.Nil(t, readData[1].HoursPercentile, "HoursPercentile should be nil")
}

func TestWriteUserProgressRowsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "progress.parquet")

	now := time.Now()
	data := []UserProgressRow{
		{
			UserID:          "u1",
			ShippedHours:    45,
			TotalHours:      45,
			TotalPercentage: 75,
			RawHours:        60,
			Clamshells:      242,
			ComputedAt:      now,
		},
	}

	require.NoError(t, WriteUserProgressRowsParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[UserProgressRow](file)
	defer reader.Close()

	readData := make([]UserProgressRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 1, n)

	assert.Equal(t, "u1", readData[0].UserID)
	assert.InDelta(t, 45, readData[0].ShippedHours, 0.001)
	assert.Equal(t, int32(242), readData[0].Clamshells)
}

func TestWriteUserClusterRowsParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")

	require.NoError(t, WriteUserClusterRowsParquet([]UserClusterRow{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteUserClusterRowsParquet_InvalidPath(t *testing.T) {
	err := WriteUserClusterRowsParquet([]UserClusterRow{}, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}

func TestConvertClassificationResults(t *testing.T) {
	now := time.Now()
	results := []schema.ClassificationResult{
		{
			UserID: "giant",
			Classification: &schema.UserClassification{
				UserID:      "giant",
				Category:    schema.WhaleCategory,
				Metrics:     schema.UserMetrics{UserID: "giant", TotalHours: 100, ProjectCount: 5, ShippedCount: 5},
				Percentiles: map[string]string{"hours": "75th percentile"},
			},
		},
		{UserID: "missing", Error: "user not found: missing"},
	}

	rows := ConvertClassificationResults(results, now)
	require.Len(t, rows, 1, "Failed entries should be skipped")
	assert.Equal(t, "giant", rows[0].UserID)
	assert.Equal(t, "whale", rows[0].Category)
	assert.Equal(t, int32(5), rows[0].ProjectCount)
	require.NotNil(t, rows[0].HoursPercentile)
	assert.Equal(t, "75th percentile", *rows[0].HoursPercentile)
}

func TestConvertProgressMetrics(t *testing.T) {
	now := time.Now()
	row := ConvertProgressMetrics("u1", schema.ProgressMetrics{
		ShippedHours:    15,
		TotalHours:      15,
		TotalPercentage: 25,
		RawHours:        20,
		Clamshells:      80,
	}, now)

	assert.Equal(t, "u1", row.UserID)
	assert.InDelta(t, 25, row.TotalPercentage, 0.001)
	assert.Equal(t, int32(80), row.Clamshells)
	assert.Equal(t, now, row.ComputedAt)
}
