// Package parquet provides data structures and functions for exporting
// population analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/shipshapehq/shipshape/schema"
)

// UserClusterRow represents one classified user in an analysis snapshot.
type UserClusterRow struct {
	// UserID is the classified user's identifier
	UserID string `parquet:"user_id,snappy"`

	// Category is the behavioral cluster (whale, shipper, newbie)
	Category string `parquet:"category,snappy"`

	// TotalHours is the uncapped sum of effective hours across all projects
	TotalHours float64 `parquet:"total_hours,snappy"`

	// ProjectCount is the number of projects the user has
	ProjectCount int32 `parquet:"project_count,snappy"`

	// ShippedCount is the number of shipped projects
	ShippedCount int32 `parquet:"shipped_count,snappy"`

	// HoursPercentile is the coarse percentile label for hours (nullable)
	HoursPercentile *string `parquet:"hours_percentile,optional,snappy"`

	// AnalyzedAt is when the population analysis was built (stored as
	// TIMESTAMP with nanosecond precision)
	AnalyzedAt time.Time `parquet:"analyzed_at,snappy"`
}

// UserProgressRow represents one user's scored progress breakdown.
type UserProgressRow struct {
	// UserID is the scored user's identifier
	UserID string `parquet:"user_id,snappy"`

	// ShippedHours is the capped hour contribution from shipped projects
	ShippedHours float64 `parquet:"shipped_hours,snappy"`

	// ViralHours is the capped hour contribution from viral projects
	ViralHours float64 `parquet:"viral_hours,snappy"`

	// OtherHours is the capped hour contribution from everything else
	OtherHours float64 `parquet:"other_hours,snappy"`

	// TotalHours is the final score, capped at the total hour ceiling
	TotalHours float64 `parquet:"total_hours,snappy"`

	// TotalPercentage is the score as a percentage of the ceiling
	TotalPercentage float64 `parquet:"total_percentage,snappy"`

	// RawHours is the rounded uncapped hour total
	RawHours int32 `parquet:"raw_hours,snappy"`

	// Clamshells is the floored currency balance
	Clamshells int32 `parquet:"clamshells,snappy"`

	// ComputedAt is when the score was computed (stored as TIMESTAMP with
	// nanosecond precision)
	ComputedAt time.Time `parquet:"computed_at,snappy"`
}

// WriteUserClusterRowsParquet writes a slice of UserClusterRow structs to a Parquet file.
func WriteUserClusterRowsParquet(data []UserClusterRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the UserClusterRow struct tags
	writer := parquet.NewGenericWriter[UserClusterRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteUserProgressRowsParquet writes a slice of UserProgressRow structs to a Parquet file.
func WriteUserProgressRowsParquet(data []UserProgressRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the UserProgressRow struct tags
	writer := parquet.NewGenericWriter[UserProgressRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertClassificationResults converts classification results to UserClusterRow
// for Parquet export. Failed entries are skipped.
func ConvertClassificationResults(results []schema.ClassificationResult, analyzedAt time.Time) []UserClusterRow {
	rows := make([]UserClusterRow, 0, len(results))
	for _, r := range results {
		if r.Classification == nil {
			continue
		}
		c := r.Classification
		row := UserClusterRow{
			UserID:       c.UserID,
			Category:     string(c.Category),
			TotalHours:   c.Metrics.TotalHours,
			ProjectCount: int32(c.Metrics.ProjectCount),
			ShippedCount: int32(c.Metrics.ShippedCount),
			AnalyzedAt:   analyzedAt,
		}
		if p, ok := c.Percentiles["hours"]; ok {
			row.HoursPercentile = &p
		}
		rows = append(rows, row)
	}
	return rows
}

// ConvertProgressMetrics converts one user's progress metrics to a UserProgressRow
// for Parquet export.
func ConvertProgressMetrics(userID string, m schema.ProgressMetrics, computedAt time.Time) UserProgressRow {
	return UserProgressRow{
		UserID:          userID,
		ShippedHours:    m.ShippedHours,
		ViralHours:      m.ViralHours,
		OtherHours:      m.OtherHours,
		TotalHours:      m.TotalHours,
		TotalPercentage: m.TotalPercentage,
		RawHours:        int32(m.RawHours),
		Clamshells:      int32(m.Clamshells),
		ComputedAt:      computedAt,
	}
}
