package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
)

// writeClusterResults outputs the population clustering, dispatching based on
// the output format configured.
func writeClusterResults(analysis *schema.ClusterAnalysis, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, analysis)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeClusterCSV(csvWriter, analysis, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClusterTable(w, analysis, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// clusterRows pairs each bucket with its category for iteration.
func clusterRows(analysis *schema.ClusterAnalysis) []struct {
	category schema.Category
	bucket   schema.ClusterBucket
} {
	return []struct {
		category schema.Category
		bucket   schema.ClusterBucket
	}{
		{schema.WhaleCategory, analysis.Whales},
		{schema.ShipperCategory, analysis.Shippers},
		{schema.NewbieCategory, analysis.Newbies},
	}
}

// writeClusterTable generates and writes the human-readable table.
func writeClusterTable(writer io.Writer, analysis *schema.ClusterAnalysis, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(writer, "%s\n", headerWithEmoji("🐋", "Population Clusters", cfg.UseEmojis)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Cluster", "Count", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range clusterRows(analysis) {
		data = append(data, []string{
			contract.GetColorCategoryLabel(row.category),
			strconv.Itoa(row.bucket.Count),
			fmtFloat(row.bucket.Percentage) + "%",
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Population statistics per dimension
	stats := []struct {
		name string
		dim  schema.DimensionStats
	}{
		{"hours", analysis.Stats.Hours},
		{"projects", analysis.Stats.Projects},
		{"shipped", analysis.Stats.Shipped},
	}
	for _, s := range stats {
		if _, err := fmt.Fprintf(writer, "%-8s mean=%s median=%s p75=%s p90=%s\n",
			s.name, fmtFloat(s.dim.Mean), fmtFloat(s.dim.Median), fmtFloat(s.dim.P75), fmtFloat(s.dim.P90)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Analyzed %d users in %v. Last updated: %s\n",
		analysis.TotalUsers, duration, analysis.LastUpdated.Format(contract.DateTimeFormat)); err != nil {
		return err
	}
	return nil
}

// writeClusterCSV writes the clustering summary in CSV format.
func writeClusterCSV(w *csv.Writer, analysis *schema.ClusterAnalysis, fmtFloat func(float64) string) error {
	header := []string{"cluster", "count", "percentage"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range clusterRows(analysis) {
		rec := []string{
			string(row.category),
			strconv.Itoa(row.bucket.Count),
			fmtFloat(row.bucket.Percentage),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeClassificationResults outputs bulk classification results, dispatching
// based on the output format configured.
func writeClassificationResults(results []schema.ClassificationResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeClassificationCSV(csvWriter, results, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeClassificationTable(w, results, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
}

// writeClassificationTable generates and writes the human-readable table.
func writeClassificationTable(writer io.Writer, results []schema.ClassificationResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	if _, err := fmt.Fprintf(writer, "%s\n", headerWithEmoji("🏷️", "User Classifications", cfg.UseEmojis)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"User", "Cluster", "Hours", "Projects", "Shipped", "Note"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	failures := 0

	var data [][]string
	for _, r := range results {
		if r.Classification == nil {
			failures++
			data = append(data, []string{
				contract.TruncateName(r.UserID, nameWidth),
				"-", "-", "-", "-",
				r.Error,
			})
			continue
		}
		c := r.Classification
		data = append(data, []string{
			contract.TruncateName(r.UserID, nameWidth),
			contract.GetColorCategoryLabel(c.Category),
			fmtFloat(c.Metrics.TotalHours),
			fmt.Sprintf(intFmt, c.Metrics.ProjectCount),
			fmt.Sprintf(intFmt, c.Metrics.ShippedCount),
			"",
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Classified %d users (%d failed) in %v\n",
		len(results)-failures, failures, duration); err != nil {
		return err
	}
	return nil
}

// writeClassificationCSV writes classification results in CSV format.
func writeClassificationCSV(w *csv.Writer, results []schema.ClassificationResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"user_id",
		"cluster",
		"total_hours",
		"project_count",
		"shipped_count",
		"hours_percentile",
		"error",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		if r.Classification == nil {
			if err := w.Write([]string{r.UserID, "", "", "", "", "", r.Error}); err != nil {
				return err
			}
			continue
		}
		c := r.Classification
		rec := []string{
			r.UserID,
			string(c.Category),
			fmtFloat(c.Metrics.TotalHours),
			fmt.Sprintf(intFmt, c.Metrics.ProjectCount),
			fmt.Sprintf(intFmt, c.Metrics.ShippedCount),
			c.Percentiles["hours"],
			"",
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
