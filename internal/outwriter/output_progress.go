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

// writeProgressResult outputs one user's progress metrics, dispatching based
// on the output format configured.
func writeProgressResult(userID string, m schema.ProgressMetrics, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProgressJSON(w, userID, m)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeProgressCSV(csvWriter, userID, m, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProgressTable(w, userID, m, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeProgressTable generates and writes the human-readable table.
func writeProgressTable(writer io.Writer, userID string, m schema.ProgressMetrics, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(writer, "%s\n", headerWithEmoji("⏱️", fmt.Sprintf("Progress for %s", userID), cfg.UseEmojis)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Shipped", "Viral", "Other", "Total", "Progress", "Raw", "Clamshells"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{{
		fmtFloat(m.ShippedHours),
		fmtFloat(m.ViralHours),
		fmtFloat(m.OtherHours),
		fmtFloat(m.TotalHours),
		fmtFloat(m.TotalPercentage) + "%",
		strconv.Itoa(m.RawHours),
		strconv.Itoa(m.Clamshells),
	}}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Computed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeProgressCSV writes the progress metrics in CSV format.
func writeProgressCSV(w *csv.Writer, userID string, m schema.ProgressMetrics, fmtFloat func(float64) string) error {
	header := []string{
		"user_id",
		"shipped_hours",
		"viral_hours",
		"other_hours",
		"total_hours",
		"total_percentage",
		"raw_hours",
		"clamshells",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	rec := []string{
		userID,
		fmtFloat(m.ShippedHours),
		fmtFloat(m.ViralHours),
		fmtFloat(m.OtherHours),
		fmtFloat(m.TotalHours),
		fmtFloat(m.TotalPercentage),
		strconv.Itoa(m.RawHours),
		strconv.Itoa(m.Clamshells),
	}
	return w.Write(rec)
}

// writeProgressJSON writes the progress metrics in JSON format.
func writeProgressJSON(w io.Writer, userID string, m schema.ProgressMetrics) error {
	type JSONProgressResult struct {
		UserID string `json:"user_id"`
		schema.ProgressMetrics
	}

	return writeJSON(w, JSONProgressResult{
		UserID:          userID,
		ProgressMetrics: m,
	})
}
