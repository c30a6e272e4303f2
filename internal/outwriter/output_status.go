package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
)

// writeHourClassification outputs a single hour banding, dispatching based on
// the output format configured.
func writeHourClassification(hist *schema.HourHistogram, c schema.HourClassification, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			type JSONHourResult struct {
				schema.HourClassification
				Histogram *schema.HourHistogram `json:"histogram"`
			}
			return writeJSON(w, JSONHourResult{HourClassification: c, Histogram: hist})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			if err := csvWriter.Write([]string{"hours", "band", "description"}); err != nil {
				return err
			}
			return csvWriter.Write([]string{fmtFloat(c.Hours), string(c.Band), c.Description})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "%s hours -> %s (%s)\n", fmtFloat(c.Hours), c.Band, c.Description); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Cut points over %d projects: p25=%s p50=%s p75=%s p90=%s\n",
				hist.ProjectCount, fmtFloat(hist.P25), fmtFloat(hist.P50), fmtFloat(hist.P75), fmtFloat(hist.P90))
			return err
		}, "Wrote text")
	}
}

// writeStoreStatus outputs store status, dispatching based on the output
// format configured.
func writeStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			if err := csvWriter.Write([]string{"backend", "connected", "users", "projects", "links"}); err != nil {
				return err
			}
			return csvWriter.Write([]string{
				status.Backend,
				strconv.FormatBool(status.Connected),
				strconv.FormatInt(status.Users, 10),
				strconv.FormatInt(status.Projects, 10),
				strconv.FormatInt(status.Links, 10),
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "%s\n", headerWithEmoji("🗄️", "Store Status", cfg.UseEmojis)); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Backend:   %s\n", status.Backend); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "Connected: %t\n", status.Connected); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Rows:      %d users, %d projects, %d links\n",
				status.Users, status.Projects, status.Links)
			return err
		}, "Wrote text")
	}
}
