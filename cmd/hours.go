package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shipshapehq/shipshape/internal/contract"
)

// hoursCmd bands a raw hour value against the population histogram.
var hoursCmd = &cobra.Command{
	Use:   "hours <value>",
	Short: "Band an hour value against the per-project hour histogram.",
	Long: `Classify a raw hour value into a band derived from the population's
per-project hour distribution.

Bands cut at the population's 25th, 50th, 75th and 90th percentiles:
minimal, light, solid, deep, marathon. Negative or non-numeric values are
rejected rather than clamped.

Examples:
  # Band a value
  shipshape hours 12.5

  # Machine-readable output
  shipshape hours 12.5 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			contract.LogFatal("Cannot parse hour value", fmt.Errorf("invalid hours %q: %w", args[0], err))
		}
		c, err := analyzer.ClassifyHours(rootCtx, hours)
		if err != nil {
			contract.LogFatal("Cannot classify hours", err)
		}
		hist, err := analyzer.GetHourHistogram(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load hour histogram", err)
		}
		if err := writer.WriteHourClassification(hist, c, cfg); err != nil {
			contract.LogFatal("Cannot write hour classification output", err)
		}
	},
}
