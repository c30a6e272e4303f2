package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shipshapehq/shipshape/internal/contract"
)

// classifyCmd classifies one or more users against the population.
var classifyCmd = &cobra.Command{
	Use:   "classify <user-id>...",
	Short: "Classify users into behavioral clusters.",
	Long: `Classify one or more users against the current population analysis.

Users that were part of the analyzed population keep their cluster from the
analysis; users added since the last rebuild classify against the same
thresholds. A user that cannot be classified (e.g. unknown id) is reported
on its own row and never fails the batch.

Examples:
  # Classify a single user
  shipshape classify U0001

  # Classify a batch
  shipshape classify U0001 U0002 U0003

  # Export results to CSV
  shipshape classify U0001 U0002 --output csv --output-file classes.csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		start := time.Now()
		results := analyzer.ClassifyUsers(rootCtx, args)
		if err := writer.WriteClassifications(results, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write classification output", err)
		}
	},
}
