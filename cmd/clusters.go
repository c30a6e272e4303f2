package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shipshapehq/shipshape/internal/contract"
)

// clustersCmd performs the whole-population cluster analysis.
var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Cluster the population into whales, shippers and newbies.",
	Long: `Analyze the entire user population and split it into behavioral clusters.

Thresholds are derived from the population itself, not hardcoded:
- Whales: high on at least two dimensions, meeting all minimums
- Newbies: low hours and projects with nothing shipped
- Shippers: the engaged middle

Reports per-cluster counts and shares, the derived thresholds, and
mean/median/p75/p90 statistics for each dimension.

Examples:
  # Show the population split
  shipshape clusters

  # Export full analysis for downstream tooling
  shipshape clusters --output json --output-file clusters.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		analysis, err := analyzer.GetClusterAnalysis(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot run cluster analysis", err)
		}
		if err := writer.WriteClusters(analysis, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write cluster output", err)
		}
	},
}
