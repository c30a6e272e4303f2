package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shipshapehq/shipshape/internal/contract"
)

// progressCmd scores one user's progress.
var progressCmd = &cobra.Command{
	Use:   "progress <user-id>",
	Short: "Show one user's capped progress score and clamshell balance.",
	Long: `Compute the progress breakdown for a single user.

Resolves effective hours for every project (overrides win over raw hours),
ranks projects, applies the per-project and total caps, and reports:
- Hours split across the viral, shipped and other buckets
- Total capped hours and progress percentage
- Uncapped raw hours and the clamshell currency balance

Examples:
  # Score one user
  shipshape progress U0001

  # Export the breakdown as JSON
  shipshape progress U0001 --output json --output-file progress.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		start := time.Now()
		m, err := analyzer.UserProgress(rootCtx, args[0])
		if err != nil {
			contract.LogFatal("Cannot compute progress", err)
		}
		if err := writer.WriteProgress(args[0], m, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write progress output", err)
		}
	},
}
