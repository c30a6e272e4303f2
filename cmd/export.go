package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/internal/iostore"
)

// exportCmd exports population data to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export population data to Parquet for BI tools and analytics",
	Long: `Export the whole population to Parquet format for use with analytics tools.

Exports two datasets:
- Cluster rows - each user's cluster assignment and metrics
- Progress rows - each user's capped score and clamshell balance

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  shipshape export --output-file shipshape-data

  # Use with DuckDB for analysis
  shipshape export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.clusters.parquet') LIMIT 10"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ExecuteStoreExport(rootCtx, analyzer, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export population data", err)
		}
	},
}
