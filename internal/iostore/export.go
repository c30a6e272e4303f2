package iostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/shipshapehq/shipshape/core"
	"github.com/shipshapehq/shipshape/internal/parquet"
)

// ExecuteStoreExport writes the whole population's classifications and
// progress scores to Parquet files for analytics tools.
func ExecuteStoreExport(ctx context.Context, analyzer *core.Analyzer, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.Users()
	if store == nil {
		return errors.New("user store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.Users == 0 {
		return errors.New("no user data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total users: %d\n", status.Users)
	fmt.Printf("Total projects: %d\n", status.Projects)

	users, err := store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	analysis, err := analyzer.GetClusterAnalysis(ctx)
	if err != nil {
		return fmt.Errorf("failed to build cluster analysis: %w", err)
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	results := analyzer.ClassifyUsers(ctx, ids)
	clusterRows := parquet.ConvertClassificationResults(results, analysis.LastUpdated)

	progressRows := make([]parquet.UserProgressRow, 0, len(users))
	for _, u := range users {
		m := core.CalculateProgress(u.Projects)
		progressRows = append(progressRows, parquet.ConvertProgressMetrics(u.ID, m, analysis.LastUpdated))
	}

	// Write cluster rows to Parquet
	clustersFile := outputFile + ".clusters.parquet"
	if err := parquet.WriteUserClusterRowsParquet(clusterRows, clustersFile); err != nil {
		return fmt.Errorf("failed to write cluster rows: %w", err)
	}
	fmt.Printf("Exported %d cluster rows to: %s\n", len(clusterRows), clustersFile)

	// Write progress rows to Parquet
	progressFile := outputFile + ".progress.parquet"
	if err := parquet.WriteUserProgressRowsParquet(progressRows, progressFile); err != nil {
		return fmt.Errorf("failed to write progress rows: %w", err)
	}
	fmt.Printf("Exported %d progress rows to: %s\n", len(progressRows), progressFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
