package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/internal/iostore"
	"github.com/shipshapehq/shipshape/schema"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Precision = contract.DefaultPrecision

	// Initialize stores with the loaded config
	if err := iostore.InitStores(backend, connStr, contract.DefaultStaleAfter); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on user store management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by scoring commands. This avoids output validation
// and analyzer construction for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the user/project store",
	Long: `Manage the durable store holding user, project and time-tracking link rows.

The store is the input to every scoring and clustering operation. Population
analyses are derived from it and cached in-process.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all stored data
  migrate - Run database schema migrations

Examples:
  # Check store status
  shipshape store status

  # Clear the store
  shipshape store clear`,
}

// storeClearCmd clears the user store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored user, project and link data",
	Long: `Delete all stored users, projects and time-tracking links.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the store tables

Examples:
  # Export before clearing
  shipshape export --output-file backup
  shipshape store clear

  # Clear a MySQL store (set connection string via env variable)
  SHIPSHAPE_STORE_BACKEND=mysql SHIPSHAPE_STORE_DB_CONNECT="..." shipshape store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ClearStore(cfg.StoreBackend, contract.GetStoreDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear store data", err)
		}
		fmt.Println("Store data cleared successfully.")
	},
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the user store.

Displays:
- Backend type and connection status
- Row counts for users, projects and links

Use this to:
- Verify the store is connected and populated
- Check database connection health
- Estimate storage requirements

Examples:
  # Check store status
  shipshape store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iostore.Manager.Users().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		if err := writer.WriteStatus(status, cfg); err != nil {
			contract.LogFatal("Cannot write store status output", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the user store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the user store.

Migrations allow:
- Upgrading to new schema versions when Shipshape is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  shipshape store migrate

  # Migrate to specific version
  shipshape store migrate --target-version 1

  # Rollback to initial state
  shipshape store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
