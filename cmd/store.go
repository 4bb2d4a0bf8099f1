package cmd

import (
	"fmt"
	"strings"

	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/iocache"
	"github.com/huangsam/attribution/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads the minimal configuration needed for store operations.
// It avoids model and output validation, and only opens the store when asked to.
func storeSetup(open bool) error {
	if err := readConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("store-backend")))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	connStr := viper.GetString("store-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	if !open {
		return nil
	}
	if err := iocache.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize journey store: %w", err)
	}
	storeManager = iocache.Manager
	return nil
}

// storeCmd focused on journey store management.
//
// Note: store subcommands skip sharedSetup so a bad model or output flag in the
// config file never blocks maintenance.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the journey store",
	Long: `Manage the database that holds customer journeys.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show journey counts and connection info
  clear   - Remove all stored journeys
  migrate - Run database schema migrations

Examples:
  attribution store status
  ATTRIBUTION_STORE_BACKEND=postgresql ATTRIBUTION_STORE_DB_CONNECT="host=localhost dbname=attribution" attribution store migrate`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display journey counts and connection details",
	Long: `Show detailed information about the journey store.

Displays:
- Backend type and connection status
- Number of journeys and touchpoints
- Oldest and newest conversion dates
- Schema version and database size

Examples:
  attribution store status`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeSetup(true)
	},
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetJourneyStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		iocache.PrintStoreStatus(status)
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored journeys",
	Long: `Delete all stored journeys from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the journey tables and migration history

Examples:
  attribution store clear

  # Clear a MySQL store (set connection string via env variable)
  ATTRIBUTION_STORE_BACKEND=mysql ATTRIBUTION_STORE_DB_CONNECT="..." attribution store clear`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeSetup(false)
	},
	Run: func(_ *cobra.Command, _ []string) {
		dbFilePath := iocache.GetDBFilePath()
		if cfg.StoreBackend == schema.SQLiteBackend && cfg.StoreDBConnect != "" {
			dbFilePath = cfg.StoreDBConnect
		}
		if err := iocache.ClearStore(cfg.StoreBackend, dbFilePath, cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Journey store cleared successfully.")
	},
}

// storeMigrateCmd runs schema migrations.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Apply or roll back the journey store schema.

Stores are migrated to the latest version when opened, so this is only needed to
pin or roll back a version. It does not open the store first, so it works on a
fresh or damaged database.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest
  attribution store migrate

  # Migrate to a specific version
  attribution store migrate --target-version 2

  # Roll back all migrations
  attribution store migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeSetup(false)
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate store", err)
		}
	},
}
