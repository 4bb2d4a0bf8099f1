package cmd

import (
	"github.com/huangsam/attribution/core"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/internal/iocache"
	"github.com/spf13/cobra"
)

// journeysCmd focused on the stored customer journeys.
var journeysCmd = &cobra.Command{
	Use:   "journeys",
	Short: "List, inspect, generate and export customer journeys",
	Long: `Work with the converted customer journeys held in the journey store.

Subcommands:
  list     - Show stored journeys with their channel paths
  show     - Show one journey touchpoint by touchpoint
  generate - Replace the store's contents with sample journeys
  export   - Export journeys and touchpoints to Parquet

Examples:
  # Seed the store with 200 reproducible sample journeys
  attribution journeys generate --count 200 --seed 42

  # Inspect one journey
  attribution journeys show J001`,
}

// journeysListCmd lists stored journeys.
var journeysListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show stored journeys with their channel paths",
	Long: `List stored journeys ordered by id, up to --limit.

Examples:
  attribution journeys list --limit 10
  attribution journeys list --output parquet --output-file journeys.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot list journeys", core.ExecuteListJourneys)
	},
}

// journeysShowCmd shows a single journey.
var journeysShowCmd = &cobra.Command{
	Use:   "show <journey-id>",
	Short: "Show one journey touchpoint by touchpoint",
	Long: `Print a journey's customer, conversion value and date, followed by each
touchpoint with channel, timestamp, interaction type, cost and days before conversion.

Examples:
  attribution journeys show J001
  attribution journeys show J001 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot show journey", core.ExecuteShowJourney)
	},
}

// journeysGenerateCmd seeds the store with sample journeys.
var journeysGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Replace the store's contents with sample journeys",
	Long: `Generate realistic sample journeys and replace everything in the journey store.

Journeys take 2 to 8 touchpoints over up to 45 days, mixing paid and organic
channels. A fixed --seed makes the output reproducible.

Examples:
  attribution journeys generate
  attribution journeys generate --count 500 --seed 7

  # Seed an in-memory store and discard it on exit
  attribution journeys generate --store-backend none`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot generate journeys", core.ExecuteGenerate)
	},
}

// journeysExportCmd exports journeys to Parquet files.
var journeysExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export journeys and touchpoints to Parquet for BI tools",
	Long: `Export all stored journeys to Parquet format for analytics tools.

Exports two datasets:
- <output-file>.journeys.parquet    - one row per journey
- <output-file>.touchpoints.parquet - one row per touchpoint

Examples:
  attribution journeys export --output-file snapshot

  # Query with DuckDB
  duckdb -c "SELECT channel, SUM(cost) FROM 'snapshot.touchpoints.parquet' GROUP BY 1"`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteJourneyExport(rootCtx, storeManager, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export journeys", err)
		}
	},
}
