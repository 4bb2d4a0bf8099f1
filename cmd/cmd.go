// Package cmd defines the command-line interface for attribution.
package cmd

import (
	"github.com/huangsam/attribution/core"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/huangsam/attribution/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(varianceCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(channelsCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(synergyCmd)
	rootCmd.AddCommand(funnelCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(journeysCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the journeys subcommands to the parent journeys command
	journeysCmd.AddCommand(journeysListCmd)
	journeysCmd.AddCommand(journeysShowCmd)
	journeysCmd.AddCommand(journeysGenerateCmd)
	journeysCmd.AddCommand(journeysExportCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("model", "m", string(schema.LinearModel), "Attribution model: first_touch or last_touch or last_non_direct or linear or time_decay or position_based or w_shaped")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Journey store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for the store (sqlite file path, user:pass@tcp(host:port)/dbname, or host=... dbname=...)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of journeysGenerateCmd to Viper
	journeysGenerateCmd.Flags().Int("count", contract.DefaultJourneyCount, "Number of sample journeys to generate")
	journeysGenerateCmd.Flags().Int64("seed", 0, "Random seed for reproducible samples (0 = time based)")
	if err := viper.BindPFlags(journeysGenerateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding generate flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address for the HTTP API to listen on")
	serveCmd.Flags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	serveCmd.Flags().String("log-format", contract.DefaultLogFormat, "Log format: json or text")
	serveCmd.Flags().String("cors-origins", contract.DefaultCORSOrigins, "Comma-separated list of allowed CORS origins")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}

// runExecutor runs an executor with the shared config and store, exiting on failure.
func runExecutor(what string, executeFunc core.ExecutorFunc) {
	if err := executeFunc(rootCtx, cfg, storeManager); err != nil {
		contract.LogFatal(what, err)
	}
}
