package cmd

import (
	"github.com/huangsam/attribution/core"
	"github.com/huangsam/attribution/internal/contract"
	"github.com/spf13/cobra"
)

// modelCmd runs a single attribution model.
var modelCmd = &cobra.Command{
	Use:     "model [name]",
	Aliases: []string{"attribute"},
	Short:   "Attribute revenue to channels with one model.",
	Long: `Split the conversion value of every stored journey across its touchpoints
using one attribution model, then rank channels by attributed revenue.

Available models:
  first_touch      - all credit to the first touchpoint
  last_touch       - all credit to the last touchpoint
  last_non_direct  - all credit to the last touchpoint that is not Direct Traffic
  linear           - equal credit to every touchpoint (default)
  time_decay       - credit halves for every week before conversion
  position_based   - 40% first, 40% last, 20% over the middle (alias u_shaped)
  w_shaped         - 30% first, middle and last, 10% over the rest

Examples:
  # Rank channels with the default linear model
  attribution model

  # Use time decay and show the top 5 channels
  attribution model time_decay --limit 5

  # Export last-touch results to Parquet
  attribution model last_touch --output parquet --output-file last_touch.parquet`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The positional name must be a model here, unlike journey ids elsewhere.
		if len(args) == 1 {
			if _, err := contract.NormalizeModel(args[0]); err != nil {
				return err
			}
		}
		return sharedSetup(rootCtx, cmd, args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot run attribution model", core.ExecuteModel)
	},
}

// compareCmd runs every model side by side.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all attribution models side by side.",
	Long: `Run all seven models over the same journeys and show each channel's
attributed revenue per model.

Ideal for:
- Seeing which channels each model favours
- Explaining attribution choices to stakeholders
- Spotting channels whose value depends heavily on the model

Examples:
  # Pivot table of the top 10 channels across models
  attribution compare --limit 10

  # Full comparison as JSON
  attribution compare --output json --output-file compare.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot compare models", core.ExecuteCompare)
	},
}

// varianceCmd shows how sensitive each channel is to the choice of model.
var varianceCmd = &cobra.Command{
	Use:   "variance",
	Short: "Show how much each channel's revenue moves across models.",
	Long: `Compute mean, standard deviation, coefficient of variation and range of each
channel's attributed revenue across the models, most volatile first.

A high coefficient of variation means the channel's value is an artifact of the
chosen model rather than a stable signal.

Examples:
  attribution variance
  attribution variance --output csv --output-file variance.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot analyze variance", core.ExecuteVariance)
	},
}

// modelsCmd displays the credit rule of every model.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Display the credit rule of every attribution model",
	Long: `Show each model's name and how it splits a journey's value over touchpoints.

No journeys are read - this is purely informational.

Examples:
  attribution models
  attribution models --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot display models", core.ExecuteModelDefinitions)
	},
}
