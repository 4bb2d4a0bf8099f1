package cmd

import (
	"github.com/huangsam/attribution/core"
	"github.com/spf13/cobra"
)

// statsCmd shows the overall journey numbers.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall conversion, revenue and spend numbers.",
	Long: `Summarize the stored journeys: total conversions and revenue, average
touchpoints and days to conversion, total marketing spend and overall ROAS.

Examples:
  attribution stats
  attribution stats --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot compute stats", core.ExecuteStats)
	},
}

// channelsCmd shows interaction based channel metrics.
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Show conversion rate and cost per acquisition per channel.",
	Long: `Report per-channel interactions, conversions, revenue, spend, conversion rate
and cost per acquisition, ranked by conversion rate.

Examples:
  attribution channels --limit 5`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot compute channel metrics", core.ExecuteChannelMetrics)
	},
}

// trendsCmd shows daily revenue.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show revenue and spend per conversion day.",
	Long: `Group conversions by day, oldest first, with revenue, spend, ROAS and a running
revenue total.

Examples:
  attribution trends --output csv --output-file trends.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot compute revenue trends", core.ExecuteRevenueTrends)
	},
}

// synergyCmd shows channel co-occurrence.
var synergyCmd = &cobra.Command{
	Use:   "synergy",
	Short: "Show how often channel pairs appear in the same journey.",
	Long: `Count, for every pair of channels, the journeys in which both appear.

Examples:
  attribution synergy`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot compute channel synergy", core.ExecuteChannelSynergy)
	},
}

// funnelCmd groups journeys by length.
var funnelCmd = &cobra.Command{
	Use:   "funnel",
	Short: "Group journeys by number of touchpoints.",
	Long: `Show journeys, revenue and average conversion value per journey length.

Examples:
  attribution funnel`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot compute funnel", core.ExecuteFunnel)
	},
}

// topCmd shows the best and worst channels.
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the five best and five worst channels.",
	Long: `Rank channels by linear attribution and show the five highest and the five
lowest, with revenue and ROAS.

Examples:
  attribution top --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("Cannot compute top performers", core.ExecuteTopPerformers)
	},
}
