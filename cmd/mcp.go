package cmd

import (
	"github.com/huangsam/attribution/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the attribution MCP server",
	Long:  `Launch an MCP server over stdio that lets AI agents run attribution models, compare them and inspect journeys via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Nothing else may write to stdout in MCP mode since it carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
