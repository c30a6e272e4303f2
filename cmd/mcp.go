package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shipshapehq/shipshape/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Shipshape MCP server",
	Long:  `Launch an MCP server that allows AI agents to score users and inspect population clusters via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// stdio carries the protocol, so setup must not write to stdout.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, analyzer)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
