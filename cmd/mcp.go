package cmd

import (
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [session-file]",
	Short: "Start the scorecard MCP server",
	Long: `Launch an MCP server over stdio that lets AI agents score a campaign with
standard tools. An optional session file seeds the session.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		// Logs go to stderr; stdio carries the protocol.
		logger, err := contract.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		return mcp.StartMCPServer(rootCtx, cfg, logger)
	},
}
