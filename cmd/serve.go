package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/httpapi"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scorecard HTTP API",
	Long: `Serve the scorecard over HTTP. Every client session lives in memory and is
scored through JSON requests; reports download as xlsx attachments.

Examples:
  scorecard serve --listen :8080
  SCORECARD_CORS_ORIGINS=https://app.example.com scorecard serve`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		logger, err := contract.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return httpapi.Run(ctx, cfg, logger)
	},
}
