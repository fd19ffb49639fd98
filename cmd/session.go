package cmd

import (
	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/spf13/cobra"
)

// catalogCmd lists the active categories and metrics.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the categories and metrics that can be scored.",
	Long: `Print the pre-campaign and post-campaign catalogs after applying the
campaign type and category selection.

Examples:
  # Show the built-in catalog
  scorecard catalog

  # Include the categories that only apply to TikTok campaigns
  scorecard catalog --campaign-type tiktok

  # Inspect a custom catalog as JSON
  scorecard catalog --catalog catalog.yaml --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run:     runExecutor(core.ExecuteCatalog, "Cannot list catalog"),
}

// summaryCmd prints the per-category averages and phase totals of a session.
var summaryCmd = &cobra.Command{
	Use:   "summary [session-file]",
	Short: "Show category averages and phase totals of a scored session.",
	Long: `Load a session file and print the average of every category plus the
total and percentage of each phase.

The session file is YAML, or an xlsx report written by this tool.
Metrics without a score count as zero.

Examples:
  scorecard summary spring.yaml
  scorecard summary campaign_scorecard_20240501_093015.xlsx --output csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run:     runExecutor(core.ExecuteSummary, "Cannot summarize session"),
}

// insightsCmd prints the biggest category changes between the phases.
var insightsCmd = &cobra.Command{
	Use:   "insights [session-file]",
	Short: "Show the categories that improved or declined the most.",
	Long: `Compare the percentage of every category scored in both phases and rank
the largest improvements and declines.

Examples:
  scorecard insights spring.yaml
  scorecard insights spring.yaml --top 5 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run:     runExecutor(core.ExecuteInsights, "Cannot compute insights"),
}

// reportCmd writes the spreadsheet report of a session.
var reportCmd = &cobra.Command{
	Use:   "report [session-file]",
	Short: "Write the campaign scorecard spreadsheet.",
	Long: `Build the report of a session: campaign details, the pre and post metric
tables, and the score summary. The default output is an xlsx file named
after the current time.

Examples:
  scorecard report spring.yaml
  scorecard report spring.yaml --output-file spring.xlsx
  scorecard report spring.yaml --output text`,
	Args:    cobra.ExactArgs(1),
	PreRunE: setupWithOutput(schema.XLSXOut),
	Run:     runExecutor(core.ExecuteReport, "Cannot write report"),
}

// exportCmd writes one record per metric for downstream analytics.
var exportCmd = &cobra.Command{
	Use:   "export [session-file]",
	Short: "Export every metric score as flat records.",
	Long: `Write one record per catalog metric with its campaign, score and comment.
The default output is Parquet, which needs --output-file.

Examples:
  scorecard export spring.yaml --output-file spring.parquet
  scorecard export spring.yaml --output csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: setupWithOutput(schema.ParquetOut),
	Run:     runExecutor(core.ExecuteExport, "Cannot export session"),
}

// runExecutor adapts an executor to a cobra Run function. Failures are fatal.
func runExecutor(fn core.ExecutorFunc, failure string) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := fn(rootCtx, cfg); err != nil {
			contract.LogFatal(failure, err)
		}
	}
}
