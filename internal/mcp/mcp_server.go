// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/validation"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewMCPServer initializes and configures the Scorecard MCP server without starting it.
// All tools act on the one session passed in. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, session *core.Session, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"Campaign Scorecard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		session:  session,
		validate: validation.New(),
		logger:   logger,
	}

	metricArgs := []mcp.ToolOption{
		mcp.WithString("phase", mcp.Description("Campaign phase."), mcp.Enum("pre", "post"), mcp.Required()),
		mcp.WithString("category", mcp.Description("Category name as listed by list_catalog."), mcp.Required()),
		mcp.WithString("metric", mcp.Description("Metric name as listed by list_catalog."), mcp.Required()),
	}
	withMetric := func(opts ...mcp.ToolOption) []mcp.ToolOption {
		return append(append([]mcp.ToolOption{}, metricArgs...), opts...)
	}

	// --- 1. Tool: list_catalog ---
	s.AddTool(mcp.NewTool("list_catalog",
		mcp.WithDescription("List the pre- and post-campaign categories and metrics active for the session."),
	), h.handleListCatalog)

	// --- 2. Tool: set_campaign ---
	s.AddTool(mcp.NewTool("set_campaign",
		mcp.WithDescription("Replace the campaign details. Dates use YYYY-MM-DD. Changing the type changes the visible categories."),
		mcp.WithString("name", mcp.Description("Campaign name.")),
		mcp.WithString("campaign_date", mcp.Description("Campaign date (YYYY-MM-DD).")),
		mcp.WithString("start_date", mcp.Description("Start date (YYYY-MM-DD).")),
		mcp.WithString("end_date", mcp.Description("End date (YYYY-MM-DD), not before the start date.")),
		mcp.WithString("client_name", mcp.Description("Client name.")),
		mcp.WithString("country", mcp.Description("Country.")),
		mcp.WithString("cities", mcp.Description("Comma-separated list of cities.")),
		mcp.WithString("campaign_type", mcp.Description("Campaign type. Defaults to the current type."), mcp.Enum("standard", "influencer", "tiktok")),
	), h.handleSetCampaign)

	// --- 3. Tool: set_score ---
	s.AddTool(mcp.NewTool("set_score",
		append(withMetric(
			mcp.WithDescription("Score one metric: 0 (No/Poor), 3 (Partial/Medium) or 5 (Yes/Excellent)."),
		), mcp.WithNumber("score", mcp.Description("Score value: 0, 3 or 5."), mcp.Required()))...,
	), h.handleSetScore)

	// --- 4. Tool: clear_score ---
	s.AddTool(mcp.NewTool("clear_score",
		withMetric(mcp.WithDescription("Remove the score of one metric so it reads as unset."))...,
	), h.handleClearScore)

	// --- 5. Tool: set_comment ---
	s.AddTool(mcp.NewTool("set_comment",
		append(withMetric(
			mcp.WithDescription("Attach a free-text comment to one metric. An empty comment removes it."),
		), mcp.WithString("comment", mcp.Description("Comment text.")))...,
	), h.handleSetComment)

	// --- 6. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Category averages and phase totals of the session."),
	), h.handleGetSummary)

	// --- 7. Tool: get_insights ---
	s.AddTool(mcp.NewTool("get_insights",
		mcp.WithDescription("Top improvements and declines between the pre and post phases."),
		mcp.WithNumber("limit", mcp.Description("How many improvements and declines to return (1 to 20, defaults to 3).")),
	), h.handleGetInsights)

	// --- 8. Tool: export_report ---
	s.AddTool(mcp.NewTool("export_report",
		mcp.WithDescription("Write the scorecard report as an xlsx file and return its path."),
		mcp.WithString("path", mcp.Description("Output file. Defaults to campaign_scorecard_<timestamp>.xlsx in the working directory.")),
	), h.handleExportReport)

	// --- 9. Tool: save_session ---
	s.AddTool(mcp.NewTool("save_session",
		mcp.WithDescription("Save the campaign, scores and comments as a YAML session file that the CLI can load."),
		mcp.WithString("path", mcp.Description("Output file."), mcp.Required()),
	), h.handleSaveSession)

	// --- 10. Tool: reset_session ---
	s.AddTool(mcp.NewTool("reset_session",
		mcp.WithDescription("Discard the campaign details, scores and comments."),
	), h.handleResetSession)

	return s
}

// StartMCPServer starts the Scorecard MCP server over stdio.
// The session starts from the configured session file, if any.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, logger *zap.Logger) error {
	session, err := core.NewConfiguredSession(baseCfg)
	if err != nil {
		return err
	}
	logger.Info("starting MCP server",
		zap.String("campaign_type", string(session.Campaign().Type)),
		zap.String("session_file", baseCfg.SessionFile))

	s := NewMCPServer(baseCfg, session, logger)
	return server.ServeStdio(s, server.WithErrorLogger(zap.NewStdLog(logger)))
}
