package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/outwriter"
	"github.com/huangsam/scorecard/internal/validation"
	"github.com/huangsam/scorecard/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	validate *validation.Validator
	logger   *zap.Logger

	mu      sync.Mutex
	session *core.Session
}

// jsonResult marshals data as the text content of a tool result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// bind decodes and validates the tool arguments into target.
func (h *toolHandler) bind(request mcp.CallToolRequest, target any) error {
	if err := request.BindArguments(target); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return h.validate.Validate(target)
}

func (h *toolHandler) handleListCatalog(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return jsonResult(h.session.Catalogs().Listing(h.session.Campaign().Type))
}

func (h *toolHandler) handleSetCampaign(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req contract.CampaignRequest
	if err := h.bind(request, &req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info, err := req.CampaignInfo()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if info.Type == "" {
		info.Type = h.session.Campaign().Type
	}
	if err := h.session.SetCampaign(info); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid campaign: %v", err)), nil
	}
	h.logger.Debug("campaign updated", zap.String("name", info.Name), zap.String("type", string(info.Type)))
	return jsonResult(h.session.Campaign())
}

func (h *toolHandler) handleSetScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req contract.ScoreRequest
	if err := h.bind(request, &req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	key := req.Key()
	if err := h.session.SetScore(key, *req.Score); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot set score: %v", err)), nil
	}
	h.logger.Debug("score set", zap.String("phase", req.Phase), zap.String("category", req.Category),
		zap.String("metric", req.Metric), zap.Int("score", *req.Score))
	return jsonResult(schema.ScoreEntry{MetricKey: key, Score: schema.Score(*req.Score)})
}

func (h *toolHandler) handleClearScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req contract.MetricRequest
	if err := h.bind(request, &req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.session.ClearScore(req.Key()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot clear score: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("cleared %s / %s / %s", req.Phase, req.Category, req.Metric)), nil
}

func (h *toolHandler) handleSetComment(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req contract.CommentRequest
	if err := h.bind(request, &req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	key := req.Key()
	if err := h.session.SetComment(key, req.Comment); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot set comment: %v", err)), nil
	}
	return jsonResult(schema.CommentEntry{MetricKey: key, Comment: req.Comment})
}

func (h *toolHandler) handleGetSummary(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return jsonResult(core.Summarize(h.session))
}

func (h *toolHandler) handleGetInsights(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", h.baseCfg.TopN)
	if limit < 1 || limit > contract.MaxTopN {
		return mcp.NewToolResultError(fmt.Sprintf("limit must be between 1 and %d", contract.MaxTopN)), nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	result := core.Insights(h.session, limit)
	if !result.HasData() {
		return mcp.NewToolResultText(outwriter.NoDataMessage), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleExportReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		path = schema.ReportFileName(time.Now())
	}

	h.mu.Lock()
	rows := core.SessionReport(h.session)
	h.mu.Unlock()

	if err := outwriter.SaveXLSX(path, rows); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}
	h.logger.Info("report exported", zap.String("path", path), zap.Int("rows", len(rows)))
	return jsonResult(map[string]any{"path": path, "rows": len(rows)})
}

func (h *toolHandler) handleSaveSession(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	file, err := os.Create(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot create session file: %v", err)), nil
	}
	h.mu.Lock()
	err = core.WriteSession(file, h.session)
	h.mu.Unlock()
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("save failed: %v", err)), nil
	}
	h.logger.Info("session saved", zap.String("path", path))
	return mcp.NewToolResultText("saved session to " + path), nil
}

func (h *toolHandler) handleResetSession(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.Reset()
	h.logger.Debug("session reset")
	return mcp.NewToolResultText("session reset"), nil
}
