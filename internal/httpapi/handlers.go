package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/outwriter"
	"github.com/huangsam/scorecard/internal/parquet"
	"github.com/huangsam/scorecard/schema"
	"go.uber.org/zap"
)

// CreateSessionRequest starts a session. Empty fields use the server defaults.
type CreateSessionRequest struct {
	CampaignType string   `json:"campaign_type,omitempty" validate:"omitempty,oneof=standard influencer tiktok"`
	Categories   []string `json:"categories,omitempty" validate:"omitempty,dive,required"`
}

// SessionView is the full state of a session.
type SessionView struct {
	ID       string                `json:"id"`
	Campaign schema.CampaignInfo   `json:"campaign"`
	Catalog  schema.CatalogListing `json:"catalog"`
	Scores   []schema.ScoreEntry   `json:"scores"`
	Comments []schema.CommentEntry `json:"comments"`
	Summary  schema.Summary        `json:"summary"`
}

func sessionView(id string, s *core.Session) SessionView {
	campaign := s.Campaign()
	return SessionView{
		ID:       id,
		Campaign: campaign,
		Catalog:  s.Catalogs().Listing(campaign.Type),
		Scores:   s.Scores(),
		Comments: s.Comments(),
		Summary:  core.Summarize(s),
	}
}

// withSession looks up the session named in the URL and runs fn on it under its lock.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(id string, sess *core.Session) (any, error)) {
	id := chi.URLParam(r, "id")
	entry, err := s.registry.Get(id)
	if err != nil {
		writeError(w, err, s.logger)
		return
	}

	var data any
	err = entry.with(func(sess *core.Session) error {
		var err error
		data, err = fn(id, sess)
		return err
	})
	if err != nil {
		writeError(w, err, s.logger)
		return
	}
	writeJSON(w, http.StatusOK, data, s.logger)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.registry.Len(),
	}, s.logger)
}

// handleGetCatalog lists the catalogs for the campaign_type query parameter.
func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	ct, err := core.ParseCampaignType(r.URL.Query().Get("campaign_type"))
	if err != nil {
		writeError(w, err, s.logger)
		return
	}
	listing := s.registry.base.Filter(s.registry.selected, ct).Listing(ct)
	writeJSON(w, http.StatusOK, listing, s.logger)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err, s.logger)
		return
	}

	known := s.registry.base.AllNames()
	for _, name := range req.Categories {
		if !slices.Contains(known, name) {
			writeError(w, fmt.Errorf("%w: category '%s'", core.ErrUnknownMetric, name), s.logger)
			return
		}
	}

	id, entry := s.registry.Create(req.Categories)
	var view SessionView
	err := entry.with(func(sess *core.Session) error {
		if req.CampaignType != "" {
			info := sess.Campaign()
			info.Type = schema.CampaignType(req.CampaignType)
			if err := sess.SetCampaign(info); err != nil {
				return err
			}
		}
		view = sessionView(id, sess)
		return nil
	})
	if err != nil {
		_ = s.registry.Delete(id)
		writeError(w, err, s.logger)
		return
	}

	s.logger.Info("session created", zap.String("id", id), zap.String("campaign_type", string(view.Campaign.Type)))
	writeJSON(w, http.StatusCreated, view, s.logger)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *core.Session) (any, error) {
		return sessionView(id, sess), nil
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.registry.Delete(id); err != nil {
		writeError(w, err, s.logger)
		return
	}
	s.logger.Info("session deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetCampaign(w http.ResponseWriter, r *http.Request) {
	var req contract.CampaignRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err, s.logger)
		return
	}
	info, err := req.CampaignInfo()
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err), s.logger)
		return
	}

	s.withSession(w, r, func(_ string, sess *core.Session) (any, error) {
		if info.Type == "" {
			info.Type = sess.Campaign().Type
		}
		if err := sess.SetCampaign(info); err != nil {
			return nil, err
		}
		return sess.Campaign(), nil
	})
}

func (s *Server) handleSetScore(w http.ResponseWriter, r *http.Request) {
	var req contract.ScoreRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err, s.logger)
		return
	}

	s.withSession(w, r, func(_ string, sess *core.Session) (any, error) {
		key := req.Key()
		if err := sess.SetScore(key, *req.Score); err != nil {
			return nil, err
		}
		return schema.ScoreEntry{MetricKey: key, Score: schema.Score(*req.Score)}, nil
	})
}

func (s *Server) handleClearScore(w http.ResponseWriter, r *http.Request) {
	var req contract.MetricRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err, s.logger)
		return
	}

	s.withSession(w, r, func(_ string, sess *core.Session) (any, error) {
		if err := sess.ClearScore(req.Key()); err != nil {
			return nil, err
		}
		return req.Key(), nil
	})
}

func (s *Server) handleSetComment(w http.ResponseWriter, r *http.Request) {
	var req contract.CommentRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err, s.logger)
		return
	}

	s.withSession(w, r, func(_ string, sess *core.Session) (any, error) {
		key := req.Key()
		if err := sess.SetComment(key, req.Comment); err != nil {
			return nil, err
		}
		return schema.CommentEntry{MetricKey: key, Comment: req.Comment}, nil
	})
}

func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(_ string, sess *core.Session) (any, error) {
		return core.Summarize(sess), nil
	})
}

// handleGetInsights returns the ranked deltas. The top query parameter overrides the configured limit.
func (s *Server) handleGetInsights(w http.ResponseWriter, r *http.Request) {
	top := s.cfg.TopN
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > contract.MaxTopN {
			writeError(w, fmt.Errorf("%w: top must be an integer between 1 and %d", errBadRequest, contract.MaxTopN), s.logger)
			return
		}
		top = n
	}

	s.withSession(w, r, func(_ string, sess *core.Session) (any, error) {
		return core.Insights(sess, top), nil
	})
}

// handleGetReport sends the session report as an xlsx attachment.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	entry, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, s.logger)
		return
	}

	var rows []schema.ReportRow
	_ = entry.with(func(sess *core.Session) error {
		rows = core.SessionReport(sess)
		return nil
	})

	data, err := renderXLSX(rows)
	if err != nil {
		writeError(w, err, s.logger)
		return
	}

	sendAttachment(w, schema.XLSXContentType, schema.ReportFileName(s.now()), data, s.logger)
}

// renderXLSX writes the rows to a temporary file, closes it, then reads it back.
// The temporary file is removed before returning.
func renderXLSX(rows []schema.ReportRow) ([]byte, error) {
	tmp, err := os.CreateTemp("", "scorecard-*.xlsx")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer func() { _ = os.Remove(path) }()
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := outwriter.SaveXLSX(path, rows); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return data, nil
}

// Content types of the non-JSON downloads.
const (
	parquetContentType = "application/vnd.apache.parquet"
	yamlContentType    = "application/yaml"
)

// handleGetExport streams one Parquet record per catalog metric.
func (s *Server) handleGetExport(w http.ResponseWriter, r *http.Request) {
	entry, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, s.logger)
		return
	}

	now := s.now()
	var records []parquet.ScoreRecord
	_ = entry.with(func(sess *core.Session) error {
		records = core.ScoreRecords(sess, now)
		return nil
	})

	var buf bytes.Buffer
	if err := parquet.WriteScoreRecords(&buf, records); err != nil {
		writeError(w, err, s.logger)
		return
	}
	name := "campaign_scores_" + now.Format(schema.ReportFileLayout) + ".parquet"
	sendAttachment(w, parquetContentType, name, buf.Bytes(), s.logger)
}

// handleGetDocument returns the session as a YAML document the CLI can load.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	entry, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, s.logger)
		return
	}

	var buf bytes.Buffer
	if err := entry.with(func(sess *core.Session) error {
		return core.WriteSession(&buf, sess)
	}); err != nil {
		writeError(w, err, s.logger)
		return
	}
	sendAttachment(w, yamlContentType, "session.yaml", buf.Bytes(), s.logger)
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(id string, sess *core.Session) (any, error) {
		sess.Reset()
		return sessionView(id, sess), nil
	})
}

// sendAttachment writes data as a file download.
func sendAttachment(w http.ResponseWriter, contentType, name string, data []byte, logger *zap.Logger) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Warn("failed to send attachment", zap.String("file", name), zap.Error(err))
	}
}
