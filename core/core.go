// Package core has core logic for catalogs, sessions, aggregation, deltas and ranking.
package core

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/outwriter"
)

// writer renders the results of every executor.
var writer = outwriter.NewOutWriter()

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// NewConfiguredSession builds a session from the configured catalogs, category selection
// and campaign type, then loads the session file when one is given.
func NewConfiguredSession(cfg *contract.Config) (*Session, error) {
	base, err := LoadCatalogs(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	known := base.AllNames()
	for _, name := range cfg.Categories {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("%w: category '%s'", ErrUnknownMetric, name)
		}
	}
	s := NewSession(base, cfg.Categories)
	if cfg.CampaignType != "" {
		info := s.Campaign()
		info.Type = cfg.CampaignType
		if err := s.SetCampaign(info); err != nil {
			return nil, err
		}
	}
	if cfg.SessionFile != "" {
		if err := LoadSession(cfg.SessionFile, s, outwriter.ReadXLSXFile); err != nil {
			return nil, fmt.Errorf("failed to load session '%s': %w", cfg.SessionFile, err)
		}
	}
	return s, nil
}

// ExecuteCatalog prints the active pre and post catalogs.
func ExecuteCatalog(_ context.Context, cfg *contract.Config) error {
	s, err := NewConfiguredSession(cfg)
	if err != nil {
		return err
	}
	listing := s.Catalogs().Listing(s.Campaign().Type)
	return writer.WriteCatalog(listing, cfg)
}

// ExecuteSummary prints the category averages and phase totals of a session.
func ExecuteSummary(_ context.Context, cfg *contract.Config) error {
	s, err := NewConfiguredSession(cfg)
	if err != nil {
		return err
	}
	return writer.WriteSummary(Summarize(s), cfg)
}

// ExecuteInsights prints the top improvements and declines of a session.
func ExecuteInsights(_ context.Context, cfg *contract.Config) error {
	s, err := NewConfiguredSession(cfg)
	if err != nil {
		return err
	}
	return writer.WriteInsights(Insights(s, cfg.TopN), cfg)
}

// ExecuteReport writes the scorecard report of a session.
func ExecuteReport(_ context.Context, cfg *contract.Config) error {
	s, err := NewConfiguredSession(cfg)
	if err != nil {
		return err
	}
	return writer.WriteReport(SessionReport(s), cfg)
}

// ExecuteExport writes one record per catalog metric of a session.
func ExecuteExport(_ context.Context, cfg *contract.Config) error {
	s, err := NewConfiguredSession(cfg)
	if err != nil {
		return err
	}
	return writer.WriteExport(ScoreRecords(s, time.Now()), cfg)
}
