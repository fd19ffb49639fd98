package core

import (
	"testing"

	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/require"
)

// testCatalogs is a small catalog pair with an empty category, a category that only
// exists in one phase, and a tiktok-only category.
func testCatalogs() CatalogSet {
	return CatalogSet{
		Pre: NewCatalog(schema.PrePhase, []schema.Category{
			{Name: "Brief", Metrics: []string{"Objectives", "Budget"}},
			{Name: "Empty"},
			{Name: "Reporting", Metrics: []string{"Dashboard", "Cadence"}},
			{Name: "Audience", Metrics: []string{"Segments"}},
			{Name: "Setup", Metrics: []string{"Tracking"}},
			{Name: TikTokCategory, Metrics: []string{"Spark Ads"}, RequiresCampaignType: schema.TikTokCampaign},
		}),
		Post: NewCatalog(schema.PostPhase, []schema.Category{
			{Name: "Brief", Metrics: []string{"Objectives", "Budget"}},
			{Name: "Reporting", Metrics: []string{"Dashboard", "Cadence"}},
			{Name: "Audience", Metrics: []string{"Segments"}},
			{Name: "Learnings", Metrics: []string{"Retro held"}},
		}),
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(testCatalogs(), nil)
}

func mustScore(t *testing.T, s *Session, phase schema.Phase, category, metric string, value int) {
	t.Helper()
	require.NoError(t, s.SetScore(schema.NewMetricKey(phase, category, metric), value))
}
