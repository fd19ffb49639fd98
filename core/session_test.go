package core

import (
	"testing"
	"time"

	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionScores(t *testing.T) {
	s := newTestSession(t)
	key := schema.NewMetricKey(schema.PrePhase, "Brief", "Objectives")

	_, ok := s.Score(key)
	assert.False(t, ok, "fresh session has no scores")

	require.NoError(t, s.SetScore(key, 0))
	v, ok := s.Score(key)
	assert.True(t, ok, "explicit zero is recorded")
	assert.Equal(t, schema.ScoreNone, v)

	require.NoError(t, s.SetScore(key, 5))
	v, _ = s.Score(key)
	assert.Equal(t, schema.ScoreFull, v)

	require.NoError(t, s.ClearScore(key))
	_, ok = s.Score(key)
	assert.False(t, ok)
}

func TestSessionRejectsBadInput(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		name  string
		key   schema.MetricKey
		value int
		err   error
	}{
		{"score out of set", schema.NewMetricKey(schema.PrePhase, "Brief", "Objectives"), 4, ErrInvalidScore},
		{"negative score", schema.NewMetricKey(schema.PrePhase, "Brief", "Objectives"), -1, ErrInvalidScore},
		{"unknown category", schema.NewMetricKey(schema.PrePhase, "Nope", "Objectives"), 5, ErrUnknownMetric},
		{"unknown metric", schema.NewMetricKey(schema.PostPhase, "Brief", "Nope"), 5, ErrUnknownMetric},
		{"metric of the other phase", schema.NewMetricKey(schema.PostPhase, "Setup", "Tracking"), 5, ErrUnknownMetric},
		{"unknown phase", schema.NewMetricKey("during", "Brief", "Objectives"), 5, ErrUnknownPhase},
		{"hidden tiktok category", schema.NewMetricKey(schema.PrePhase, TikTokCategory, "Spark Ads"), 5, ErrUnknownMetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.SetScore(tt.key, tt.value), tt.err)
		})
	}
	assert.Empty(t, s.Scores())
}

func TestSessionComments(t *testing.T) {
	s := newTestSession(t)
	key := schema.NewMetricKey(schema.PostPhase, "Learnings", "Retro held")

	assert.Equal(t, "", s.Comment(key))
	require.NoError(t, s.SetComment(key, "Held on Friday"))
	assert.Equal(t, "Held on Friday", s.Comment(key))

	require.NoError(t, s.SetComment(key, ""))
	assert.Empty(t, s.Comments())

	err := s.SetComment(schema.NewMetricKey(schema.PostPhase, "Learnings", "Nope"), "x")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestSessionCampaignTypeFiltersCatalogs(t *testing.T) {
	s := newTestSession(t)
	tiktok := schema.NewMetricKey(schema.PrePhase, TikTokCategory, "Spark Ads")
	assert.NotContains(t, s.Catalog(schema.PrePhase).Names(), TikTokCategory)

	require.NoError(t, s.SetCampaign(schema.CampaignInfo{Name: "Launch", Type: schema.TikTokCampaign}))
	assert.Contains(t, s.Catalog(schema.PrePhase).Names(), TikTokCategory)
	require.NoError(t, s.SetScore(tiktok, 5))
	assert.Equal(t, 5, PhaseTotal(s, schema.PrePhase))

	// Switching away hides the category; its score stays stored but is ignored.
	require.NoError(t, s.SetCampaign(schema.CampaignInfo{Name: "Launch"}))
	assert.Equal(t, schema.StandardCampaign, s.Campaign().Type)
	assert.Equal(t, 0, PhaseTotal(s, schema.PrePhase))
	assert.Empty(t, s.Scores())

	require.NoError(t, s.SetCampaign(schema.CampaignInfo{Type: schema.TikTokCampaign}))
	v, ok := s.Score(tiktok)
	assert.True(t, ok)
	assert.Equal(t, schema.ScoreFull, v)
}

func TestSessionCategorySelection(t *testing.T) {
	s := NewSession(testCatalogs(), []string{"Reporting"})
	assert.Equal(t, []string{"Reporting"}, s.Catalog(schema.PrePhase).Names())
	assert.Equal(t, []string{"Reporting"}, s.Catalog(schema.PostPhase).Names())

	err := s.SetScore(schema.NewMetricKey(schema.PrePhase, "Brief", "Objectives"), 5)
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestSessionCampaignIsCopied(t *testing.T) {
	s := newTestSession(t)
	cities := []string{"Manila", "Cebu"}
	require.NoError(t, s.SetCampaign(schema.CampaignInfo{Name: "Launch", Cities: cities}))
	cities[0] = "changed"

	got := s.Campaign()
	assert.Equal(t, []string{"Manila", "Cebu"}, got.Cities)
	got.Cities[1] = "changed"
	assert.Equal(t, "Cebu", s.Campaign().Cities[1])
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetCampaign(schema.CampaignInfo{Name: "Launch", Type: schema.TikTokCampaign}))
	mustScore(t, s, schema.PrePhase, "Brief", "Objectives", 5)
	require.NoError(t, s.SetComment(schema.NewMetricKey(schema.PrePhase, "Brief", "Objectives"), "ok"))

	s.Reset()
	assert.Equal(t, schema.CampaignInfo{Type: schema.StandardCampaign}, s.Campaign())
	assert.Empty(t, s.Scores())
	assert.Empty(t, s.Comments())
	assert.NotContains(t, s.Catalog(schema.PrePhase).Names(), TikTokCategory)
}

func TestSessionEntriesFollowCatalogOrder(t *testing.T) {
	s := newTestSession(t)
	mustScore(t, s, schema.PostPhase, "Audience", "Segments", 3)
	mustScore(t, s, schema.PrePhase, "Reporting", "Cadence", 5)
	mustScore(t, s, schema.PrePhase, "Brief", "Budget", 0)

	var got []string
	for _, e := range s.Scores() {
		got = append(got, string(e.Phase)+"/"+e.Category+"/"+e.Metric)
	}
	assert.Equal(t, []string{"pre/Brief/Budget", "pre/Reporting/Cadence", "post/Audience/Segments"}, got)
}

func TestValidateCampaign(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name string
		info schema.CampaignInfo
		err  error
	}{
		{"no dates", schema.CampaignInfo{}, nil},
		{"start only", schema.CampaignInfo{StartDate: day(5)}, nil},
		{"same day", schema.CampaignInfo{StartDate: day(5), EndDate: day(5)}, nil},
		{"end before start", schema.CampaignInfo{StartDate: day(5), EndDate: day(4)}, ErrInvalidDateRange},
		{"unknown type", schema.CampaignInfo{Type: "radio"}, ErrInvalidCampaignType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.info
			err := ValidateCampaign(&info)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, schema.StandardCampaign, info.Type)
		})
	}
}

func TestParseHelpers(t *testing.T) {
	p, err := ParsePhase("post")
	require.NoError(t, err)
	assert.Equal(t, schema.PostPhase, p)
	_, err = ParsePhase("mid")
	assert.ErrorIs(t, err, ErrUnknownPhase)

	v, err := ParseScore(3)
	require.NoError(t, err)
	assert.Equal(t, schema.ScorePartial, v)
	_, err = ParseScore(1)
	assert.ErrorIs(t, err, ErrInvalidScore)

	ct, err := ParseCampaignType(" TikTok ")
	require.NoError(t, err)
	assert.Equal(t, schema.TikTokCampaign, ct)
}
