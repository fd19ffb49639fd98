package contract

import (
	"testing"

	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignRequestCampaignInfo(t *testing.T) {
	req := CampaignRequest{
		Name:         "Spring Launch",
		StartDate:    "2024-03-04",
		EndDate:      "2024-03-31",
		Cities:       " Manila ,Cebu,, ",
		CampaignType: "tiktok",
	}
	info, err := req.CampaignInfo()
	require.NoError(t, err)
	assert.Equal(t, "Spring Launch", info.Name)
	assert.Equal(t, []string{"Manila", "Cebu"}, info.Cities)
	assert.Equal(t, "2024-03-04", schema.FormatDate(info.StartDate))
	assert.True(t, info.CampaignDate.IsZero())
	assert.Equal(t, schema.TikTokCampaign, info.Type)

	_, err = CampaignRequest{EndDate: "31-03-2024"}.CampaignInfo()
	assert.ErrorContains(t, err, "end_date")
}

func TestMetricRequestKey(t *testing.T) {
	req := ScoreRequest{MetricRequest: MetricRequest{Phase: "post", Category: "Brand Sentiment", Metric: "Positive mentions"}}
	assert.Equal(t, schema.NewMetricKey(schema.PostPhase, "Brand Sentiment", "Positive mentions"), req.Key())
}
