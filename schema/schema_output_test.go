package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLabels(t *testing.T) {
	assert.Equal(t, "No/Poor", ScoreLabel(ScoreNone))
	assert.Equal(t, "Partial/Medium", ScoreLabel(ScorePartial))
	assert.Equal(t, "Yes/Excellent", ScoreLabel(ScoreFull))
	assert.Equal(t, "", ScoreLabel(Score(2)))

	assert.Equal(t, "0 - No/Poor", ScoreOption(ScoreNone))
	assert.Equal(t, "3 - Partial/Medium", ScoreOption(ScorePartial))
	assert.Equal(t, "5 - Yes/Excellent", ScoreOption(ScoreFull))
}

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, ExcellentValue},
		{80, ExcellentValue},
		{79.9, GoodValue},
		{60, GoodValue},
		{40, FairValue},
		{39.9, PoorValue},
		{0, PoorValue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPlainLabel(tt.pct), "pct=%v", tt.pct)
	}
}
