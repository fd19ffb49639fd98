//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/scorecard/internal/outwriter"
	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionYAML = `campaign:
  name: Spring Launch
  start_date: "2024-03-04"
  end_date: "2024-03-31"
  cities: [Manila, Cebu]
scores:
  - {phase: pre, category: Target Audience, metric: Demographic match, score: 5}
  - {phase: pre, category: Target Audience, metric: Estimated reach meets expectations, score: 5}
  - {phase: post, category: Brand Sentiment, metric: Positive sentiment shift, score: 3}
comments:
  - {phase: pre, category: Target Audience, metric: Demographic match, comment: Matched brief}
`

// runScorecard runs the binary in dir with an isolated environment and returns stdout.
func runScorecard(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(getBinary(), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+dir, "SCORECARD_COLOR=no")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	require.NoError(t, cmd.Run(), stderr.String())
	return stdout.String()
}

func writeSession(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "spring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sessionYAML), 0o644))
	return dir, path
}

func TestCatalogListsTikTokOnlyForTikTok(t *testing.T) {
	dir := t.TempDir()

	var listing schema.CatalogListing
	require.NoError(t, json.Unmarshal([]byte(runScorecard(t, dir, "catalog", "--output", "json")), &listing))
	for _, c := range listing.Pre {
		assert.NotEqual(t, "TikTok Approvals", c.Name)
	}

	require.NoError(t, json.Unmarshal([]byte(runScorecard(t, dir, "catalog", "--output", "json", "--campaign-type", "tiktok")), &listing))
	assert.Equal(t, "TikTok Approvals", listing.Pre[len(listing.Pre)-1].Name)
}

func TestSummaryJSON(t *testing.T) {
	dir, session := writeSession(t)

	var summary schema.Summary
	require.NoError(t, json.Unmarshal([]byte(runScorecard(t, dir, "summary", session, "--output", "json")), &summary))
	assert.Equal(t, "Spring Launch", summary.Campaign.Name)
	assert.Equal(t, 10, summary.Pre.Total)
	assert.Equal(t, 3, summary.Post.Total)
}

func TestReportRoundTrip(t *testing.T) {
	dir, session := writeSession(t)
	report := filepath.Join(dir, "spring.xlsx")
	runScorecard(t, dir, "report", session, "--output-file", report)

	rows, err := outwriter.ReadXLSXFile(report)
	require.NoError(t, err)
	assert.Equal(t, []string{schema.CampaignInfoTitle}, rows[0])
	assert.Contains(t, rows, []string{"Target Audience", "Demographic match", "5", "Matched brief"})

	// The report can be loaded back as a session.
	var fromYAML, fromXLSX schema.Summary
	require.NoError(t, json.Unmarshal([]byte(runScorecard(t, dir, "summary", session, "--output", "json")), &fromYAML))
	require.NoError(t, json.Unmarshal([]byte(runScorecard(t, dir, "summary", report, "--output", "json")), &fromXLSX))
	for _, pair := range [][2]schema.PhaseSummary{{fromYAML.Pre, fromXLSX.Pre}, {fromYAML.Post, fromXLSX.Post}} {
		assert.Equal(t, pair[0].Total, pair[1].Total)
		assert.Equal(t, pair[0].Max, pair[1].Max)
		assert.InDelta(t, pair[0].Percentage, pair[1].Percentage, 1e-9)
	}
}

func TestExportCSV(t *testing.T) {
	dir, session := writeSession(t)

	out := runScorecard(t, dir, "export", session, "--output", "csv")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "campaign_name,"))
	assert.Contains(t, out, "Spring Launch,,pre,Target Audience,Demographic match,5,true,Matched brief")
}
