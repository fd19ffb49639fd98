package outwriter

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSXRoundTrip(t *testing.T) {
	rows := testReportRows()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rows))

	got, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(got), len(rows)-1)

	assert.Equal(t, []string{"Campaign Name", "Spring Launch"}, got[1])
	assert.Empty(t, got[2])
	assert.Equal(t, schema.ReportHeader[:], got[4])
	assert.Equal(t, []string{"Brief", "Objectives defined", "5", "Signed off"}, got[5])
	assert.Equal(t, []string{"", "Budget approved", "3"}, got[6])
}

func TestWriteXLSXStyling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.xlsx")
	require.NoError(t, SaveXLSX(path, testReportRows()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	styleID, err := f.GetCellStyle(ReportSheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.Equal(t, 1, style.Fill.Pattern)

	score, err := f.GetCellValue(ReportSheet, "C6")
	require.NoError(t, err)
	assert.Equal(t, "5", score)
	cellType, err := f.GetCellType(ReportSheet, "C6")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestReadXLSXInvalid(t *testing.T) {
	_, err := ReadXLSX(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)

	_, err = ReadXLSXFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
