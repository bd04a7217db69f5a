package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/pdf-renamer/constants"
	"github.com/joseph-ayodele/pdf-renamer/internal/renamer"
)

func TestBuildRunXLSX(t *testing.T) {
	results := []renamer.FileResult{
		{Path: "/docs/a.pdf", NewPath: "/docs/Invoice-A1234.pdf", Outcome: constants.OutcomeRenamed},
		{Path: "/docs/b.pdf", Outcome: constants.OutcomeSkippedNoText, Err: "open pdf: corrupt xref"},
	}
	sum := renamer.Summary{Found: 2, Renamed: 1, Skipped: 1}

	b, err := NewService(nil).BuildRunXLSX(results, sum, false)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Contains(t, header, "2 found, 1 renamed, 1 skipped")

	col, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Original Path", col)

	path, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "/docs/a.pdf", path)

	outcome, err := f.GetCellValue(sheet, "C5")
	require.NoError(t, err)
	assert.Equal(t, string(constants.OutcomeSkippedNoText), outcome)
}

func TestBuildRunXLSXDryRunHeader(t *testing.T) {
	b, err := NewService(nil).BuildRunXLSX(nil, renamer.Summary{}, true)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Contains(t, header, "dry-run")
}
