package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/pdf-renamer/internal/renamer"
)

// Service produces XLSX bytes describing a rename run: one row per file plus
// summary counters. The caller decides whether and where to write the bytes;
// the rename engine itself never touches this.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const sheet = "Rename Run"

var headers = []string{"Original Path", "New Path", "Outcome", "Error"}

// BuildRunXLSX returns an XLSX workbook (as bytes) for one run.
func (s *Service) BuildRunXLSX(results []renamer.FileResult, sum renamer.Summary, dryRun bool) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	mode := "live"
	if dryRun {
		mode = "dry-run"
	}
	setCell(f, 1, 1, fmt.Sprintf("Rename run (%s): %d found, %d renamed, %d skipped, %d failed",
		mode, sum.Found, sum.Renamed, sum.Skipped, sum.Failed))

	for col, h := range headers {
		setCell(f, 3, col+1, h)
	}
	for i, r := range results {
		row := 4 + i
		setCell(f, row, 1, r.Path)
		setCell(f, row, 2, r.NewPath)
		setCell(f, row, 3, string(r.Outcome))
		setCell(f, row, 4, r.Err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.run_report.ok",
		"rows", len(results),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, row, col int, value string) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	// SetCellValue only fails on invalid coordinates, which CoordinatesToCellName rules out.
	_ = f.SetCellValue(sheet, cell, value)
}
