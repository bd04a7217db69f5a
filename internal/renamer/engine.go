package renamer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/pdf-renamer/constants"
	"github.com/joseph-ayodele/pdf-renamer/internal/extract"
	"github.com/joseph-ayodele/pdf-renamer/internal/namegen"
)

// Config for a rename run.
type Config struct {
	DryRun bool
	Out    io.Writer // human-readable progress; defaults to os.Stdout
}

// FileResult is the per-file terminal outcome of a run.
type FileResult struct {
	Path    string
	NewPath string // set when Outcome is RENAMED (planned path in dry-run)
	Outcome constants.FileOutcome
	Err     string
}

// Summary aggregates a run. Rebuilt fresh each invocation; never persisted.
type Summary struct {
	Found   uint32
	Renamed uint32 // includes would-be renames in dry-run
	Skipped uint32
	Failed  uint32
}

// Engine drives the scan → extract → derive → rename loop over one directory.
// Strictly sequential; the only state across files is the Summary counters.
type Engine struct {
	cfg       Config
	extractor extract.TextExtractor
	strategy  namegen.Strategy
	logger    *slog.Logger
}

func NewEngine(cfg Config, extractor extract.TextExtractor, strategy namegen.Strategy, logger *slog.Logger) *Engine {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, extractor: extractor, strategy: strategy, logger: logger}
}

// Run processes every PDF directly under dir (non-recursive). Per-file errors
// never abort the run; each file ends in exactly one terminal outcome.
func (e *Engine) Run(ctx context.Context, dir string) ([]FileResult, Summary, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, Summary{}, fmt.Errorf("folder not found at %q", dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("read dir %q: %w", dir, err)
	}

	runID := uuid.New().String()
	e.logger.Info("renamer.run.start", "run_id", runID, "dir", dir, "dry_run", e.cfg.DryRun)

	prefix := ""
	if e.cfg.DryRun {
		prefix = "[DRY RUN] "
	}
	fmt.Fprintf(e.cfg.Out, "\n%sProcessing PDFs in: %q\n", prefix, dir)

	var results []FileResult
	var sum Summary
	for _, entry := range entries {
		if entry.IsDir() || !constants.IsPDF(entry.Name()) {
			continue
		}
		sum.Found++

		fmt.Fprintf(e.cfg.Out, "\nProcessing %q...\n", entry.Name())
		res := e.processFile(ctx, filepath.Join(dir, entry.Name()))
		results = append(results, res)

		switch {
		case res.Outcome == constants.OutcomeRenamed:
			sum.Renamed++
		case res.Outcome.IsSkip():
			sum.Skipped++
		default:
			sum.Failed++
		}
	}

	e.logger.Info("renamer.run.done",
		"run_id", runID,
		"found", sum.Found,
		"renamed", sum.Renamed,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
	)
	return results, sum, nil
}

// processFile walks one file through extract → derive → plan → act and
// reports a single terminal outcome.
func (e *Engine) processFile(ctx context.Context, path string) FileResult {
	name := filepath.Base(path)

	extracted, err := e.extractor.Extract(ctx, path)
	if err != nil || strings.TrimSpace(extracted.Text) == "" {
		if err != nil {
			e.logger.Warn("renamer.file.extract_failed", "path", path, "error", err)
		}
		fmt.Fprintf(e.cfg.Out, "  Skipping %q due to extraction error or empty content.\n", name)
		return FileResult{Path: path, Outcome: constants.OutcomeSkippedNoText, Err: errString(err)}
	}

	base, err := e.strategy.DeriveName(ctx, extracted.Text)
	if err != nil {
		if !errors.Is(err, namegen.ErrNoName) {
			e.logger.Warn("renamer.file.derive_failed", "path", path, "error", err)
		}
		fmt.Fprintf(e.cfg.Out, "  Could not determine a new name for %q. Skipping.\n", name)
		return FileResult{Path: path, Outcome: constants.OutcomeSkippedNoName, Err: errString(err)}
	}

	target := PlanRename(path, base)
	if target == path {
		fmt.Fprintf(e.cfg.Out, "  %q already has the desired name. No change needed.\n", name)
		return FileResult{Path: path, Outcome: constants.OutcomeSkippedAlreadyCorrect}
	}

	if e.cfg.DryRun {
		fmt.Fprintf(e.cfg.Out, "  [DRY RUN] Would rename to: %q\n", filepath.Base(target))
		return FileResult{Path: path, NewPath: target, Outcome: constants.OutcomeRenamed}
	}

	if err := os.Rename(path, target); err != nil {
		e.logger.Error("renamer.file.rename_failed", "path", path, "target", target, "error", err)
		fmt.Fprintf(e.cfg.Out, "  [ERROR] Failed to rename %q: %v\n", name, err)
		return FileResult{Path: path, NewPath: target, Outcome: constants.OutcomeFailed, Err: err.Error()}
	}

	e.logger.Info("renamer.file.renamed", "path", path, "target", target)
	fmt.Fprintf(e.cfg.Out, "  Renamed %q to %q\n", name, filepath.Base(target))
	return FileResult{Path: path, NewPath: target, Outcome: constants.OutcomeRenamed}
}

// Print writes the end-of-run summary in the tool's console voice.
func (s Summary) Print(w io.Writer, dryRun bool) {
	prefix := ""
	verb := "renamed"
	if dryRun {
		prefix = "[DRY RUN] "
		verb = "would be renamed"
	}
	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  Total PDFs found: %d\n", s.Found)
	fmt.Fprintf(w, "  %sFiles %s: %d\n", prefix, verb, s.Renamed)
	fmt.Fprintf(w, "  Files skipped: %d\n", s.Skipped)
	fmt.Fprintf(w, "  Files failed: %d\n", s.Failed)
	if dryRun {
		fmt.Fprintln(w, "\nThis was a DRY RUN. No files were actually renamed.")
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
