package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/pdf-renamer/constants"
	"github.com/joseph-ayodele/pdf-renamer/internal/common"
	"github.com/joseph-ayodele/pdf-renamer/internal/export"
	"github.com/joseph-ayodele/pdf-renamer/internal/extract"
	"github.com/joseph-ayodele/pdf-renamer/internal/namegen"
	"github.com/joseph-ayodele/pdf-renamer/internal/namegen/openai"
	"github.com/joseph-ayodele/pdf-renamer/internal/renamer"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// Non-interactive batch entry point: everything comes from flags and the
// environment, suitable for cron jobs and scripted runs.
func main() {
	var (
		dir          = flag.String("dir", "", "directory to process PDFs from (required)")
		strategyName = flag.String("strategy", "", "pattern | lastline | openai (overrides RENAMER_STRATEGY)")
		dryRun       = flag.Bool("dry-run", false, "compute and report rename plans without touching the filesystem")
		moveTo       = flag.String("move-to", "", "move processed PDFs to this directory afterwards")
		report       = flag.String("report", "", "write an XLSX run report to this path")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *strategyName != "" {
		cfg.Strategy = *strategyName
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	extractor := extract.NewPDFExtractor(extract.Config{MaxPages: cfg.Extract.MaxPages}, logger)
	strategy, err := newStrategy(cfg, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Structured logs carry the per-file story; the console line noise of the
	// interactive tool is suppressed here.
	engine := renamer.NewEngine(renamer.Config{DryRun: *dryRun, Out: io.Discard}, extractor, strategy, logger)
	results, sum, err := engine.Run(ctx, *dir)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	sum.Print(os.Stderr, *dryRun)

	if *report != "" {
		svc := export.NewService(logger)
		b, err := svc.BuildRunXLSX(results, sum, *dryRun)
		if err != nil {
			printError("Error: build report: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*report, b, 0o644); err != nil {
			printError("Error: write report %q: %v\n", *report, err)
			os.Exit(1)
		}
		logger.Info("batch.report.written", "path", *report, "bytes", len(b))
	}

	if *moveTo != "" && !*dryRun {
		moved, err := renamer.MovePDFs(ctx, *dir, *moveTo, logger)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("batch.move.done", "moved", moved, "dest", *moveTo)
	}
}

// newStrategy wires the configured name-derivation strategy.
func newStrategy(cfg *common.Config, logger *slog.Logger) (namegen.Strategy, error) {
	switch cfg.Strategy {
	case constants.StrategyLastLine:
		return namegen.NewLastLineStrategy(logger), nil
	case constants.StrategyOpenAI:
		return openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	default:
		return namegen.NewPatternStrategy(logger), nil
	}
}
