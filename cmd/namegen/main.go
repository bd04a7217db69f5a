package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/pdf-renamer/constants"
	"github.com/joseph-ayodele/pdf-renamer/internal/common"
	"github.com/joseph-ayodele/pdf-renamer/internal/extract"
	"github.com/joseph-ayodele/pdf-renamer/internal/namegen"
	"github.com/joseph-ayodele/pdf-renamer/internal/namegen/openai"
	"github.com/joseph-ayodele/pdf-renamer/internal/renamer"
)

// Debug utility: derive and print the candidate name for one PDF without
// touching it. Handy for tuning patterns or prompt behavior on a sample file.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: namegen <pdf-path> [strategy]")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	if len(os.Args) >= 3 {
		cfg.Strategy = os.Args[2]
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := extract.NewPDFExtractor(extract.Config{MaxPages: cfg.Extract.MaxPages}, logger)
	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("extract failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("extracted", "pages", res.Pages, "text_len", len(res.Text), "warnings", len(res.Warnings))

	strategy, err := newStrategy(cfg, logger)
	if err != nil {
		logger.Error("strategy init failed", "error", err)
		os.Exit(1)
	}
	base, err := strategy.DeriveName(ctx, res.Text)
	if err != nil {
		logger.Error("derive failed", "path", path, "error", err)
		os.Exit(1)
	}

	fmt.Printf("candidate: %s\n", base)
	fmt.Printf("resolved:  %s\n", renamer.PlanRename(path, base))
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
