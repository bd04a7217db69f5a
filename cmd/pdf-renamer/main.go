package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joseph-ayodele/pdf-renamer/constants"
	"github.com/joseph-ayodele/pdf-renamer/internal/common"
	"github.com/joseph-ayodele/pdf-renamer/internal/extract"
	"github.com/joseph-ayodele/pdf-renamer/internal/namegen"
	"github.com/joseph-ayodele/pdf-renamer/internal/namegen/openai"
	"github.com/joseph-ayodele/pdf-renamer/internal/renamer"
)

// Interactive entry point: prompts for the folder, offers a dry run, asks for
// confirmation before renaming, and optionally moves the processed files.
func main() {
	var (
		dirFlag      = flag.String("dir", "", "folder containing the PDF files (prompted for if empty)")
		strategyFlag = flag.String("strategy", "", "pattern | lastline | openai (overrides RENAMER_STRATEGY)")
		yes          = flag.Bool("yes", false, "answer yes to the proceed prompt after a dry run")
	)
	flag.Parse()

	// Diagnostics go to stderr so they never interleave with prompts.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *strategyFlag != "" {
		cfg.Strategy = *strategyFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	in := bufio.NewReader(os.Stdin)

	dir := strings.TrimSpace(*dirFlag)
	if dir == "" {
		dir = promptString(in, "Enter the folder path containing the PDF files: ")
	}
	dryRun := promptYesNo(in, "Perform a dry run first? (y/n, default 'y'): ", true)

	extractor := extract.NewPDFExtractor(extract.Config{MaxPages: cfg.Extract.MaxPages}, logger)
	strategy, err := newStrategy(cfg, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	ctx := context.Background()
	engine := renamer.NewEngine(renamer.Config{DryRun: dryRun}, extractor, strategy, logger)
	_, sum, err := engine.Run(ctx, dir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	sum.Print(os.Stdout, dryRun)

	if dryRun {
		proceed := *yes || promptYesNo(in, "\nReview the dry run output. Do you want to proceed with actual renaming? (y/n): ", false)
		if !proceed {
			fmt.Println("Operation cancelled. No files were renamed.")
			return
		}
		fmt.Println("\nStarting actual renaming...")
		live := renamer.NewEngine(renamer.Config{}, extractor, strategy, logger)
		_, liveSum, err := live.Run(ctx, dir)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		liveSum.Print(os.Stdout, false)
	}

	if promptYesNo(in, "\nMove the renamed files to a different folder? (y/n, default 'n'): ", false) {
		dest := promptString(in, "Enter the destination folder path: ")
		moved, err := renamer.MovePDFs(ctx, dir, dest, logger)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Moved %d PDF file(s) to %q.\n", moved, dest)
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

func promptString(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptYesNo(in *bufio.Reader, prompt string, def bool) bool {
	switch strings.ToLower(promptString(in, prompt)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}
