package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int    // pages actually read
	Method   string // "pdf-text"
	Duration time.Duration
	Warnings []string
}
