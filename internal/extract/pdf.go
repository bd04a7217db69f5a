package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

type Config struct {
	MaxPages int // pages to read per file; <= 0 reads all pages
}

// PDFExtractor pulls plain text out of PDF files in-process.
type PDFExtractor struct {
	cfg    Config
	logger *slog.Logger
}

func NewPDFExtractor(cfg Config, logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{cfg: cfg, logger: logger}
}

// Extract reads up to cfg.MaxPages of text from the PDF at path. Corrupt,
// encrypted, or otherwise unreadable files come back as an error; pages
// without extractable text are recorded as warnings and skipped. An empty
// result with a nil error means the file parsed fine but carries no text.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (res TextExtractionResult, err error) {
	start := time.Now()
	res.Method = "pdf-text"

	// The pdf library panics on some malformed cross-reference tables;
	// treat those the same as a structural read error.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("extract.pdf.panic", "path", path, "panic", r)
			res = TextExtractionResult{Method: "pdf-text", Duration: time.Since(start)}
			err = fmt.Errorf("parse pdf %q: %v", filepath.Base(path), r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		e.logger.Error("extract.pdf.open_failed", "path", path, "error", err)
		return res, fmt.Errorf("open pdf %q: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("extract.pdf.close_failed", "path", path, "error", cerr)
		}
	}()

	total := reader.NumPage()
	limit := total
	if e.cfg.MaxPages > 0 && limit > e.cfg.MaxPages {
		limit = e.cfg.MaxPages
	}

	var b strings.Builder
	for i := 1; i <= limit; i++ {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: missing page object", i))
			continue
		}
		text, perr := page.GetPlainText(nil)
		if perr != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: %v", i, perr))
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)
	}

	res.Text = b.String()
	res.Pages = limit
	res.Duration = time.Since(start)

	e.logger.Debug("extract.pdf.ok",
		"path", path,
		"pages_read", limit,
		"pages_total", total,
		"text_len", len(res.Text),
		"warnings", len(res.Warnings),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
