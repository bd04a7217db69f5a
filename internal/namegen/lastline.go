package namegen

import (
	"context"
	"log/slog"
	"strings"
)

// LastLineStrategy names the file after the document's final non-empty line,
// ignoring everything else. Useful for documents that end with a signature
// block or title footer.
type LastLineStrategy struct {
	logger *slog.Logger
}

func NewLastLineStrategy(logger *slog.Logger) *LastLineStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &LastLineStrategy{logger: logger}
}

func (s *LastLineStrategy) DeriveName(ctx context.Context, text string) (string, error) {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		base := Sanitize(line)
		if base == "" {
			return "", ErrNoName
		}
		s.logger.Debug("namegen.lastline.derived", "base", base)
		return base, nil
	}
	return "", ErrNoName
}
