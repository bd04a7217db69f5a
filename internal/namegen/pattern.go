package namegen

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PatternStrategy derives names from invoice/order/reference numbers and
// dates found in the document text, falling back to the first line.
type PatternStrategy struct {
	logger *slog.Logger
}

func NewPatternStrategy(logger *slog.Logger) *PatternStrategy {
	if logger == nil {
		logger = slog.Default()
	}
	return &PatternStrategy{logger: logger}
}

// Label+identifier patterns, in priority order. One identifier is enough.
var idPatterns = []struct {
	re     *regexp.Regexp
	prefix string
}{
	{regexp.MustCompile(`(?i)(?:invoice|inv)\s*[#:]?\s*([A-Za-z0-9-]+)`), "Invoice"},
	{regexp.MustCompile(`(?i)(?:order|po)\s*[#:]?\s*([A-Za-z0-9-]+)`), "Order"},
	{regexp.MustCompile(`Ref[#:]?\s*([A-Za-z0-9-]+)`), "Ref"},
}

var bareYear = regexp.MustCompile(`^\d{4}$`)

// Date patterns, in priority order: year-first numeric, year-last numeric,
// written-out month.
var (
	dateYearFirst = regexp.MustCompile(`\b(\d{4})[-./](\d{1,2})[-./](\d{1,2})\b`)
	dateYearLast  = regexp.MustCompile(`\b(\d{1,2})[-./](\d{1,2})[-./](\d{2,4})\b`)
	dateMonthName = regexp.MustCompile(`\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+(\d{1,2}),\s+(\d{4})\b`)
)

func (s *PatternStrategy) DeriveName(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNoName
	}

	var parts []string

	// Identifier first. A match whose capture is too short (or is a bare
	// year) does not end the search; later patterns may still hit.
	for _, p := range idPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		id := strings.TrimSpace(m[1])
		if len(id) > 3 && !bareYear.MatchString(id) {
			parts = append(parts, p.prefix+"-"+id)
			break
		}
	}

	if date, ok := findDate(text); ok {
		parts = append(parts, date)
	}

	if len(parts) == 0 {
		if line := firstLinePrefix(text); line != "" {
			parts = append(parts, line)
		}
	}

	base := Sanitize(strings.ReplaceAll(strings.Join(parts, "_"), " ", "_"))
	if base == "" {
		return "", ErrNoName
	}
	s.logger.Debug("namegen.pattern.derived", "parts", len(parts), "base", base)
	return base, nil
}

// findDate returns the first date in the text, normalized to YYYY-MM-DD when
// the year position makes parsing unambiguous. Ambiguous numeric dates are
// read month-first, then day-first when the first field cannot be a month.
// Anything that still fails passes through with separators normalized to '-'.
func findDate(text string) (string, bool) {
	if m := dateYearFirst.FindStringSubmatch(text); m != nil {
		if d, ok := calendarDate(m[1], m[2], m[3]); ok {
			return d, true
		}
		return normalizeSeparators(m[0]), true
	}
	if m := dateYearLast.FindStringSubmatch(text); m != nil {
		if len(m[3]) == 4 {
			if d, ok := calendarDate(m[3], m[1], m[2]); ok {
				return d, true
			}
			if d, ok := calendarDate(m[3], m[2], m[1]); ok {
				return d, true
			}
		}
		// Two-digit years are left as found.
		return normalizeSeparators(m[0]), true
	}
	if m := dateMonthName.FindStringSubmatch(text); m != nil {
		for _, layout := range []string{"January 2, 2006", "Jan 2, 2006"} {
			if t, err := time.Parse(layout, m[0]); err == nil {
				return t.Format("2006-01-02"), true
			}
		}
		return normalizeSeparators(m[0]), true
	}
	return "", false
}

// calendarDate validates the components as a real calendar date and formats
// them as YYYY-MM-DD.
func calendarDate(y, mo, d string) (string, bool) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(mo)
	day, _ := strconv.Atoi(d)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func normalizeSeparators(s string) string {
	s = strings.ReplaceAll(s, "/", "-")
	return strings.ReplaceAll(s, ".", "-")
}

// firstLinePrefix returns up to 50 characters of the first non-empty line.
func firstLinePrefix(text string) string {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r := []rune(line); len(r) > 50 {
			line = strings.TrimSpace(string(r[:50]))
		}
		return line
	}
	return ""
}
