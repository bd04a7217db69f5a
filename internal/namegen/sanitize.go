package namegen

import (
	"regexp"
	"strings"
)

// MaxNameLength caps sanitized candidate names (before extension).
const MaxNameLength = 200

var (
	invalidChars   = regexp.MustCompile(`[\\/:*?"<>|]`)
	underscoreRuns = regexp.MustCompile(`__+`)
	validFilename  = regexp.MustCompile(`^[A-Za-z0-9 _]+$`)
)

// Sanitize removes characters that are invalid in filenames, collapses
// underscore runs, trims leading/trailing spaces and underscores, and caps
// the result at MaxNameLength runes. Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(name string) string {
	s := invalidChars.ReplaceAllString(name, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, " _")
	if r := []rune(s); len(r) > MaxNameLength {
		// Truncation can leave a trailing separator; trim again so the
		// result is a fixed point of this function.
		s = strings.Trim(string(r[:MaxNameLength]), " _")
	}
	return s
}

// IsValidFilename reports whether name contains only letters, digits, spaces,
// and underscores. This is stricter than Sanitize, which lets characters like
// '-' or ',' through; generated titles must pass this check after sanitization.
func IsValidFilename(name string) bool {
	return validFilename.MatchString(name)
}
