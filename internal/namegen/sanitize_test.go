package namegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "invalid characters become underscores",
			input:    `Report 2023/Q1: final?`,
			expected: "Report 2023_Q1_ final",
		},
		{
			name:     "underscore runs collapse",
			input:    "a__b____c",
			expected: "a_b_c",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    "  _hello world_  ",
			expected: "hello world",
		},
		{
			name:     "hyphens and commas survive",
			input:    "Invoice-A1234, 2023-01-02",
			expected: "Invoice-A1234, 2023-01-02",
		},
		{
			name:     "only invalid characters collapse to nothing",
			input:    `\/:*?"<>|`,
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeInvariants(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`a\b/c:d*e?f"g<h>i|j`,
		"__lots__of__underscores__",
		"   spaces   ",
		strings.Repeat("x_", 150),                 // truncation leaves a trailing separator
		strings.Repeat("long", 100) + `///`,       // truncation after replacement
		"unicode — émojis 🚀 stay",
		"Invoice #A1234 dated 2023-01-02",
	}

	for _, input := range inputs {
		got := Sanitize(input)

		// Idempotent: sanitizing twice changes nothing.
		assert.Equal(t, got, Sanitize(got), "not idempotent for %q", input)

		// Never contains a filesystem-invalid character.
		assert.NotContains(t, got, `\`)
		for _, c := range `/:*?"<>|` {
			assert.NotContains(t, got, string(c), "input %q", input)
		}

		// No underscore runs, no leading/trailing separators, bounded length.
		assert.NotContains(t, got, "__", "input %q", input)
		assert.Equal(t, got, strings.Trim(got, " _"), "input %q", input)
		assert.LessOrEqual(t, len([]rune(got)), MaxNameLength, "input %q", input)
	}
}

func TestIsValidFilename(t *testing.T) {
	assert.True(t, IsValidFilename("Acme Website Redesign"))
	assert.True(t, IsValidFilename("client_project_42"))

	// Stricter than Sanitize: punctuation the sanitizer allows is rejected here.
	assert.False(t, IsValidFilename("Invoice-A1234"))
	assert.False(t, IsValidFilename("report, final"))
	assert.False(t, IsValidFilename(""))
	assert.False(t, IsValidFilename("nota/path"))
}
