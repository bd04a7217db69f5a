package namegen

import (
	"context"
	"errors"
)

// Sentinel errors shared by all strategies.
var (
	// ErrNoName means the strategy could not produce a usable candidate.
	ErrNoName = errors.New("no usable name found")
	// ErrInvalidName means a generated title failed the strict character-class check.
	ErrInvalidName = errors.New("generated name contains unsupported characters")
)

// Strategy turns extracted document text into a sanitized candidate base name
// (no extension). Implementations return ErrNoName when nothing usable can be
// derived; any other error is likewise treated by callers as "skip this file".
type Strategy interface {
	DeriveName(ctx context.Context, text string) (string, error)
}
