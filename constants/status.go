package constants

// FileOutcome is the terminal state of one processed file.
type FileOutcome string

// Stable values (these exact strings appear in logs and run reports).
const (
	OutcomeRenamed               FileOutcome = "RENAMED"                 // rename performed (or planned, in dry-run)
	OutcomeSkippedAlreadyCorrect FileOutcome = "SKIPPED_ALREADY_CORRECT" // file already has the resolved name
	OutcomeSkippedNoText         FileOutcome = "SKIPPED_NO_TEXT"         // extraction failed or produced no text
	OutcomeSkippedNoName         FileOutcome = "SKIPPED_NO_NAME"         // no usable candidate name derived
	OutcomeFailed                FileOutcome = "FAILED"                  // filesystem rename/move error
)

// IsSkip reports whether the outcome left the file untouched without being an I/O failure.
func (o FileOutcome) IsSkip() bool {
	switch o {
	case OutcomeSkippedAlreadyCorrect, OutcomeSkippedNoText, OutcomeSkippedNoName:
		return true
	}
	return false
}
