package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMissingFile(t *testing.T) {
	e := NewPDFExtractor(Config{}, nil)

	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestExtractRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf at all"), 0o644))

	e := NewPDFExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), path)
	assert.Error(t, err, "structurally invalid files must surface as extraction failures")
}

func TestExtractRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	e := NewPDFExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), path)
	assert.Error(t, err)
}

func TestExtractTruncatedPDFDoesNotPanic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trunc.pdf")
	// A valid header with a mangled body: the library may error or panic
	// internally; either way Extract must return an error, not crash.
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n1 0 obj\n<<garbage"), 0o644))

	e := NewPDFExtractor(Config{}, nil)
	assert.NotPanics(t, func() {
		_, err := e.Extract(context.Background(), path)
		assert.Error(t, err)
	})
}
