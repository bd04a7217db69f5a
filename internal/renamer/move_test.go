package renamer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovePDFsCreatesDestination(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "archive", "2024")
	touch(t, filepath.Join(src, "a.pdf"))
	touch(t, filepath.Join(src, "b.PDF"))
	require.NoError(t, os.WriteFile(filepath.Join(src, "keep.txt"), []byte("x"), 0o644))

	moved, err := MovePDFs(context.Background(), src, dest, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, moved)
	assert.Equal(t, []string{"a.pdf", "b.PDF"}, listDir(t, dest))
	assert.Equal(t, []string{"keep.txt"}, listDir(t, src), "non-PDFs stay behind")
}

func TestMovePDFsResolvesCollisions(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	touch(t, filepath.Join(src, "report.pdf"))
	touch(t, filepath.Join(dest, "report.pdf"))
	touch(t, filepath.Join(dest, "report_1.pdf"))

	moved, err := MovePDFs(context.Background(), src, dest, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, moved)
	assert.Equal(t, []string{"report.pdf", "report_1.pdf", "report_2.pdf"}, listDir(t, dest))
	assert.Empty(t, listDir(t, src))
}

func TestMovePDFsMissingSource(t *testing.T) {
	_, err := MovePDFs(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil)
	assert.Error(t, err)
}
