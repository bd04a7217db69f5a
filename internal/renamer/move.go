package renamer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/pdf-renamer/constants"
)

// MovePDFs relocates every PDF directly under srcDir into destDir, creating
// destDir if absent and applying the numeric-suffix collision policy. Per-file
// errors are logged and skipped; the returned count covers successful moves.
func MovePDFs(ctx context.Context, srcDir, destDir string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, fmt.Errorf("create destination %q: %w", destDir, err)
	}
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, fmt.Errorf("read dir %q: %w", srcDir, err)
	}

	moved := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return moved, ctx.Err()
		}
		if entry.IsDir() || !constants.IsPDF(entry.Name()) {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		dest := nextFreePath(destDir, entry.Name())
		if err := moveFile(src, dest); err != nil {
			logger.Error("renamer.move.failed", "src", src, "dest", dest, "error", err)
			continue
		}
		moved++
	}

	logger.Info("renamer.move.done", "src_dir", srcDir, "dest_dir", destDir, "moved", moved)
	return moved, nil
}

// moveFile renames src to dest, falling back to copy-then-remove when the
// destination is on another filesystem. The source is removed only after the
// copy has been flushed.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := copyFile(src, dest); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	// O_EXCL: the collision loop already reserved this path; never overwrite.
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dest)
		return err
	}
	return nil
}
