package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PlanRename resolves the collision-free destination for renaming
// originalPath to base, keeping the original extension. If the proposed path
// is taken by anything other than the original file itself, a numeric suffix
// (_1, _2, ...) is appended until the path is free. Returning the original
// path means the file already has the resolved name.
func PlanRename(originalPath, base string) string {
	dir := filepath.Dir(originalPath)
	ext := filepath.Ext(originalPath)

	target := filepath.Join(dir, base+ext)
	for counter := 1; ; counter++ {
		if target == originalPath || !pathExists(target) {
			return target
		}
		target = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
	}
}

// nextFreePath applies the same numeric-suffix policy for moves into another
// directory, where "equals the original" can never hold.
func nextFreePath(destDir, filename string) string {
	target := filepath.Join(destDir, filename)
	ext := filepath.Ext(filename)
	stem := filename[:len(filename)-len(ext)]
	for counter := 1; pathExists(target); counter++ {
		target = filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}
	return target
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
