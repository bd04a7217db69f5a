package constants

import (
	"path/filepath"
	"strings"
)

// PDFExtension is the only file type this tool renames.
const PDFExtension = "pdf"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDF checks whether a path names a PDF file (case-insensitive extension).
func IsPDF(path string) bool {
	return NormalizeExt(filepath.Ext(path)) == PDFExtension
}
