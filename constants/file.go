package constants

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions holds the recognized image extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
	"bmp":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImagePath reports whether path has a recognized image extension.
func IsImagePath(path string) bool {
	_, ok := AllowedExtensions[NormalizeExt(filepath.Ext(path))]
	return ok
}
