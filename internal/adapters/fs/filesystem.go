// Package fs implements filesystem queries against the host operating system.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/bazelify/internal/core/ports"
)

var _ ports.FileSystem = (*OSFileSystem)(nil)

// OSFileSystem implements ports.FileSystem using the standard library.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists reports whether path names an existing regular file.
// Symlinks are followed.
func (o *OSFileSystem) FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Abs returns the absolute form of path.
// If the working directory cannot be determined, the cleaned path is returned.
func (o *OSFileSystem) Abs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Join joins two path elements.
func (o *OSFileSystem) Join(a, b string) string {
	return filepath.Join(a, b)
}
