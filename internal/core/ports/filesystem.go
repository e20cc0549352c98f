package ports

// FileSystem defines the filesystem queries needed during resolution.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// FileExists reports whether path names an existing regular file.
	// It never fails; a missing or unreadable path yields false.
	FileExists(path string) bool

	// Abs returns the absolute form of path. It does not touch the filesystem.
	Abs(path string) string

	// Join joins two path elements.
	Join(a, b string) string
}
