package port

import "io"

// FileSystem defines the interface for cache filesystem operations
type FileSystem interface {
	// RootDir returns the cache root directory
	RootDir() string

	// EnsureRoot creates the cache root and any missing parents
	EnsureRoot() error

	// FilePath returns the path of a file inside the cache root
	FilePath(name string) string

	// WriteFile streams content to a temporary sibling of name and renames
	// it into place once the reader is drained.
	// Returns: final path, bytes written, error. On error the temporary
	// file has been removed and the final path is untouched.
	WriteFile(name string, reader io.Reader) (string, int64, error)

	// FileExists checks if a file exists inside the cache root
	FileExists(name string) bool

	// FileSize returns the size of a file inside the cache root
	FileSize(name string) (int64, error)

	// CleanTempFiles removes leftover in-progress temp files from earlier
	// interrupted runs. Returns the number of files deleted.
	CleanTempFiles() (int, error)
}
