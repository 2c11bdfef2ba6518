package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hai-def/hla-cache/internal/port"
)

// tempSuffix marks files still being written. A completed file never
// carries this suffix; rename happens only after the source stream is
// fully drained.
const tempSuffix = ".downloading"

// Manager handles local filesystem operations under a single cache root
type Manager struct {
	rootDir    string
	bufferSize int
}

// Ensure Manager implements port.FileSystem
var _ port.FileSystem = (*Manager)(nil)

// NewManager creates a new filesystem manager rooted at rootDir
func NewManager(rootDir string) *Manager {
	return NewManagerWithBufferSize(rootDir, 1024*1024) // 1 MiB default
}

// NewManagerWithBufferSize creates a new filesystem manager with a custom
// copy buffer size
func NewManagerWithBufferSize(rootDir string, bufferSize int) *Manager {
	if bufferSize <= 0 {
		bufferSize = 1024 * 1024
	}
	return &Manager{
		rootDir:    rootDir,
		bufferSize: bufferSize,
	}
}

// RootDir returns the cache root directory
func (m *Manager) RootDir() string {
	return m.rootDir
}

// EnsureRoot creates the cache root and any missing parents
func (m *Manager) EnsureRoot() error {
	if err := os.MkdirAll(m.rootDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache root dir: %w", err)
	}
	return nil
}

// FilePath returns the path of a file inside the cache root
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.rootDir, name)
}

// WriteFile streams reader to <name>.downloading inside the cache root and
// renames it to name when the stream ends cleanly. On any error the temp
// file is removed and the final path is left untouched.
func (m *Manager) WriteFile(name string, reader io.Reader) (string, int64, error) {
	finalPath := m.FilePath(name)
	tempPath := finalPath + tempSuffix

	f, err := os.Create(tempPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	buf := make([]byte, m.bufferSize)
	written, err := io.CopyBuffer(f, reader, buf)
	if err != nil {
		f.Close()
		os.Remove(tempPath)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return "", 0, fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return "", 0, fmt.Errorf("failed to rename temp file: %w", err)
	}

	return finalPath, written, nil
}

// FileExists checks if a file exists inside the cache root
func (m *Manager) FileExists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// FileSize returns the size of a file inside the cache root
func (m *Manager) FileSize(name string) (int64, error) {
	info, err := os.Stat(m.FilePath(name))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// CleanTempFiles removes leftover temp files from interrupted runs
func (m *Manager) CleanTempFiles() (int, error) {
	entries, err := os.ReadDir(m.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == tempSuffix {
			if err := os.Remove(filepath.Join(m.rootDir, entry.Name())); err == nil {
				count++
			}
		}
	}
	return count, nil
}
