// Package platform resolves the per-user cache directory for the HLA
// database. Resolution is pure: callers create the directory themselves.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	windowsDirName = "hai_def_cache"
	unixDirName    = "hai_def"
)

// CacheDir returns the cache root for the given OS identity. On Windows the
// root lives under the local application data directory (localAppData when
// set, otherwise the conventional location under home); everywhere else it is
// ~/.cache/hai_def. CacheDir never touches the filesystem.
func CacheDir(goos, home, localAppData string) string {
	if goos == "windows" {
		if localAppData != "" {
			return filepath.Join(localAppData, windowsDirName)
		}
		return filepath.Join(home, "AppData", "Local", windowsDirName)
	}
	return filepath.Join(home, ".cache", unixDirName)
}

// DefaultCacheDir resolves the cache root for the current process
// environment.
func DefaultCacheDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return CacheDir(runtime.GOOS, home, os.Getenv("LOCALAPPDATA")), nil
}
