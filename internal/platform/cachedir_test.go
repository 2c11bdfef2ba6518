package platform

import (
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	tests := []struct {
		name         string
		goos         string
		home         string
		localAppData string
		want         string
	}{
		{
			name:         "windows with LOCALAPPDATA",
			goos:         "windows",
			home:         `C:\Users\alice`,
			localAppData: `C:\Users\alice\AppData\Local`,
			want:         filepath.Join(`C:\Users\alice\AppData\Local`, "hai_def_cache"),
		},
		{
			name: "windows without LOCALAPPDATA",
			goos: "windows",
			home: `C:\Users\alice`,
			want: filepath.Join(`C:\Users\alice`, "AppData", "Local", "hai_def_cache"),
		},
		{
			name: "linux",
			goos: "linux",
			home: "/home/alice",
			want: filepath.Join("/home/alice", ".cache", "hai_def"),
		},
		{
			name: "darwin",
			goos: "darwin",
			home: "/Users/alice",
			want: filepath.Join("/Users/alice", ".cache", "hai_def"),
		},
		{
			name:         "non-windows ignores LOCALAPPDATA",
			goos:         "linux",
			home:         "/home/alice",
			localAppData: `C:\whatever`,
			want:         filepath.Join("/home/alice", ".cache", "hai_def"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CacheDir(tt.goos, tt.home, tt.localAppData)
			if got != tt.want {
				t.Errorf("CacheDir(%q, %q, %q) = %q, want %q",
					tt.goos, tt.home, tt.localAppData, got, tt.want)
			}
		})
	}
}

func TestDefaultCacheDir(t *testing.T) {
	dir, err := DefaultCacheDir()
	if err != nil {
		t.Fatalf("DefaultCacheDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("DefaultCacheDir() returned empty path")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("DefaultCacheDir() = %q, want absolute path", dir)
	}
}
