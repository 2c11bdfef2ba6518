package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Download.URL != DefaultURL {
		t.Errorf("Download.URL = %q, want %q", cfg.Download.URL, DefaultURL)
	}
	if got := cfg.Download.GetResponseTimeout(); got != 300*time.Second {
		t.Errorf("GetResponseTimeout() = %v, want 300s", got)
	}
	if got := cfg.Download.GetChunkSize(); got != 1024*1024 {
		t.Errorf("GetChunkSize() = %d, want 1 MiB", got)
	}
	if cfg.Cache.RootDir != "" {
		t.Errorf("Cache.RootDir = %q, want empty (platform default)", cfg.Cache.RootDir)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v, want info/console", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
download:
  url: https://mirror.example.org/hla_prot.fasta
  response_timeout: 60s
  chunk_size_mb: 4
cache:
  root_dir: /tmp/hla-test
history:
  enabled: false
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Download.URL != "https://mirror.example.org/hla_prot.fasta" {
		t.Errorf("Download.URL = %q", cfg.Download.URL)
	}
	if got := cfg.Download.GetResponseTimeout(); got != 60*time.Second {
		t.Errorf("GetResponseTimeout() = %v, want 60s", got)
	}
	if got := cfg.Download.GetChunkSize(); got != 4*1024*1024 {
		t.Errorf("GetChunkSize() = %d, want 4 MiB", got)
	}
	if cfg.Cache.RootDir != "/tmp/hla-test" {
		t.Errorf("Cache.RootDir = %q", cfg.Cache.RootDir)
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled = true, want false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() succeeded for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Download: DownloadConfig{URL: DefaultURL, ResponseTimeout: "300s", ChunkSizeMB: 1},
			History:  HistoryConfig{Enabled: true},
			Logging:  LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty url", func(c *Config) { c.Download.URL = "" }, true},
		{"bad timeout", func(c *Config) { c.Download.ResponseTimeout = "soon" }, true},
		{"zero chunk size", func(c *Config) { c.Download.ChunkSizeMB = 0 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "text" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
