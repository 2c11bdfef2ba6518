package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultURL is the EBI mirror of the IPD-IMGT/HLA protein database
const DefaultURL = "https://ftp.ebi.ac.uk/pub/databases/ipd/imgt/hla/hla_prot.fasta"

// Config represents the entire application configuration
type Config struct {
	Download DownloadConfig `mapstructure:"download"`
	Cache    CacheConfig    `mapstructure:"cache"`
	History  HistoryConfig  `mapstructure:"history"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DownloadConfig contains fetch settings
type DownloadConfig struct {
	URL             string `mapstructure:"url"`
	ResponseTimeout string `mapstructure:"response_timeout"`
	ChunkSizeMB     int    `mapstructure:"chunk_size_mb"`
}

// CacheConfig contains cache settings. An empty RootDir selects the
// platform default location.
type CacheConfig struct {
	RootDir string `mapstructure:"root_dir"`
}

// HistoryConfig contains download history ledger settings. An empty Path
// places the ledger inside the cache root.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from the specified file path. An empty path
// yields the defaults; a non-empty path must name an existing file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("download.url", DefaultURL)
	v.SetDefault("download.response_timeout", "300s")
	v.SetDefault("download.chunk_size_mb", 1)
	v.SetDefault("cache.root_dir", "")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Download.URL == "" {
		return fmt.Errorf("download.url is required")
	}
	if _, err := time.ParseDuration(c.Download.ResponseTimeout); err != nil {
		return fmt.Errorf("invalid download.response_timeout: %w", err)
	}
	if c.Download.ChunkSizeMB <= 0 {
		return fmt.Errorf("download.chunk_size_mb must be positive")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format: %s", c.Logging.Format)
	}

	return nil
}

// GetResponseTimeout returns the initial-response timeout as time.Duration
func (c *DownloadConfig) GetResponseTimeout() time.Duration {
	d, _ := time.ParseDuration(c.ResponseTimeout)
	if d == 0 {
		return 300 * time.Second
	}
	return d
}

// GetChunkSize returns the copy chunk size in bytes
func (c *DownloadConfig) GetChunkSize() int {
	if c.ChunkSizeMB <= 0 {
		return 1024 * 1024 // 1 MiB default
	}
	return c.ChunkSizeMB * 1024 * 1024
}
