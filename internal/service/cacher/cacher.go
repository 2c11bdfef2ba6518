// Package cacher implements the fetch-and-cache and load-path operations
// for the HLA protein database.
package cacher

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/hai-def/hla-cache/internal/domain"
	"github.com/hai-def/hla-cache/internal/port"
)

// FileName is the cached payload inside the cache root
const FileName = "hla_prot.fasta"

// Config contains cacher configuration
type Config struct {
	// SourceURL is the remote location of the FASTA database
	SourceURL string

	// FileName overrides the target file name (default FileName)
	FileName string
}

// Cacher ensures the HLA database is present in the cache root and keeps
// the config record pointing at it. Not safe for concurrent invocation
// against the same cache root: two racers may both download.
type Cacher struct {
	config   *Config
	fetcher  port.Fetcher
	fs       port.FileSystem
	records  port.RecordRepository
	history  port.HistoryRepository // nil disables the ledger
	logger   *zap.Logger
	progress io.Writer
	now      func() time.Time
}

// New creates a new Cacher. history may be nil.
func New(
	cfg *Config,
	fetcher port.Fetcher,
	fs port.FileSystem,
	records port.RecordRepository,
	history port.HistoryRepository,
	logger *zap.Logger,
) *Cacher {
	if cfg.FileName == "" {
		cfg.FileName = FileName
	}
	return &Cacher{
		config:   cfg,
		fetcher:  fetcher,
		fs:       fs,
		records:  records,
		history:  history,
		logger:   logger,
		progress: os.Stderr,
		now:      time.Now,
	}
}

// SetProgressWriter redirects console progress output (used by tests)
func (c *Cacher) SetProgressWriter(w io.Writer) {
	c.progress = w
}

// Ensure makes sure the database file exists in the cache root, downloading
// it when absent, and returns its path. A pre-existing file is reused as-is
// with no freshness or integrity check.
func (c *Cacher) Ensure(ctx context.Context) (string, error) {
	if err := c.fs.EnsureRoot(); err != nil {
		return "", err
	}

	// Leftovers from a previously interrupted run
	if removed, err := c.fs.CleanTempFiles(); err == nil && removed > 0 {
		c.logger.Info("removed stale temp files", zap.Int("count", removed))
	}

	name := c.config.FileName
	started := c.now()

	if c.fs.FileExists(name) {
		size, err := c.fs.FileSize(name)
		if err != nil {
			return "", err
		}
		path := c.fs.FilePath(name)
		c.logger.Info("database already cached",
			zap.String("path", path),
			zap.String("size", humanize.IBytes(uint64(size))),
		)
		c.record(&port.Attempt{
			URL:        c.config.SourceURL,
			TargetPath: path,
			SizeBytes:  size,
			Status:     domain.StatusCached,
			StartedAt:  started,
			FinishedAt: c.now(),
		})
		return path, nil
	}

	c.logger.Info("downloading database",
		zap.String("url", c.config.SourceURL),
		zap.String("destination", c.fs.FilePath(name)),
	)

	body, total, err := c.fetcher.Fetch(ctx, c.config.SourceURL)
	if err != nil {
		c.fail(started, err)
		return "", fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}
	defer body.Close()

	reader := newProgressReader(body, total, c.progress)
	path, written, err := c.fs.WriteFile(name, reader)
	reader.finish()
	if err != nil {
		c.fail(started, err)
		return "", fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}

	sizeMB := domain.SizeMB(written)
	c.logger.Info("download complete",
		zap.String("path", path),
		zap.String("size", humanize.IBytes(uint64(written))),
	)

	record := &domain.Record{
		FastaPath:   path,
		DownloadURL: c.config.SourceURL,
		FileSizeMB:  sizeMB,
	}
	if err := c.records.Save(record); err != nil {
		return "", err
	}

	c.record(&port.Attempt{
		URL:        c.config.SourceURL,
		TargetPath: path,
		SizeBytes:  written,
		Status:     domain.StatusDownloaded,
		StartedAt:  started,
		FinishedAt: c.now(),
	})

	return path, nil
}

// CachedPath returns the path stored in the config record. The referenced
// file is not re-checked on disk. Absent or unusable records surface as
// domain.ErrNotConfigured / domain.ErrBadRecord.
func (c *Cacher) CachedPath() (string, error) {
	record, err := c.records.Load()
	if err != nil {
		return "", err
	}
	return record.FastaPath, nil
}

// fail records a failed attempt in the history ledger
func (c *Cacher) fail(started time.Time, cause error) {
	c.record(&port.Attempt{
		URL:        c.config.SourceURL,
		TargetPath: c.fs.FilePath(c.config.FileName),
		Status:     domain.StatusFailed,
		Error:      cause.Error(),
		StartedAt:  started,
		FinishedAt: c.now(),
	})
}

// record appends to the history ledger; ledger errors never fail the fetch
func (c *Cacher) record(attempt *port.Attempt) {
	if c.history == nil {
		return
	}
	if err := c.history.Append(attempt); err != nil {
		c.logger.Warn("failed to record history entry", zap.Error(err))
	}
}
