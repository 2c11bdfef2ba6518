package port

import (
	"time"

	"github.com/hai-def/hla-cache/internal/domain"
)

// RecordRepository persists and loads the config record
type RecordRepository interface {
	// Save writes the record, replacing any previous one
	Save(record *domain.Record) error

	// Load reads the record back. Returns domain.ErrNotConfigured when no
	// record exists and an error wrapping domain.ErrBadRecord when the
	// stored record cannot be used.
	Load() (*domain.Record, error)
}

// Attempt is one row of the download history ledger
type Attempt struct {
	ID         int64
	URL        string
	TargetPath string
	SizeBytes  int64
	Status     string // domain.StatusCached, StatusDownloaded, StatusFailed
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// HistoryRepository records fetch attempts. Implementations must tolerate
// being called after a failed fetch; ledger errors are advisory only.
type HistoryRepository interface {
	// Append stores one attempt and fills in its ID
	Append(attempt *Attempt) error

	// Recent returns up to n attempts, newest first
	Recent(n int) ([]*Attempt, error)

	// Close releases the underlying store
	Close() error
}
