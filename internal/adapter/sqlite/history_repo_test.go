package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hai-def/hla-cache/internal/domain"
	"github.com/hai-def/hla-cache/internal/port"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	start := time.Now().Add(-time.Minute).UTC().Truncate(time.Second)
	attempts := []*port.Attempt{
		{
			URL:        "https://example.org/hla_prot.fasta",
			TargetPath: "/cache/hla_prot.fasta",
			SizeBytes:  1 << 20,
			Status:     domain.StatusDownloaded,
			StartedAt:  start,
			FinishedAt: start.Add(30 * time.Second),
		},
		{
			URL:        "https://example.org/hla_prot.fasta",
			TargetPath: "/cache/hla_prot.fasta",
			SizeBytes:  1 << 20,
			Status:     domain.StatusCached,
			StartedAt:  start.Add(time.Minute),
			FinishedAt: start.Add(time.Minute),
		},
		{
			URL:        "https://example.org/hla_prot.fasta",
			TargetPath: "/cache/hla_prot.fasta",
			Status:     domain.StatusFailed,
			Error:      "request failed: connection refused",
			StartedAt:  start.Add(2 * time.Minute),
			FinishedAt: start.Add(2 * time.Minute),
		},
	}

	for i, a := range attempts {
		if err := store.Append(a); err != nil {
			t.Fatalf("Append() #%d error: %v", i, err)
		}
		if a.ID == 0 {
			t.Errorf("Append() #%d did not assign an ID", i)
		}
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Recent() returned %d attempts, want 3", len(recent))
	}

	// Newest first
	if recent[0].Status != domain.StatusFailed {
		t.Errorf("Recent()[0].Status = %q, want %q", recent[0].Status, domain.StatusFailed)
	}
	if recent[2].Status != domain.StatusDownloaded {
		t.Errorf("Recent()[2].Status = %q, want %q", recent[2].Status, domain.StatusDownloaded)
	}
	if recent[0].Error == "" {
		t.Error("failed attempt lost its error message")
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		a := &port.Attempt{
			URL:        "https://example.org/hla_prot.fasta",
			TargetPath: "/cache/hla_prot.fasta",
			Status:     domain.StatusCached,
			StartedAt:  now,
			FinishedAt: now,
		}
		if err := store.Append(a); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Recent(2) returned %d attempts, want 2", len(recent))
	}
}

func TestRecentEmpty(t *testing.T) {
	store := openTestStore(t)

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Recent() on empty ledger returned %d attempts", len(recent))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	store.Close()

	// Reopening an existing database must not fail the migration
	store, err = Open(path)
	if err != nil {
		t.Fatalf("second Open() error: %v", err)
	}
	store.Close()
}
