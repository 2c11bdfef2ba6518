// Package jsonrecord persists the config record as pretty-printed JSON
// inside the cache root.
package jsonrecord

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hai-def/hla-cache/internal/domain"
	"github.com/hai-def/hla-cache/internal/port"
)

// FileName is the config record file inside the cache root
const FileName = "config.json"

// Store implements port.RecordRepository on a single JSON file
type Store struct {
	path string
}

// Ensure Store implements port.RecordRepository
var _ port.RecordRepository = (*Store)(nil)

// NewStore creates a record store for the given cache root
func NewStore(rootDir string) *Store {
	return &Store{path: filepath.Join(rootDir, FileName)}
}

// Path returns the location of the config record file
func (s *Store) Path() string {
	return s.path
}

// Save writes the record with 2-space indentation, replacing any previous
// record
func (s *Store) Save(record *domain.Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Load reads the record back. A missing file maps to
// domain.ErrNotConfigured; malformed JSON or a missing path key maps to an
// error wrapping domain.ErrBadRecord. The referenced file's existence is
// not verified.
func (s *Store) Load() (*domain.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotConfigured
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrBadRecord, err)
	}

	var record domain.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadRecord, err)
	}
	if record.FastaPath == "" {
		return nil, fmt.Errorf("%w: missing hla_fasta_path", domain.ErrBadRecord)
	}

	return &record, nil
}
