package sqlite

import (
	"github.com/hai-def/hla-cache/internal/port"
)

// Append stores one fetch attempt and fills in its ID
func (s *Store) Append(attempt *port.Attempt) error {
	query := `
		INSERT INTO attempts (
			url, target_path, size_bytes, status, error, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.Exec(query,
		attempt.URL, attempt.TargetPath, attempt.SizeBytes,
		attempt.Status, attempt.Error, attempt.StartedAt, attempt.FinishedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	attempt.ID = id
	return nil
}

// Recent returns up to n attempts, newest first
func (s *Store) Recent(n int) ([]*port.Attempt, error) {
	query := `
		SELECT id, url, target_path, size_bytes, status, error, started_at, finished_at
		FROM attempts
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := s.db.Query(query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*port.Attempt
	for rows.Next() {
		a := &port.Attempt{}
		if err := rows.Scan(
			&a.ID, &a.URL, &a.TargetPath, &a.SizeBytes,
			&a.Status, &a.Error, &a.StartedAt, &a.FinishedAt,
		); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}
