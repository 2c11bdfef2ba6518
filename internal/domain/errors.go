package domain

import "errors"

// Common domain errors
var (
	// ErrNotConfigured means no config record exists yet; the caller should
	// run the fetch-and-cache setup first.
	ErrNotConfigured = errors.New("cache not configured")

	// ErrBadRecord means the config record exists but cannot be used
	// (malformed JSON or missing the path key).
	ErrBadRecord = errors.New("invalid config record")

	// ErrDownloadFailed wraps transport-level failures during fetch.
	ErrDownloadFailed = errors.New("download failed")
)
