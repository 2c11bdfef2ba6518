package domain

// Record describes a cached reference file. It is persisted as a single
// JSON object in config.json inside the cache root.
type Record struct {
	FastaPath   string  `json:"hla_fasta_path"`
	DownloadURL string  `json:"download_url"`
	FileSizeMB  float64 `json:"file_size_mb"`
}

// SizeMB converts a byte count to megabytes the way the record stores it.
func SizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}

// Attempt status values recorded in the download history ledger.
const (
	StatusCached     = "cached"     // target already present, no network activity
	StatusDownloaded = "downloaded" // fetched from the remote URL
	StatusFailed     = "failed"     // transport or write failure
)
