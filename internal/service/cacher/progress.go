package cacher

import (
	"fmt"
	"io"
)

const mib = 1024 * 1024

// progressReader wraps a reader to report download progress on the console.
// With a known total it prints a percentage; otherwise raw bytes only.
type progressReader struct {
	reader    io.Reader
	total     int64 // -1 when unknown
	bytesRead int64
	out       io.Writer
	printed   bool
}

func newProgressReader(reader io.Reader, total int64, out io.Writer) *progressReader {
	return &progressReader{reader: reader, total: total, out: out}
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.bytesRead += int64(n)

	if n > 0 {
		r.print()
	}
	return n, err
}

func (r *progressReader) print() {
	mbRead := float64(r.bytesRead) / mib
	if r.total > 0 {
		percent := float64(r.bytesRead) / float64(r.total) * 100
		mbTotal := float64(r.total) / mib
		fmt.Fprintf(r.out, "\rProgress: %.1f%% (%.1f/%.1f MB)", percent, mbRead, mbTotal)
	} else {
		fmt.Fprintf(r.out, "\rDownloaded: %.1f MB", mbRead)
	}
	r.printed = true
}

// finish terminates the carriage-return progress line
func (r *progressReader) finish() {
	if r.printed {
		fmt.Fprintln(r.out)
	}
}
