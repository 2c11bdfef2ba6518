package port

import (
	"context"
	"io"
)

// Fetcher retrieves a remote resource as a byte stream
type Fetcher interface {
	// Fetch issues a streaming GET for url. It returns the response body
	// and the value of the Content-Length header, or -1 when the length is
	// unknown. A non-2xx status is reported as an error. The caller must
	// close the body.
	Fetch(ctx context.Context, url string) (io.ReadCloser, int64, error)
}
