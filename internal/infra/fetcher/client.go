// Package fetcher downloads the SDelete archive over HTTP.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/runoshun/freewipe/internal/domain"
)

// ChunkSize is the size of each body read written to disk.
const ChunkSize = 8192

// Ensure Client implements domain.Fetcher interface.
var _ domain.Fetcher = (*Client)(nil)

// Client implements domain.Fetcher using net/http.
type Client struct {
	http *http.Client
}

// NewClient creates a new fetcher. A zero timeout waits forever.
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// NewClientWithHTTP creates a fetcher around an existing http.Client.
func NewClientWithHTTP(c *http.Client) *Client {
	return &Client{http: c}
}

// Fetch streams url into dest. The body is written to dest+".part" and renamed
// into place only after the whole body was received, so an interrupted
// download never leaves a truncated archive at dest.
func (c *Client) Fetch(ctx context.Context, url, dest string, progress domain.Progress) (int64, error) {
	if progress == nil {
		progress = nopProgress{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("get %s: %w: %s", url, domain.ErrUnexpectedStatus, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return 0, fmt.Errorf("create download directory: %w", err)
	}

	part := dest + ".part"
	f, err := os.OpenFile(part, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", part, err)
	}

	progress.Start(filepath.Base(dest), resp.ContentLength)
	n, copyErr := copyChunks(f, resp.Body, progress)
	progress.Finish()

	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(part)
		return n, fmt.Errorf("write %s: %w", dest, err)
	}

	if err := os.Rename(part, dest); err != nil {
		_ = os.Remove(part)
		return n, fmt.Errorf("rename %s: %w", part, err)
	}
	return n, nil
}

// copyChunks copies src to dst in ChunkSize reads, reporting each write.
func copyChunks(dst io.Writer, src io.Reader, progress domain.Progress) (int64, error) {
	buf := make([]byte, ChunkSize)
	var written int64
	for {
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			written += int64(nw)
			progress.Add(int64(nw))
			if werr != nil {
				return written, werr
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
		}
		if errors.Is(rerr, io.EOF) {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}

type nopProgress struct{}

func (nopProgress) Start(string, int64) {}
func (nopProgress) Add(int64)           {}
func (nopProgress) Finish()             {}
