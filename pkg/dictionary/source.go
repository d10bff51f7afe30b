package dictionary

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Source fetches a word list resource by name.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FSSource serves word lists from a filesystem, usually a data directory.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource wraps any fs.FS as a Source.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// NewDirSource creates a Source rooted at dir.
func NewDirSource(dir string) *FSSource {
	return &FSSource{fsys: os.DirFS(dir)}
}

// Open opens name inside the filesystem.
func (s *FSSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := s.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// HTTPSource fetches word lists relative to a base URL, the way a browser
// page fetches static files next to it.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTP backed Source. A nil client gets a default
// one with a 30s timeout.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSource{baseURL: baseURL, client: client}
}

// Open issues a GET for name. Any non 2xx status is returned as an error.
func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	target, err := url.JoinPath(s.baseURL, name)
	if err != nil {
		return nil, fmt.Errorf("invalid resource url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	log.Debugf("Fetching word list: %s", target)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}
