// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/schemedash/schemedash/internal/scheme"
	"github.com/schemedash/schemedash/internal/testable"
)

// DefaultPathPattern is where a scheme's dataset lives relative to the source
// root. "{id}" is replaced with the scheme id.
const DefaultPathPattern = "data/{id}-distribution.json"

// defaultHTTPTimeout bounds a single request when no client is supplied.
const defaultHTTPTimeout = 30 * time.Second

// maxPayloadBytes caps how much of a dataset response is read.
const maxPayloadBytes = 8 << 20

// ErrEmptyPayload is returned when a source responds with no usable dataset.
var ErrEmptyPayload = errors.New("empty dataset payload")

// Source retrieves a scheme's dataset by id.
type Source interface {
	Fetch(ctx context.Context, id string) (scheme.Dataset, error)
}

// resolvePath substitutes id into pattern.
func resolvePath(pattern, id string) string {
	if pattern == "" {
		pattern = DefaultPathPattern
	}
	return strings.ReplaceAll(pattern, "{id}", id)
}

// decodeDataset parses a dataset payload. A null or empty document, or one
// that decodes to the empty dataset, is treated as a failed load.
func decodeDataset(data []byte) (scheme.Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return scheme.Dataset{}, ErrEmptyPayload
	}
	var d scheme.Dataset
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return scheme.Dataset{}, fmt.Errorf("decoding dataset: %w", err)
	}
	if d.IsEmpty() {
		return scheme.Dataset{}, ErrEmptyPayload
	}
	return d, nil
}

// HTTPSource fetches datasets from a web server.
type HTTPSource struct {
	// BaseURL is the server root, e.g. "https://stats.example.org".
	BaseURL string

	// PathPattern overrides DefaultPathPattern.
	PathPattern string

	// Client is used for requests. A client with a 30s timeout is used when nil.
	Client *http.Client
}

// Compile-time interface check.
var _ Source = (*HTTPSource)(nil)

// URL returns the dataset URL for id.
func (s *HTTPSource) URL(id string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(resolvePath(s.PathPattern, id), "/")
}

// Fetch requests the dataset for id. Non-2xx responses are errors.
func (s *HTTPSource) Fetch(ctx context.Context, id string) (scheme.Dataset, error) {
	url := s.URL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return scheme.Dataset{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return scheme.Dataset{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return scheme.Dataset{}, fmt.Errorf("data source returned %d for %s", resp.StatusCode, id)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return scheme.Dataset{}, fmt.Errorf("reading %s: %w", url, err)
	}
	return decodeDataset(body)
}

// FileSource reads datasets from a local directory.
type FileSource struct {
	// Dir is the directory the path pattern is resolved against.
	Dir string

	// PathPattern overrides DefaultPathPattern.
	PathPattern string

	// FS defaults to testable.DefaultFS.
	FS testable.FileSystem
}

// Compile-time interface check.
var _ Source = (*FileSource)(nil)

// Path returns the dataset file path for id.
func (s *FileSource) Path(id string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(resolvePath(s.PathPattern, id)))
}

// Fetch reads the dataset file for id. A missing file is an error.
func (s *FileSource) Fetch(ctx context.Context, id string) (scheme.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return scheme.Dataset{}, err
	}
	fsys := s.FS
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	data, err := fsys.ReadFile(s.Path(id))
	if err != nil {
		return scheme.Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}
	return decodeDataset(data)
}
