// Package http provides HTTP implementations of symcheck services: a reference
// table source, a remote analysis client and the analysis endpoint server.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/symcheck"
)

// DefaultFetchTimeout is the default timeout for reference table requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure ReferenceSource implements symcheck.ReferenceSource at compile time.
var _ symcheck.ReferenceSource = (*ReferenceSource)(nil)

// ReferenceSource retrieves reference tables relative to a base URL.
type ReferenceSource struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a ReferenceSource.
type Option func(*ReferenceSource)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *ReferenceSource) {
		s.timeout = d
	}
}

// NewReferenceSource creates a ReferenceSource reading tables under baseURL.
func NewReferenceSource(baseURL string, opts ...Option) *ReferenceSource {
	s := &ReferenceSource{
		baseURL: baseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Fetch retrieves the named table. Returns ENOTFOUND for a 404 response.
func (s *ReferenceSource) Fetch(ctx context.Context, name string) (string, error) {
	u, err := url.JoinPath(s.baseURL, name)
	if err != nil {
		return "", fmt.Errorf("invalid reference URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", symcheck.Errorf(symcheck.ENOTFOUND, "reference table %q not found", name)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
