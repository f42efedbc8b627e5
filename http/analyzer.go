package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/symcheck"
)

// AnalyzePath is the path of the remote analysis endpoint.
const AnalyzePath = "/api/analyze-symptoms"

// DefaultAnalyzeTimeout bounds a single remote analysis call.
const DefaultAnalyzeTimeout = 30 * time.Second

// maxResponseSize caps the response body read from the endpoint.
const maxResponseSize = 1 << 20

// Ensure Analyzer implements symcheck.RemoteAnalyzer at compile time.
var _ symcheck.RemoteAnalyzer = (*Analyzer)(nil)

// Analyzer calls a remote analysis endpoint over HTTP.
type Analyzer struct {
	endpoint string
	client   *http.Client
}

// NewAnalyzer creates an Analyzer posting to endpoint + AnalyzePath.
// If client is nil, a client with DefaultAnalyzeTimeout is used.
func NewAnalyzer(endpoint string, client *http.Client) *Analyzer {
	if client == nil {
		client = &http.Client{Timeout: DefaultAnalyzeTimeout}
	}
	return &Analyzer{endpoint: endpoint, client: client}
}

// Analyze posts the request and decodes the analysis. Any transport error,
// non-2xx status or malformed body is reported as a RemoteFailure.
func (a *Analyzer) Analyze(ctx context.Context, req *symcheck.Request) symcheck.RemoteResult {
	u, err := url.JoinPath(a.endpoint, AnalyzePath)
	if err != nil {
		return symcheck.RemoteFailure{Reason: fmt.Sprintf("invalid endpoint: %v", err)}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return symcheck.RemoteFailure{Reason: fmt.Sprintf("encode request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return symcheck.RemoteFailure{Reason: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return symcheck.RemoteFailure{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return symcheck.RemoteFailure{Reason: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)}
	}

	var out symcheck.RemoteSuccess
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return symcheck.RemoteFailure{Reason: fmt.Sprintf("decode response: %v", err)}
	}
	if out.Analysis == "" {
		return symcheck.RemoteFailure{Reason: "empty analysis in response"}
	}
	if out.Disclaimer == "" {
		out.Disclaimer = symcheck.Disclaimer
	}

	return out
}
