package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/symcheck"
)

// maxRequestSize caps the JSON body accepted by the analysis endpoint.
const maxRequestSize = 64 << 10

// ShutdownTimeout is how long Serve waits for in-flight requests on shutdown.
const ShutdownTimeout = 5 * time.Second

// Server exposes a symcheck.RemoteAnalyzer as the analysis endpoint.
type Server struct {
	analyzer symcheck.RemoteAnalyzer
	limiter  *ClientLimiter
	mux      *http.ServeMux
}

// NewServer creates a Server. If limiter is nil, requests are not rate limited.
func NewServer(analyzer symcheck.RemoteAnalyzer, limiter *ClientLimiter) *Server {
	s := &Server{
		analyzer: analyzer,
		limiter:  limiter,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("POST "+AnalyzePath, s.handleAnalyze)
	s.mux.HandleFunc("GET /api/healthz", s.handleHealth)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Serve accepts connections on l until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow(clientKey(r)) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req symcheck.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, symcheck.ErrorMessage(err))
		return
	}

	switch res := s.analyzer.Analyze(r.Context(), &req).(type) {
	case symcheck.RemoteSuccess:
		writeJSON(w, http.StatusOK, res)
	case symcheck.RemoteFailure:
		writeError(w, http.StatusBadGateway, res.Reason)
	default:
		writeError(w, http.StatusInternalServerError, "unexpected analysis result")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
