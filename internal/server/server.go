// Package server exposes the schedule engine over HTTP and a websocket.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Options configures a Server.
type Options struct {
	Addr           string
	FirstWeekday   time.Weekday
	Location       *time.Location
	ThumbnailCells int
	// Resolve maps a schedule argument to a raw schedule, e.g. a saved
	// name. Nil passes arguments through.
	Resolve func(string) string
}

// Server wraps HTTP serving of the query API.
type Server struct {
	httpServer *http.Server
	opts       Options
	now        func() time.Time
}

// New creates a configured HTTP server.
func New(opts Options) *Server {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Resolve == nil {
		opts.Resolve = func(s string) string { return s }
	}

	mux := http.NewServeMux()
	s := &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           logRequests(mux),
			ReadHeaderTimeout: 10 * time.Second,
		},
		opts: opts,
		now:  time.Now,
	}
	s.registerRoutes(mux)
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Addr is the configured listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Run blocks and serves HTTP traffic until Shutdown.
func (s *Server) Run() error {
	slog.Info("server: listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts the server down.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	for _, view := range []string{"describe", "day", "week", "month", "next"} {
		mux.HandleFunc("GET /api/"+view, s.handleView(view))
	}
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func (s *Server) handleView(view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := queryFromURL(view, r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		data, err := s.answer(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, data)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("%T does not support hijacking", r.ResponseWriter)
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("server: request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
