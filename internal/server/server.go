// Package server serves rendered DTOs over HTTP so they can be inspected
// without running a full generate.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/koustreak/dtogen/internal/emitter"
	"github.com/koustreak/dtogen/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Generator lists tables and renders one DTO. *emitter.Emitter implements it.
type Generator interface {
	Tables(ctx context.Context) ([]string, error)
	Render(ctx context.Context, table string) ([]byte, error)
}

// Config holds the server's dependencies.
type Config struct {
	Addr      string
	DB        Pinger
	Generator Generator
	Logger    *logger.Logger
}

// Server is the preview HTTP server.
type Server struct {
	addr string
	db   Pinger
	gen  Generator
	log  *logger.Logger
}

// TableEntry is one element of the GET /tables response.
type TableEntry struct {
	Name    string `json:"name"`
	Skipped bool   `json:"skipped"`
}

// New creates a Server.
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Server{addr: cfg.Addr, db: cfg.DB, gen: cfg.Generator, log: log}
}

// Handler returns the router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		s.requestLogger,
		middleware.Recoverer,
	)

	r.Get("/healthz", s.health)
	r.Get("/tables", s.listTables)
	r.Get("/tables/{file}", s.renderTable)

	return r
}

// Serve listens on the configured address until ctx is canceled, then
// shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		s.log.With().Str("addr", s.addr).Logger().Info("preview server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.log.WarnWith("health check failed", err, nil)
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := s.gen.Tables(r.Context())
	if err != nil {
		s.fail(w, "list tables failed", err)
		return
	}

	entries := make([]TableEntry, len(tables))
	for i, t := range tables {
		entries[i] = TableEntry{Name: t, Skipped: emitter.Skip(t)}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

func (s *Server) renderTable(w http.ResponseWriter, r *http.Request) {
	table, ok := strings.CutSuffix(chi.URLParam(r, "file"), ".ts")
	if !ok || table == "" || emitter.Skip(table) {
		http.NotFound(w, r)
		return
	}

	tables, err := s.gen.Tables(r.Context())
	if err != nil {
		s.fail(w, "list tables failed", err)
		return
	}
	if !slices.Contains(tables, table) {
		http.NotFound(w, r)
		return
	}

	src, err := s.gen.Render(r.Context(), table)
	if err != nil {
		s.fail(w, "render failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/typescript; charset=utf-8")
	_, _ = w.Write(src)
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	s.log.ErrorWith(msg, err, nil)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// requestLogger logs one line per request through the zerolog-backed logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.log.HTTPEvent().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
