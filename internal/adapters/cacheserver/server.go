// Package cacheserver serves build output over HTTP from an in-memory LRU cache.
package cacheserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultCacheSize  = 256
	readHeaderTimeout = 5 * time.Second
)

// entry is a cached file body, valid while the file's modification time is unchanged.
type entry struct {
	modTime time.Time
	data    []byte
}

// Server serves files from a list of output roots.
type Server struct {
	logger  ports.Logger
	metrics ports.BuildMetrics
	roots   []string
	cache   *lru.Cache[string, entry]
	router  chi.Router

	mu  sync.Mutex
	srv *http.Server
}

// New creates a Server for cfg. A nil gatherer disables the /metrics endpoint.
func New(cfg domain.ServeSettings, logger ports.Logger, metrics ports.BuildMetrics, gatherer prometheus.Gatherer) (*Server, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache"), "size", size)
	}

	s := &Server{
		logger:  logger,
		metrics: metrics,
		roots:   cfg.Roots,
		cache:   cache,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(allowAllOrigins)
	r.Use(s.logRequests)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/*", s.serveFile)
	s.router = r

	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds addr and serves in the background. It returns the bound address.
func (s *Server) Listen(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrServerListenFailed.Error()), "addr", addr)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(zerr.Wrap(err, "cache server stopped"))
		}
	}()

	bound := ln.Addr().String()
	s.logger.Info(fmt.Sprintf("serving %v on http://%s", s.roots, bound))
	return bound, nil
}

// Close shuts the server down and purges the cache.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()

	defer s.cache.Purge()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean("/" + chi.URLParam(r, "*"))
	for _, root := range s.roots {
		name := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := s.load(name, info.ModTime())
		if err != nil {
			s.logger.Error(err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.ServeContent(w, r, name, info.ModTime(), bytes.NewReader(data))
		return
	}
	http.NotFound(w, r)
}

// load returns the body of name, reading it from disk when the cached copy is stale.
func (s *Server) load(name string, modTime time.Time) ([]byte, error) {
	if e, ok := s.cache.Get(name); ok && e.modTime.Equal(modTime) {
		s.metrics.ObserveCacheLookup(true)
		return e.data, nil
	}
	s.metrics.ObserveCacheLookup(false)

	data, err := os.ReadFile(name) //nolint:gosec // name is confined to a configured root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", name)
	}
	s.cache.Add(name, entry{modTime: modTime, data: data})
	return data, nil
}

func allowAllOrigins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info(fmt.Sprintf("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Microsecond)))
	})
}
