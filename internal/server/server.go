// Package server exposes the grid layout engine and the layout store over
// a JSON HTTP API. It is a thin transport: every geometry decision is made
// by the grid package, every persistence decision by the store.
package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wcatz/widget-grid/internal/config"
	"github.com/wcatz/widget-grid/internal/store"
)

// Server holds the HTTP server state: active config, layout store, and
// request logger.
type Server struct {
	cfgPath string
	mu      sync.RWMutex
	cfg     *config.Config

	store  *store.Store
	logger *zap.Logger
	mux    *http.ServeMux
}

// New creates a Server. cfgPath may be empty, in which case built-in
// defaults apply and config reload is a no-op.
func New(cfgPath string, cfg *config.Config, st *store.Store, logger *zap.Logger) *Server {
	s := &Server{
		cfgPath: cfgPath,
		cfg:     cfg,
		store:   st,
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Config returns the current config (read-locked).
func (s *Server) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// ReloadConfig re-reads the YAML config from disk.
func (s *Server) ReloadConfig() error {
	if s.cfgPath == "" {
		return fmt.Errorf("no config file to reload")
	}
	cfg, err := config.Load(s.cfgPath)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	s.logger.Info("config reloaded", zap.String("path", s.cfgPath))
	return nil
}

// ServeHTTP implements http.Handler with request logging around the mux.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr), zap.String("layout_dir", s.store.Dir()))
	return http.ListenAndServe(addr, s)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
