package components

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/maksimkurb/mobile-manager/src/internal/log"
)

// StopTimeout bounds graceful shutdown of an HTTP server.
const StopTimeout = 30 * time.Second

// HTTPServer serves a handler on a TCP address.
type HTTPServer struct {
	name     string
	bindAddr string
	handler  http.Handler

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
	running    bool
	errs       chan error
}

// NewHTTPServer creates a server component. name prefixes its log lines.
func NewHTTPServer(name, bindAddr string, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		name:     name,
		bindAddr: bindAddr,
		handler:  handler,
		errs:     make(chan error, 1),
	}
}

// Name returns the component name.
func (s *HTTPServer) Name() string {
	return s.name
}

// Start binds the address and serves in the background. Bind errors are
// returned directly; later serve errors are delivered on Errors.
func (s *HTTPServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("%s server is already running", s.name)
	}

	ln, err := net.Listen("tcp", s.bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.bindAddr, err)
	}

	s.listener = ln
	s.httpServer = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.running = true

	server := s.httpServer
	go func() {
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Errorf("[%s] Server error: %v", s.name, err)
			s.errs <- fmt.Errorf("%s server error: %w", s.name, err)
		}
	}()

	log.Infof("[%s] Listening on http://%s", s.name, ln.Addr())
	return nil
}

// Addr returns the bound address while running, or the configured one.
func (s *HTTPServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.bindAddr
}

// Errors delivers a serve failure that happened after Start returned.
func (s *HTTPServer) Errors() <-chan error {
	return s.errs
}

// Stop gracefully shuts the server down.
func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return fmt.Errorf("%s server is not running", s.name)
	}

	log.Infof("[%s] Shutting down server...", s.name)

	ctx, cancel := context.WithTimeout(context.Background(), StopTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.running = false
	s.listener = nil
	if err != nil {
		return fmt.Errorf("%s server shutdown failed: %w", s.name, err)
	}
	return nil
}
