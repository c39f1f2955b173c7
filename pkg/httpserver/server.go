package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/djedproject/formatter/pkg/logger"
)

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT or SIGTERM, then shuts it down gracefully.
type Server struct {
	opts options

	mu  sync.Mutex
	srv *http.Server

	once        sync.Once
	shutdownErr error
}

// New returns a Server listening on ":8080" unless configured otherwise.
func New(opts ...Option) *Server {
	o := options{addr: ":8080", shutdownTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logger.OrDiscard(o.logger)
	return &Server{opts: o}
}

// Run serves handler and blocks until shutdown completes.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
		IdleTimeout:  s.opts.idleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	s.srv = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	addr := ln.Addr().String()
	s.opts.logger.InfoContext(ctx, "http server listening", slog.String("addr", addr))
	for _, fn := range s.opts.onStart {
		fn(addr)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		if serr := s.Shutdown(context.WithoutCancel(ctx)); serr != nil {
			return serr
		}
		err = <-errCh
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	s.opts.logger.InfoContext(ctx, "http server stopped")
	return nil
}

// Shutdown stops a running server, waiting up to the shutdown timeout for
// in-flight requests. It is a no-op before Run; repeated calls return the
// first result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.shutdownErr = errors.Join(ErrShutdown, err)
		}
	})
	return s.shutdownErr
}
