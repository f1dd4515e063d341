package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/docsedge/pkg/logger"
)

// Server is an http.Server with context-driven graceful shutdown.
type Server struct {
	opts *options

	mu  sync.Mutex
	srv *http.Server

	shutdownOnce sync.Once
	shutdownErr  error
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	o := &options{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   10 * time.Second,
		logger:            slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Server{opts: o}
}

// Run serves handler until ctx is cancelled or Shutdown is called, then drains
// in-flight requests within the shutdown timeout. A clean shutdown returns nil.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	o := s.opts
	s.srv = &http.Server{
		Addr:              o.addr,
		Handler:           handler,
		ReadHeaderTimeout: o.readHeaderTimeout,
		ReadTimeout:       o.readTimeout,
		WriteTimeout:      o.writeTimeout,
		IdleTimeout:       o.idleTimeout,
		ErrorLog:          slog.NewLogLogger(o.logger.Handler(), slog.LevelWarn),
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	srv := s.srv
	s.mu.Unlock()

	ln := o.listener
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", o.addr)
		if err != nil {
			s.mu.Lock()
			s.srv = nil
			s.mu.Unlock()
			return errors.Join(ErrStart, err)
		}
	}

	addr := ln.Addr().String()
	o.logger.InfoContext(ctx, "http server started", logger.Component("httpserver"), slog.String("addr", addr))
	for _, h := range o.onStart {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.Shutdown(context.WithoutCancel(ctx))
		if serveErr := <-errCh; !errors.Is(serveErr, http.ErrServerClosed) {
			runErr = errors.Join(runErr, serveErr)
		}
	case serveErr := <-errCh:
		if !errors.Is(serveErr, http.ErrServerClosed) {
			return errors.Join(ErrStart, serveErr)
		}
		runErr = s.shutdownResult()
	}

	o.logger.InfoContext(ctx, "http server stopped", logger.Component("httpserver"), logger.Error(runErr))
	return runErr
}

// Shutdown stops the server gracefully. Calling it before Run is a no-op;
// after Run it is safe to call more than once, only the first call has an effect.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.mu.Lock()
			s.shutdownErr = errors.Join(ErrShutdown, err)
			s.mu.Unlock()
		}
	})
	return s.shutdownResult()
}

func (s *Server) shutdownResult() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownErr
}
