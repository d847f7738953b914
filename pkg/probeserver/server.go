package probeserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/considonet/g-env/pkg/logger"
)

// Server serves the probe routes with graceful shutdown.
type Server struct {
	opts *options

	mu  sync.Mutex
	srv *http.Server
}

func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}
	o.log = o.log.With(logger.Component("probeserver"))
	return &Server{opts: o}
}

// Run listens and serves until ctx is done, then shuts down gracefully.
// Listen failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrRunning
	}
	o := s.opts
	srv := &http.Server{
		Addr:              o.addr,
		Handler:           Router(o.log, o.hostOpts...),
		ReadHeaderTimeout: o.readHeaderTimeout,
		WriteTimeout:      o.writeTimeout,
	}
	s.srv = srv
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.srv = nil
		s.mu.Unlock()
	}()

	ln, err := net.Listen("tcp", o.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	addr := ln.Addr().String()
	o.log.InfoContext(ctx, "probe server listening", slog.String("addr", addr))
	for _, fn := range o.onListen {
		fn(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	<-errCh
	o.log.InfoContext(shutdownCtx, "probe server stopped")
	return nil
}
