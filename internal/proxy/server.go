package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"golang.org/x/time/rate"
)

// Server accepts client connections and runs each through the
// request/response pipeline in its own goroutine.  Handlers share no
// mutable state; a failure in one connection never affects another or
// the accept loop.
type Server struct {
	ctx     context.Context
	cfg     Config
	log     *slog.Logger
	pool    *bufferPool
	limiter *rate.Limiter
}

// New constructs a Server with the given config.  ctx bounds all
// outbound dials; cancel it and close the listener to shut down.
func New(ctx context.Context, cfg Config) *Server {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	var limiter *rate.Limiter
	if cfg.AcceptRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.AcceptRate), max(1, int(cfg.AcceptRate)))
	}

	return &Server{
		ctx:     ctx,
		cfg:     cfg,
		log:     cfg.Logger,
		pool:    newBufferPool(relayBufferSize),
		limiter: limiter,
	}
}

// Serve accepts connections on ln until the listener is closed or
// accept fails.  Each connection is handled to completion by its own
// goroutine; no handler ever blocks the accept loop.
func (s *Server) Serve(ln net.Listener) error {
	for {
		if s.limiter != nil {
			if err := s.limiter.Wait(s.ctx); err != nil {
				return nil
			}
		}

		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		go s.handleConn(conn)
	}
}
