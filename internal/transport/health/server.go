package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sandevgo/tallybot/internal/config"
	"github.com/sandevgo/tallybot/pkg/log"
)

const AliveMessage = "✅ Bot is alive!"

// Server answers liveness probes from hosting platforms. Every path is accepted.
type Server struct {
	addr   string
	server *http.Server
}

// NewServer builds the http.Server up front so Start and Shutdown, which run on
// different goroutines, never write the field.
func NewServer(cfg *config.HealthConfig) *Server {
	s := &Server{addr: cfg.Addr()}
	s.server = &http.Server{
		Handler:      s,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write([]byte(AliveMessage))
	}
}

// Start binds the listener before returning and serves in the background.
// After Shutdown, Serve returns at once and closes the listener.
func (s *Server) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("health server: listen %s: %w", s.addr, err)
	}

	go func() {
		logger.Info().Str("addr", ln.Addr().String()).Msg("health server listening")
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("health server stopped")
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
