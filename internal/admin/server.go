package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/yuvrajprajapati/gymshim/internal/platform/timeouts"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
	"github.com/yuvrajprajapati/gymshim/internal/storage/media"
)

// Config defines the inputs for the admin back-office process.
type Config struct {
	HTTPAddr string
	Store    storage.Store
	Media    *media.Store
	Auth     AuthConfig
}

// Server hosts the admin back-office HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds the admin server from its configuration.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Store == nil {
		return nil, errors.New("store is required")
	}
	if config.Media == nil {
		return nil, errors.New("media store is required")
	}
	if strings.TrimSpace(config.Auth.PasswordHash) == "" {
		return nil, errors.New("admin password hash is required")
	}
	if len(config.Auth.JWTSecret) == 0 {
		return nil, errors.New("jwt secret is required")
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(config.Store, config.Media, config.Auth),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("admin back office listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
