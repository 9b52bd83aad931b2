// Package app assembles the public site modules into one HTTP server.
package app

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
	"github.com/yuvrajprajapati/gymshim/internal/upi"
	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/admission"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/assets"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/contact"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/fitness"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/gallery"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/pages"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/payment"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/plans"
	"github.com/yuvrajprajapati/gymshim/internal/web/modules/trainers"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
)

// Config defines the inputs for the public site server.
type Config struct {
	HTTPAddr string
	Store    storage.Store
	Media    *media.Store
	Payee    upi.Payee
}

// Server hosts the public site HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer assembles the site modules and returns a server ready to run.
func NewServer(config Config) (*Server, error) {
	handler, err := BuildRootHandler(config)
	if err != nil {
		return nil, err
	}

	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// BuildRootHandler composes the site modules and wraps them with the
// shared request middleware.
func BuildRootHandler(config Config) (http.Handler, error) {
	if config.Store == nil {
		return nil, errors.New("store is required")
	}
	if config.Media == nil {
		return nil, errors.New("media store is required")
	}

	root, err := Compose(ComposeInput{Modules: []module.Module{
		pages.New(config.Store),
		plans.New(config.Store),
		trainers.New(config.Store),
		gallery.New(config.Store),
		fitness.New(),
		contact.New(),
		admission.New(config.Store, config.Media),
		payment.New(config.Store, config.Payee),
		assets.NewStatic(),
		assets.NewMedia(config.Media.Root()),
	}})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.Trace("web"),
	), nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("public site listening on %s", s.httpAddr)
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
