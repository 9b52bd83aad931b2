package contact

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Module provides the contact enquiry form.
type Module struct{}

// New returns the contact module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires the contact form routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers())
	return module.Mount{Prefix: routepath.Contact, Handler: mux}, nil
}
