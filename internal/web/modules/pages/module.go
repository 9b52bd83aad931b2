package pages

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Module provides the root, about, and profile routes.
type Module struct {
	catalog Catalog
}

// New returns a pages module backed by the given catalog.
func New(catalog Catalog) Module {
	return Module{catalog: catalog}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires the root page routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.catalog))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
