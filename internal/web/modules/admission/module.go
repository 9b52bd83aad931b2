package admission

import (
	"net/http"
	"time"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Module provides the membership admission form.
type Module struct {
	dir    Directory
	photos PhotoStore
}

// New returns an admission module backed by the given directory and
// photo store.
func New(dir Directory, photos PhotoStore) Module {
	return Module{dir: dir, photos: photos}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "admission" }

// Mount wires the admission form routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.dir, m.photos, time.Now))
	return module.Mount{Prefix: routepath.Admission, Handler: mux}, nil
}
