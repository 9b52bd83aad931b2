package gallery

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Module provides the photo gallery route.
type Module struct {
	images ImageLister
}

// New returns a gallery module backed by the given lister.
func New(images ImageLister) Module {
	return Module{images: images}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "gallery" }

// Mount wires the gallery route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.images))
	return module.Mount{Prefix: routepath.Gallery, Handler: mux}, nil
}
