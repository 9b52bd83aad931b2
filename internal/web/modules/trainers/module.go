package trainers

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Module provides the trainer roster route.
type Module struct {
	trainers TrainerLister
}

// New returns a trainers module backed by the given lister.
func New(trainers TrainerLister) Module {
	return Module{trainers: trainers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "trainers" }

// Mount wires the trainer roster route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.trainers))
	return module.Mount{Prefix: routepath.Trainers, Handler: mux}, nil
}
