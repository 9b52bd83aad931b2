package plans

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Module provides the membership plan catalog route.
type Module struct {
	plans PlanLister
}

// New returns a plans module backed by the given lister.
func New(plans PlanLister) Module {
	return Module{plans: plans}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "plans" }

// Mount wires the plan catalog route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.plans))
	return module.Mount{Prefix: routepath.Plans, Handler: mux}, nil
}
