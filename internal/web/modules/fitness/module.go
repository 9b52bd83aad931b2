package fitness

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Module provides the BMI/BMR calculator route.
type Module struct{}

// New returns a fitness calculator module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "fitness" }

// Mount wires the calculator routes.
func (Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers())
	return module.Mount{Prefix: routepath.BMIBMR, Handler: mux}, nil
}
