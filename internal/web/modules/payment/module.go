package payment

import (
	"net/http"
	"time"

	"github.com/yuvrajprajapati/gymshim/internal/upi"
	"github.com/yuvrajprajapati/gymshim/internal/web/module"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

// Module provides the UPI payment flow for submitted admissions.
type Module struct {
	ledger Ledger
	payee  upi.Payee
}

// New returns a payment module collecting into the given merchant VPA.
func New(ledger Ledger, payee upi.Payee) Module {
	return Module{ledger: ledger, payee: payee}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "payment" }

// Mount wires the payment routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.ledger, m.payee, time.Now))
	return module.Mount{Prefix: routepath.PaymentPrefix, Handler: mux}, nil
}
