package payment

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentSuccess, h.handleSuccess)
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentPagePattern, h.handleSummary)
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentUPIPattern, h.handleInitiateGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.PaymentUPIPattern, h.handleInitiate)
	mux.HandleFunc(http.MethodGet+" "+routepath.PaymentConfirmPattern, h.handleConfirmGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.PaymentConfirmPattern, h.handleConfirm)
	mux.HandleFunc(routepath.PaymentPrefix, h.handleFallback)
}
