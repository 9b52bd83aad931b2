package fitness

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.BMIBMR, h.handleForm)
	mux.HandleFunc(http.MethodPost+" "+routepath.BMIBMR, h.handleCompute)
}
