package pages

import (
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile, h.handleProfile)
	mux.HandleFunc("/", h.WriteNotFound)
}
