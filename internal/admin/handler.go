// Package admin hosts the back-office dashboard for gym staff.
//
// The admin plane is a separate process from the public site: it talks to
// the same store but is guarded by a single-operator login.
package admin

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	adminstatic "github.com/yuvrajprajapati/gymshim/internal/admin/static"
	"github.com/yuvrajprajapati/gymshim/internal/admin/templates"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
	"github.com/yuvrajprajapati/gymshim/internal/storage/media"
)

// dashboardRecentLimit caps the admissions shown on the dashboard.
const dashboardRecentLimit = 8

// Handler routes admin back-office requests.
type Handler struct {
	store storage.Store
	media *media.Store
	auth  AuthConfig
	now   func() time.Time
}

// NewHandler builds the authenticated HTTP handler for the admin server.
func NewHandler(store storage.Store, mediaStore *media.Store, auth AuthConfig) http.Handler {
	h := &Handler{store: store, media: mediaStore, auth: auth, now: time.Now}
	return requireAuth(h.routes(), auth)
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(adminstatic.FS)))
	mux.Handle(routepath.Root, http.HandlerFunc(h.handleDashboard))
	mux.Handle(routepath.Login, http.HandlerFunc(h.handleLogin))
	mux.Handle(routepath.Logout, http.HandlerFunc(h.handleLogout))
	mux.Handle(routepath.Plans, http.HandlerFunc(h.handlePlansPage))
	mux.Handle(routepath.PlansCreate, http.HandlerFunc(h.handlePlanCreate))
	mux.Handle(routepath.PlansPrefix, http.HandlerFunc(h.handlePlanRoutes))
	mux.Handle(routepath.Trainers, http.HandlerFunc(h.handleTrainersPage))
	mux.Handle(routepath.TrainersCreate, http.HandlerFunc(h.handleTrainerCreate))
	mux.Handle(routepath.TrainersPrefix, http.HandlerFunc(h.handleTrainerRoutes))
	mux.Handle(routepath.Gallery, http.HandlerFunc(h.handleGalleryPage))
	mux.Handle(routepath.GalleryUpload, http.HandlerFunc(h.handleGalleryUpload))
	mux.Handle(routepath.GalleryPrefix, http.HandlerFunc(h.handleGalleryRoutes))
	mux.Handle(routepath.Admissions, http.HandlerFunc(h.handleAdmissionsPage))
	mux.Handle(routepath.AdmissionsPrefix, http.HandlerFunc(h.handleAdmissionDetail))
	mux.Handle(routepath.Payments, http.HandlerFunc(h.handlePaymentsPage))
	return mux
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderComponent(w, http.StatusOK, templates.LoginPage(""))
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			h.renderComponent(w, http.StatusBadRequest, templates.LoginPage("Could not read the login form."))
			return
		}
		if !h.auth.checkPassword(r.FormValue("password")) {
			h.renderComponent(w, http.StatusUnauthorized, templates.LoginPage("Wrong password."))
			return
		}
		token, err := h.auth.issueSession(h.now())
		if err != nil {
			log.Printf("issue admin session: %v", err)
			h.renderComponent(w, http.StatusInternalServerError, templates.LoginPage("Could not start a session."))
			return
		}
		setSessionCookie(w, r, token, h.auth.sessionTTL())
		http.Redirect(w, r, routepath.Root, http.StatusFound)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	clearSessionCookie(w, r)
	http.Redirect(w, r, routepath.Login, http.StatusFound)
}

// renderPage writes body inside the admin layout.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, title, active string, statusCode int, body templ.Component) {
	var buf bytes.Buffer
	if err := templates.Layout(title, active, body).Render(r.Context(), &buf); err != nil {
		log.Printf("render admin page %q: %v", title, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write admin page %q: %v", title, err)
	}
}

// renderComponent writes a standalone component without the admin layout.
func (h *Handler) renderComponent(w http.ResponseWriter, statusCode int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		log.Printf("render admin component: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write admin component: %v", err)
	}
}

func (h *Handler) storeError(w http.ResponseWriter, context string, err error) {
	log.Printf("%s: %v", context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func methodNotAllowed(w http.ResponseWriter, allow ...string) {
	w.Header().Set("Allow", strings.Join(allow, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// redirectWithMessage sends the operator to path with a status banner.
func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, message string) {
	if message != "" {
		path = templates.AppendQueryParam(path, "message", message)
	}
	http.Redirect(w, r, path, http.StatusFound)
}

// resourceAction splits "/{prefix}{id}/{action}" paths used by edit and
// delete routes. An empty action means the bare "/{prefix}{id}" path.
func resourceAction(path, prefix string) (int64, string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	idPart, action, _ := strings.Cut(rest, "/")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	return id, action, true
}
