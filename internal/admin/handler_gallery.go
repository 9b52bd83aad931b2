package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/admin/templates"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
)

// galleryUploadMemory bounds in-memory multipart parsing for uploads.
const galleryUploadMemory = 8 << 20

func (h *Handler) handleGalleryPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	images, err := h.store.ListGalleryImages(r.Context(), 0)
	if err != nil {
		h.storeError(w, "list gallery", err)
		return
	}
	h.renderPage(w, r, "Gallery", routepath.Gallery, http.StatusOK, templates.GalleryPage(templates.GalleryView{
		Images:  images,
		Message: strings.TrimSpace(r.URL.Query().Get("message")),
	}))
}

func (h *Handler) handleGalleryUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if err := r.ParseMultipartForm(galleryUploadMemory); err != nil {
		redirectWithMessage(w, r, routepath.Gallery, "Could not read the upload form.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		redirectWithMessage(w, r, routepath.Gallery, "Choose an image to upload.")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		redirectWithMessage(w, r, routepath.Gallery, "Only image files are allowed.")
		return
	}

	path, err := h.media.SaveGalleryImage(header.Filename, file)
	if err != nil {
		h.storeError(w, "save gallery image", err)
		return
	}

	image := gym.GalleryImage{
		Title:      strings.TrimSpace(r.FormValue("title")),
		ImagePath:  path,
		UploadedAt: h.now().UTC(),
	}
	if _, err := h.store.AddGalleryImage(r.Context(), image); err != nil {
		if removeErr := h.media.Remove(path); removeErr != nil {
			h.storeError(w, "remove orphaned gallery image", removeErr)
			return
		}
		h.storeError(w, "add gallery image", err)
		return
	}
	redirectWithMessage(w, r, routepath.Gallery, "Image uploaded.")
}

func (h *Handler) handleGalleryRoutes(w http.ResponseWriter, r *http.Request) {
	id, action, ok := resourceAction(r.URL.Path, routepath.GalleryPrefix)
	if !ok || action != "delete" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	image, err := h.store.GetGalleryImage(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		redirectWithMessage(w, r, routepath.Gallery, "Image already removed.")
		return
	}
	if err != nil {
		h.storeError(w, "get gallery image", err)
		return
	}

	if err := h.store.DeleteGalleryImage(r.Context(), id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.storeError(w, "delete gallery image", err)
		return
	}
	if err := h.media.Remove(image.ImagePath); err != nil {
		h.storeError(w, "remove gallery file", err)
		return
	}
	redirectWithMessage(w, r, routepath.Gallery, "Image deleted.")
}
