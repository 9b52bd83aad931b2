package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/admin/templates"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
)

func (h *Handler) handleTrainersPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	trainers, err := h.store.ListTrainers(r.Context(), false)
	if err != nil {
		h.storeError(w, "list trainers", err)
		return
	}
	h.renderPage(w, r, "Trainers", routepath.Trainers, http.StatusOK, templates.TrainersPage(templates.TrainersView{
		Trainers: trainers,
		Message:  strings.TrimSpace(r.URL.Query().Get("message")),
	}))
}

func (h *Handler) handleTrainerCreate(w http.ResponseWriter, r *http.Request) {
	view := templates.TrainerFormView{
		Heading: "New trainer",
		Action:  routepath.TrainersCreate,
		Form:    templates.TrainerForm{DisplayOrder: "0", IsActive: true},
	}

	switch r.Method {
	case http.MethodGet:
		h.renderPage(w, r, view.Heading, routepath.Trainers, http.StatusOK, templates.TrainerFormPage(view))
		return
	case http.MethodPost:
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	trainer, form, errMsg := parseTrainerForm(r)
	if errMsg != "" {
		view.Form = form
		view.Error = errMsg
		h.renderPage(w, r, view.Heading, routepath.Trainers, http.StatusBadRequest, templates.TrainerFormPage(view))
		return
	}

	if _, err := h.store.CreateTrainer(r.Context(), trainer); err != nil {
		h.storeError(w, "create trainer", err)
		return
	}
	redirectWithMessage(w, r, routepath.Trainers, "Trainer created.")
}

func (h *Handler) handleTrainerRoutes(w http.ResponseWriter, r *http.Request) {
	id, action, ok := resourceAction(r.URL.Path, routepath.TrainersPrefix)
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch action {
	case "edit":
		h.handleTrainerEdit(w, r, id)
	case "delete":
		h.handleTrainerDelete(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleTrainerEdit(w http.ResponseWriter, r *http.Request, id int64) {
	existing, err := h.store.GetTrainer(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.storeError(w, "get trainer", err)
		return
	}

	view := templates.TrainerFormView{
		Heading: "Edit trainer",
		Action:  routepath.TrainerEdit(id),
		Form: templates.TrainerForm{
			Name:           existing.Name,
			Specialization: existing.Specialization,
			BioShort:       existing.BioShort,
			BioFull:        existing.BioFull,
			ImageURL:       existing.ImageURL,
			DisplayOrder:   strconv.Itoa(existing.DisplayOrder),
			IsActive:       existing.IsActive,
		},
	}

	switch r.Method {
	case http.MethodGet:
		h.renderPage(w, r, view.Heading, routepath.Trainers, http.StatusOK, templates.TrainerFormPage(view))
		return
	case http.MethodPost:
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	trainer, form, errMsg := parseTrainerForm(r)
	if errMsg != "" {
		view.Form = form
		view.Error = errMsg
		h.renderPage(w, r, view.Heading, routepath.Trainers, http.StatusBadRequest, templates.TrainerFormPage(view))
		return
	}

	trainer.ID = id
	if err := h.store.UpdateTrainer(r.Context(), trainer); err != nil {
		h.storeError(w, "update trainer", err)
		return
	}
	redirectWithMessage(w, r, routepath.Trainers, "Trainer updated.")
}

func (h *Handler) handleTrainerDelete(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if err := h.store.DeleteTrainer(r.Context(), id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.storeError(w, "delete trainer", err)
		return
	}
	redirectWithMessage(w, r, routepath.Trainers, "Trainer deleted.")
}

func parseTrainerForm(r *http.Request) (gym.Trainer, templates.TrainerForm, string) {
	if err := r.ParseForm(); err != nil {
		return gym.Trainer{}, templates.TrainerForm{}, "Could not read the form."
	}
	form := templates.TrainerForm{
		Name:           strings.TrimSpace(r.FormValue("name")),
		Specialization: strings.TrimSpace(r.FormValue("specialization")),
		BioShort:       strings.TrimSpace(r.FormValue("bio_short")),
		BioFull:        r.FormValue("bio_full"),
		ImageURL:       strings.TrimSpace(r.FormValue("image_url")),
		DisplayOrder:   strings.TrimSpace(r.FormValue("display_order")),
		IsActive:       r.FormValue("is_active") != "",
	}

	displayOrder := 0
	if form.DisplayOrder != "" {
		parsed, err := strconv.Atoi(form.DisplayOrder)
		if err != nil || parsed < 0 {
			return gym.Trainer{}, form, "Enter a valid display order."
		}
		displayOrder = parsed
	}

	trainer, err := gym.NormalizeTrainer(gym.Trainer{
		Name:           form.Name,
		Specialization: form.Specialization,
		BioShort:       form.BioShort,
		BioFull:        form.BioFull,
		ImageURL:       form.ImageURL,
		DisplayOrder:   displayOrder,
		IsActive:       form.IsActive,
	})
	switch {
	case errors.Is(err, gym.ErrEmptyTrainerName):
		return gym.Trainer{}, form, "Trainer name is required."
	case errors.Is(err, gym.ErrEmptyTrainerSpecialization):
		return gym.Trainer{}, form, "Specialization is required."
	case err != nil:
		return gym.Trainer{}, form, "Could not save the trainer."
	}
	return trainer, form, ""
}
