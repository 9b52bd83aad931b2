package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/admin/templates"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
)

func (h *Handler) handlePlansPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	plans, err := h.store.ListPlans(r.Context())
	if err != nil {
		h.storeError(w, "list plans", err)
		return
	}
	h.renderPage(w, r, "Plans", routepath.Plans, http.StatusOK, templates.PlansPage(templates.PlansView{
		Plans:   plans,
		Message: strings.TrimSpace(r.URL.Query().Get("message")),
	}))
}

func (h *Handler) handlePlanCreate(w http.ResponseWriter, r *http.Request) {
	view := templates.PlanFormView{
		Heading: "New plan",
		Action:  routepath.PlansCreate,
		Form:    templates.PlanForm{DurationDays: "30"},
	}

	switch r.Method {
	case http.MethodGet:
		h.renderPage(w, r, view.Heading, routepath.Plans, http.StatusOK, templates.PlanFormPage(view))
		return
	case http.MethodPost:
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	plan, form, errMsg := h.parsePlanForm(r)
	if errMsg != "" {
		view.Form = form
		view.Error = errMsg
		h.renderPage(w, r, view.Heading, routepath.Plans, http.StatusBadRequest, templates.PlanFormPage(view))
		return
	}

	plan.Slug = gym.ResolveSlug(plan.Name, func(slug string) bool {
		taken, err := h.store.PlanSlugTaken(r.Context(), slug)
		return err == nil && taken
	})

	if _, err := h.store.CreatePlan(r.Context(), plan); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			view.Form = form
			view.Error = "A plan with that name already exists."
			h.renderPage(w, r, view.Heading, routepath.Plans, http.StatusConflict, templates.PlanFormPage(view))
			return
		}
		h.storeError(w, "create plan", err)
		return
	}
	redirectWithMessage(w, r, routepath.Plans, "Plan created.")
}

func (h *Handler) handlePlanRoutes(w http.ResponseWriter, r *http.Request) {
	id, action, ok := resourceAction(r.URL.Path, routepath.PlansPrefix)
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch action {
	case "edit":
		h.handlePlanEdit(w, r, id)
	case "delete":
		h.handlePlanDelete(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handlePlanEdit(w http.ResponseWriter, r *http.Request, id int64) {
	existing, err := h.store.GetPlan(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.storeError(w, "get plan", err)
		return
	}

	view := templates.PlanFormView{
		Heading: "Edit plan",
		Action:  routepath.PlanEdit(id),
		Form: templates.PlanForm{
			Name:         existing.Name,
			PriceMonth:   existing.PriceMonth.StringFixed(2),
			PriceAnnual:  existing.PriceAnnual.StringFixed(2),
			DurationDays: strconv.Itoa(existing.DurationDays),
			Perks:        existing.Perks,
			IsPopular:    existing.IsPopular,
		},
	}

	switch r.Method {
	case http.MethodGet:
		h.renderPage(w, r, view.Heading, routepath.Plans, http.StatusOK, templates.PlanFormPage(view))
		return
	case http.MethodPost:
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	plan, form, errMsg := h.parsePlanForm(r)
	if errMsg != "" {
		view.Form = form
		view.Error = errMsg
		h.renderPage(w, r, view.Heading, routepath.Plans, http.StatusBadRequest, templates.PlanFormPage(view))
		return
	}

	plan.ID = id
	plan.Slug = existing.Slug
	if err := h.store.UpdatePlan(r.Context(), plan); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			view.Form = form
			view.Error = "A plan with that name already exists."
			h.renderPage(w, r, view.Heading, routepath.Plans, http.StatusConflict, templates.PlanFormPage(view))
			return
		}
		h.storeError(w, "update plan", err)
		return
	}
	redirectWithMessage(w, r, routepath.Plans, "Plan updated.")
}

func (h *Handler) handlePlanDelete(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if err := h.store.DeletePlan(r.Context(), id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.storeError(w, "delete plan", err)
		return
	}
	redirectWithMessage(w, r, routepath.Plans, "Plan deleted.")
}

// parsePlanForm validates the plan form and returns the normalized plan or
// an operator-facing error message.
func (h *Handler) parsePlanForm(r *http.Request) (gym.Plan, templates.PlanForm, string) {
	if err := r.ParseForm(); err != nil {
		return gym.Plan{}, templates.PlanForm{}, "Could not read the form."
	}
	form := templates.PlanForm{
		Name:         strings.TrimSpace(r.FormValue("name")),
		PriceMonth:   strings.TrimSpace(r.FormValue("price_month")),
		PriceAnnual:  strings.TrimSpace(r.FormValue("price_annual")),
		DurationDays: strings.TrimSpace(r.FormValue("duration_days")),
		Perks:        r.FormValue("perks"),
		IsPopular:    r.FormValue("is_popular") != "",
	}

	priceMonth, err := decimal.NewFromString(form.PriceMonth)
	if err != nil || priceMonth.Sign() < 0 {
		return gym.Plan{}, form, "Enter a valid monthly price."
	}
	priceAnnual, err := decimal.NewFromString(form.PriceAnnual)
	if err != nil || priceAnnual.Sign() < 0 {
		return gym.Plan{}, form, "Enter a valid annual price."
	}
	durationDays := 30
	if form.DurationDays != "" {
		durationDays, err = strconv.Atoi(form.DurationDays)
		if err != nil || durationDays <= 0 {
			return gym.Plan{}, form, "Enter a valid billing period in days."
		}
	}

	plan, err := gym.NormalizePlan(gym.Plan{
		Name:         form.Name,
		PriceMonth:   priceMonth,
		PriceAnnual:  priceAnnual,
		DurationDays: durationDays,
		Perks:        form.Perks,
		IsPopular:    form.IsPopular,
	})
	if err != nil {
		return gym.Plan{}, form, "Plan name is required."
	}
	return plan, form, ""
}
