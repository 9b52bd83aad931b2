package admin

import (
	"net/http"
	"strconv"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/admin/templates"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
)

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	stats, err := h.store.Stats(r.Context())
	if err != nil {
		h.storeError(w, "dashboard stats", err)
		return
	}
	recent, err := h.store.ListAdmissions(r.Context(), storage.AdmissionFilter{Limit: dashboardRecentLimit})
	if err != nil {
		h.storeError(w, "dashboard admissions", err)
		return
	}
	plans, err := h.planNames(r)
	if err != nil {
		h.storeError(w, "dashboard plans", err)
		return
	}

	view := templates.DashboardView{
		Stats: templates.StatsView{
			Plans:           strconv.Itoa(stats.Plans),
			Trainers:        strconv.Itoa(stats.Trainers),
			GalleryImages:   strconv.Itoa(stats.GalleryImages),
			Admissions:      strconv.Itoa(stats.Admissions),
			Payments:        strconv.Itoa(stats.Payments),
			PendingPayments: strconv.Itoa(stats.PendingPayments),
			Revenue:         stats.Revenue.StringFixed(2),
		},
		Recent: admissionRows(recent, plans),
	}
	h.renderPage(w, r, "Dashboard", routepath.Root, http.StatusOK, templates.DashboardPage(view))
}

// planNames maps plan IDs to names for listing tables.
func (h *Handler) planNames(r *http.Request) (map[int64]string, error) {
	plans, err := h.store.ListPlans(r.Context())
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(plans))
	for _, plan := range plans {
		names[plan.ID] = plan.Name
	}
	return names, nil
}

func admissionRows(admissions []gym.Admission, planNames map[int64]string) []templates.AdmissionRow {
	rows := make([]templates.AdmissionRow, 0, len(admissions))
	for _, admission := range admissions {
		plan := planNames[admission.PlanID]
		if plan == "" {
			plan = "-"
		}
		rows = append(rows, templates.AdmissionRow{
			ID:        admission.ID,
			Name:      admission.FullName(),
			Email:     admission.Email,
			Phone:     admission.Phone,
			Plan:      plan,
			StartDate: admission.StartDate.Format("2006-01-02"),
			Amount:    admission.TotalAmount.StringFixed(2),
		})
	}
	return rows
}
