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

func (h *Handler) handleAdmissionsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	planParam := strings.TrimSpace(r.URL.Query().Get("plan"))
	filter := storage.AdmissionFilter{Query: query}
	if planParam != "" {
		planID, err := strconv.ParseInt(planParam, 10, 64)
		if err != nil || planID <= 0 {
			planParam = ""
		} else {
			filter.PlanID = planID
		}
	}

	admissions, err := h.store.ListAdmissions(r.Context(), filter)
	if err != nil {
		h.storeError(w, "list admissions", err)
		return
	}
	plans, err := h.store.ListPlans(r.Context())
	if err != nil {
		h.storeError(w, "list plans", err)
		return
	}
	names := make(map[int64]string, len(plans))
	for _, plan := range plans {
		names[plan.ID] = plan.Name
	}

	h.renderPage(w, r, "Admissions", routepath.Admissions, http.StatusOK, templates.AdmissionsPage(templates.AdmissionsView{
		Rows:   admissionRows(admissions, names),
		Query:  query,
		PlanID: planParam,
		Plans:  plans,
	}))
}

func (h *Handler) handleAdmissionDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	id, action, ok := resourceAction(r.URL.Path, routepath.AdmissionsPrefix)
	if !ok || action != "" {
		http.NotFound(w, r)
		return
	}

	admission, err := h.store.GetAdmission(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.storeError(w, "get admission", err)
		return
	}

	planName := "-"
	if admission.PlanID != 0 {
		if plan, err := h.store.GetPlan(r.Context(), admission.PlanID); err == nil {
			planName = plan.Name
		}
	}

	payments, err := h.store.ListPayments(r.Context(), storage.PaymentFilter{AdmissionID: id})
	if err != nil {
		h.storeError(w, "list payments", err)
		return
	}

	view := templates.AdmissionDetailView{
		ID:       admission.ID,
		Fields:   admissionFields(admission, planName),
		Payments: paymentRows(payments, map[int64]string{admission.ID: admission.FullName()}),
	}
	h.renderPage(w, r, "Admission", routepath.Admissions, http.StatusOK, templates.AdmissionDetailPage(view))
}

func admissionFields(admission gym.Admission, planName string) []templates.DetailField {
	dob := "-"
	if !admission.DateOfBirth.IsZero() {
		dob = admission.DateOfBirth.Format("2006-01-02")
	}
	agreed := "no"
	if admission.AgreedTerms {
		agreed = "yes"
	}
	orDash := func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "-"
		}
		return value
	}
	return []templates.DetailField{
		{Label: "Name", Value: admission.FullName()},
		{Label: "Email", Value: admission.Email},
		{Label: "Phone", Value: admission.Phone},
		{Label: "Gender", Value: orDash(admission.Gender)},
		{Label: "Date of birth", Value: dob},
		{Label: "Address", Value: orDash(admission.Address)},
		{Label: "Plan", Value: planName},
		{Label: "Start date", Value: admission.StartDate.Format("2006-01-02")},
		{Label: "Duration", Value: strconv.Itoa(admission.DurationMonths) + " months"},
		{Label: "Emergency contact", Value: orDash(strings.TrimSpace(admission.EmergencyContactName + " " + admission.EmergencyContactPhone))},
		{Label: "Fitness goals", Value: orDash(admission.FitnessGoals)},
		{Label: "Medical conditions", Value: orDash(admission.MedicalConditions)},
		{Label: "Photo", Value: orDash(admission.PhotoPath)},
		{Label: "UPI ID", Value: orDash(admission.UPIID)},
		{Label: "Agreed to terms", Value: agreed},
		{Label: "Total amount", Value: "₹" + admission.TotalAmount.StringFixed(2)},
		{Label: "Submitted", Value: admission.CreatedAt.Format("2006-01-02 15:04")},
	}
}
