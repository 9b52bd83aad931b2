package admin

import (
	"net/http"
	"strings"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/admin/templates"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
)

func (h *Handler) handlePaymentsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	filter := storage.PaymentFilter{}
	switch gym.PaymentStatus(status) {
	case gym.PaymentPending, gym.PaymentSuccess, gym.PaymentFailed:
		filter.Status = gym.PaymentStatus(status)
	default:
		status = ""
	}

	payments, err := h.store.ListPayments(r.Context(), filter)
	if err != nil {
		h.storeError(w, "list payments", err)
		return
	}

	applicants := make(map[int64]string)
	for _, payment := range payments {
		if _, ok := applicants[payment.AdmissionID]; ok {
			continue
		}
		admission, err := h.store.GetAdmission(r.Context(), payment.AdmissionID)
		if err != nil {
			applicants[payment.AdmissionID] = "-"
			continue
		}
		applicants[payment.AdmissionID] = admission.FullName()
	}

	h.renderPage(w, r, "Payments", routepath.Payments, http.StatusOK, templates.PaymentsPage(templates.PaymentsView{
		Rows:   paymentRows(payments, applicants),
		Status: status,
	}))
}

func paymentRows(payments []gym.Payment, applicants map[int64]string) []templates.PaymentRow {
	rows := make([]templates.PaymentRow, 0, len(payments))
	for _, payment := range payments {
		applicant := applicants[payment.AdmissionID]
		if applicant == "" {
			applicant = "-"
		}
		reference := payment.UPIReference
		if reference == "" {
			reference = "-"
		}
		rows = append(rows, templates.PaymentRow{
			ID:            payment.ID,
			AdmissionID:   payment.AdmissionID,
			Applicant:     applicant,
			Amount:        payment.Amount.StringFixed(2),
			TransactionID: payment.TransactionID,
			Reference:     reference,
			Status:        string(payment.Status),
			Mode:          string(payment.Mode),
			CreatedAt:     payment.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}
