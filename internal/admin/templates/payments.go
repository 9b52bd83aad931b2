package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
)

// PaymentRow is one payment attempt in a listing table.
type PaymentRow struct {
	ID            int64
	AdmissionID   int64
	Applicant     string
	Amount        string
	TransactionID string
	Reference     string
	Status        string
	Mode          string
	CreatedAt     string
}

// PaymentsView models the payment listing page with its status filter.
type PaymentsView struct {
	Rows   []PaymentRow
	Status string
}

// paymentStatusFilters lists the statuses offered by the filter dropdown.
var paymentStatusFilters = []string{"pending", "success", "failed"}

// PaymentsPage renders the filterable payment listing.
func PaymentsPage(view PaymentsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>Payments</h1><form class="filter-form" method="get" action="%s">`+
				`<select name="status"><option value="">All statuses</option>`,
			routepath.Payments,
		); err != nil {
			return err
		}
		for _, status := range paymentStatusFilters {
			selected := ""
			if status == view.Status {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value=%q%s>%s</option>`, status, selected, status); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select><button type="submit">Filter</button></form>`); err != nil {
			return err
		}
		return writePaymentTable(w, view.Rows)
	})
}

func writePaymentTable(w io.Writer, rows []PaymentRow) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, `<p class="empty">No payments yet.</p>`)
		return err
	}
	if _, err := io.WriteString(w,
		`<table class="listing"><thead><tr><th>Applicant</th><th>Amount</th><th>Transaction</th><th>Reference</th><th>Status</th><th>Mode</th><th>Created</th></tr></thead><tbody>`,
	); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w,
			`<tr><td><a href="%s">%s</a></td><td>&#8377;%s</td><td>%s</td><td>%s</td><td class="status-%s">%s</td><td>%s</td><td>%s</td></tr>`,
			routepath.AdmissionPage(row.AdmissionID),
			templ.EscapeString(row.Applicant),
			templ.EscapeString(row.Amount),
			templ.EscapeString(row.TransactionID),
			templ.EscapeString(row.Reference),
			templ.EscapeString(row.Status),
			templ.EscapeString(row.Status),
			templ.EscapeString(row.Mode),
			templ.EscapeString(row.CreatedAt),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}
