package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
)

// AdmissionsView models the admission listing page with its filters.
type AdmissionsView struct {
	Rows   []AdmissionRow
	Query  string
	PlanID string
	Plans  []gym.Plan
}

// AdmissionsPage renders the searchable admission listing.
func AdmissionsPage(view AdmissionsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>Admissions</h1><form class="filter-form" method="get" action="%s">`+
				`<input name="q" placeholder="Search name, email or phone" value=%q>`+
				`<select name="plan"><option value="">All plans</option>`,
			routepath.Admissions,
			templ.EscapeString(view.Query),
		); err != nil {
			return err
		}
		for _, plan := range view.Plans {
			selected := ""
			if fmt.Sprintf("%d", plan.ID) == view.PlanID {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w,
				`<option value="%d"%s>%s</option>`,
				plan.ID,
				selected,
				templ.EscapeString(plan.Name),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select><button type="submit">Filter</button></form>`); err != nil {
			return err
		}
		return writeAdmissionTable(w, view.Rows)
	})
}

// AdmissionDetailView models a single admission's detail page.
type AdmissionDetailView struct {
	ID       int64
	Fields   []DetailField
	Payments []PaymentRow
}

// DetailField is one labeled value on a detail page.
type DetailField struct {
	Label string
	Value string
}

// AdmissionDetailPage renders one admission with its payment history.
func AdmissionDetailPage(view AdmissionDetailView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Admission #%d</h1><dl class="detail">`, view.ID); err != nil {
			return err
		}
		for _, field := range view.Fields {
			if _, err := fmt.Fprintf(w,
				`<dt>%s</dt><dd>%s</dd>`,
				templ.EscapeString(field.Label),
				templ.EscapeString(field.Value),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</dl><h2>Payments</h2>`); err != nil {
			return err
		}
		return writePaymentTable(w, view.Payments)
	})
}
