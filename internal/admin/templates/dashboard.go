package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
)

// StatsView holds formatted aggregate counters for the dashboard.
type StatsView struct {
	Plans           string
	Trainers        string
	GalleryImages   string
	Admissions      string
	Payments        string
	PendingPayments string
	Revenue         string
}

// AdmissionRow is one admission in a dashboard or listing table.
type AdmissionRow struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Plan      string
	StartDate string
	Amount    string
}

// DashboardView models the landing page of the back office.
type DashboardView struct {
	Stats  StatsView
	Recent []AdmissionRow
}

// DashboardPage renders counters and the most recent admissions.
func DashboardPage(view DashboardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Dashboard</h1><section class="stat-grid" id="stats">`); err != nil {
			return err
		}
		cards := []struct{ label, value string }{
			{"Plans", view.Stats.Plans},
			{"Trainers", view.Stats.Trainers},
			{"Gallery images", view.Stats.GalleryImages},
			{"Admissions", view.Stats.Admissions},
			{"Payments", view.Stats.Payments},
			{"Pending payments", view.Stats.PendingPayments},
			{"Revenue", "₹" + view.Stats.Revenue},
		}
		for _, card := range cards {
			if _, err := fmt.Fprintf(w,
				`<div class="stat-card"><span class="value">%s</span><span class="label">%s</span></div>`,
				templ.EscapeString(card.value),
				templ.EscapeString(card.label),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</section><h2>Recent admissions</h2>`); err != nil {
			return err
		}
		return writeAdmissionTable(w, view.Recent)
	})
}

func writeAdmissionTable(w io.Writer, rows []AdmissionRow) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, `<p class="empty">No admissions yet.</p>`)
		return err
	}
	if _, err := io.WriteString(w,
		`<table class="listing"><thead><tr><th>Name</th><th>Email</th><th>Phone</th><th>Plan</th><th>Start</th><th>Amount</th></tr></thead><tbody>`,
	); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w,
			`<tr><td><a href="%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>&#8377;%s</td></tr>`,
			routepath.AdmissionPage(row.ID),
			templ.EscapeString(row.Name),
			templ.EscapeString(row.Email),
			templ.EscapeString(row.Phone),
			templ.EscapeString(row.Plan),
			templ.EscapeString(row.StartDate),
			templ.EscapeString(row.Amount),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}
