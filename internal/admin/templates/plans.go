package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
)

// PlansView models the plan listing page.
type PlansView struct {
	Plans   []gym.Plan
	Message string
}

// PlansPage renders the plan listing with edit and delete actions.
func PlansPage(view PlansView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>Membership plans</h1><a class="action" href="%s">New plan</a>`,
			routepath.PlansCreate,
		); err != nil {
			return err
		}
		if err := writeMessage(w, view.Message); err != nil {
			return err
		}
		if len(view.Plans) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No plans yet.</p>`)
			return err
		}
		if _, err := io.WriteString(w,
			`<table class="listing"><thead><tr><th>Name</th><th>Slug</th><th>Monthly</th><th>Annual</th><th>Popular</th><th></th></tr></thead><tbody>`,
		); err != nil {
			return err
		}
		for _, plan := range view.Plans {
			popular := ""
			if plan.IsPopular {
				popular = "yes"
			}
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>&#8377;%s</td><td>&#8377;%s</td><td>%s</td>`+
					`<td><a href="%s">Edit</a> <form class="inline" method="post" action="%s"><button type="submit">Delete</button></form></td></tr>`,
				templ.EscapeString(plan.Name),
				templ.EscapeString(plan.Slug),
				templ.EscapeString(plan.PriceMonth.StringFixed(2)),
				templ.EscapeString(plan.PriceAnnual.StringFixed(2)),
				popular,
				routepath.PlanEdit(plan.ID),
				routepath.PlanDelete(plan.ID),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// PlanForm carries raw plan form input for rendering.
type PlanForm struct {
	Name         string
	PriceMonth   string
	PriceAnnual  string
	DurationDays string
	Perks        string
	IsPopular    bool
}

// PlanFormView models the plan create and edit pages.
type PlanFormView struct {
	Heading string
	Action  string
	Form    PlanForm
	Error   string
}

// PlanFormPage renders the plan create or edit form.
func PlanFormPage(view PlanFormView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><form class="edit-form" id="plan-form" method="post" action="%s">`,
			templ.EscapeString(view.Heading),
			view.Action,
		); err != nil {
			return err
		}
		if view.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="error">%s</p>`, templ.EscapeString(view.Error)); err != nil {
				return err
			}
		}
		if err := writeFormInput(w, "name", "Name", view.Form.Name); err != nil {
			return err
		}
		if err := writeFormInput(w, "price_month", "Monthly price", view.Form.PriceMonth); err != nil {
			return err
		}
		if err := writeFormInput(w, "price_annual", "Annual price", view.Form.PriceAnnual); err != nil {
			return err
		}
		if err := writeFormInput(w, "duration_days", "Billing period (days)", view.Form.DurationDays); err != nil {
			return err
		}
		if err := writeFormTextArea(w, "perks", "Perks", view.Form.Perks); err != nil {
			return err
		}
		checked := ""
		if view.Form.IsPopular {
			checked = " checked"
		}
		_, err := fmt.Fprintf(w,
			`<label class="check"><input type="checkbox" name="is_popular" value="on"%s> Highlight as most popular</label>`+
				`<button type="submit">Save plan</button></form>`,
			checked,
		)
		return err
	})
}
