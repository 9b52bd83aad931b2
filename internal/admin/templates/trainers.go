package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
)

// TrainersView models the trainer listing page.
type TrainersView struct {
	Trainers []gym.Trainer
	Message  string
}

// TrainersPage renders the trainer roster with edit and delete actions.
func TrainersPage(view TrainersView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>Trainers</h1><a class="action" href="%s">New trainer</a>`,
			routepath.TrainersCreate,
		); err != nil {
			return err
		}
		if err := writeMessage(w, view.Message); err != nil {
			return err
		}
		if len(view.Trainers) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No trainers yet.</p>`)
			return err
		}
		if _, err := io.WriteString(w,
			`<table class="listing"><thead><tr><th>Name</th><th>Specialization</th><th>Order</th><th>Active</th><th></th></tr></thead><tbody>`,
		); err != nil {
			return err
		}
		for _, trainer := range view.Trainers {
			active := ""
			if trainer.IsActive {
				active = "yes"
			}
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td>`+
					`<td><a href="%s">Edit</a> <form class="inline" method="post" action="%s"><button type="submit">Delete</button></form></td></tr>`,
				templ.EscapeString(trainer.Name),
				templ.EscapeString(trainer.Specialization),
				trainer.DisplayOrder,
				active,
				routepath.TrainerEdit(trainer.ID),
				routepath.TrainerDelete(trainer.ID),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// TrainerForm carries raw trainer form input for rendering.
type TrainerForm struct {
	Name           string
	Specialization string
	BioShort       string
	BioFull        string
	ImageURL       string
	DisplayOrder   string
	IsActive       bool
}

// TrainerFormView models the trainer create and edit pages.
type TrainerFormView struct {
	Heading string
	Action  string
	Form    TrainerForm
	Error   string
}

// TrainerFormPage renders the trainer create or edit form.
func TrainerFormPage(view TrainerFormView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>%s</h1><form class="edit-form" id="trainer-form" method="post" action="%s">`,
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
		if err := writeFormInput(w, "specialization", "Specialization", view.Form.Specialization); err != nil {
			return err
		}
		if err := writeFormInput(w, "bio_short", "Short bio", view.Form.BioShort); err != nil {
			return err
		}
		if err := writeFormTextArea(w, "bio_full", "Full bio", view.Form.BioFull); err != nil {
			return err
		}
		if err := writeFormInput(w, "image_url", "Image URL", view.Form.ImageURL); err != nil {
			return err
		}
		if err := writeFormInput(w, "display_order", "Display order", view.Form.DisplayOrder); err != nil {
			return err
		}
		checked := ""
		if view.Form.IsActive {
			checked = " checked"
		}
		_, err := fmt.Fprintf(w,
			`<label class="check"><input type="checkbox" name="is_active" value="on"%s> Show on the public site</label>`+
				`<button type="submit">Save trainer</button></form>`,
			checked,
		)
		return err
	})
}
