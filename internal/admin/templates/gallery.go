package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/yuvrajprajapati/gymshim/internal/admin/routepath"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
)

// GalleryView models the gallery management page.
type GalleryView struct {
	Images  []gym.GalleryImage
	Message string
}

// GalleryPage renders the upload form and uploaded images.
func GalleryPage(view GalleryView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1>Gallery</h1>`+
				`<form class="upload-form" id="gallery-upload" method="post" action="%s" enctype="multipart/form-data">`+
				`<label for="title">Title</label><input id="title" name="title">`+
				`<label for="image">Image</label><input id="image" name="image" type="file" accept="image/*">`+
				`<button type="submit">Upload</button></form>`,
			routepath.GalleryUpload,
		); err != nil {
			return err
		}
		if err := writeMessage(w, view.Message); err != nil {
			return err
		}
		if len(view.Images) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No images yet.</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<ul class="gallery-admin">`); err != nil {
			return err
		}
		for _, img := range view.Images {
			if _, err := fmt.Fprintf(w,
				`<li><span class="path">%s</span> <span class="title">%s</span>`+
					`<form class="inline" method="post" action="%s"><button type="submit">Delete</button></form></li>`,
				templ.EscapeString(img.ImagePath),
				templ.EscapeString(img.DisplayTitle()),
				routepath.GalleryDelete(img.ID),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}
