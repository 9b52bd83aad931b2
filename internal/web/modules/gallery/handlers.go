package gallery

import (
	"context"
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/publichandler"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

// ImageLister reads gallery images, newest first.
type ImageLister interface {
	ListGalleryImages(ctx context.Context, limit int) ([]gym.GalleryImage, error)
}

type handlers struct {
	publichandler.Base
	images ImageLister
}

func newHandlers(images ImageLister) handlers {
	return handlers{Base: publichandler.NewBase(), images: images}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	var listing []gym.GalleryImage
	if h.images != nil {
		listed, err := h.images.ListGalleryImages(httpx.RequestContext(r), 0)
		if err != nil {
			h.WriteError(w, r, err)
			return
		}
		listing = listed
	}
	h.WritePage(w, r, webi18n.T(loc, "title.gallery"), http.StatusOK, webtemplates.GalleryFragment(webtemplates.GalleryView{
		Heading: webi18n.T(loc, "title.gallery"),
		Images:  listing,
	}))
}
