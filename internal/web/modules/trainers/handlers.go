package trainers

import (
	"context"
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/publichandler"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

// TrainerLister reads trainers in display order.
type TrainerLister interface {
	ListTrainers(ctx context.Context, activeOnly bool) ([]gym.Trainer, error)
}

type handlers struct {
	publichandler.Base
	trainers TrainerLister
}

func newHandlers(trainers TrainerLister) handlers {
	return handlers{Base: publichandler.NewBase(), trainers: trainers}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	var roster []gym.Trainer
	if h.trainers != nil {
		listed, err := h.trainers.ListTrainers(httpx.RequestContext(r), true)
		if err != nil {
			h.WriteError(w, r, err)
			return
		}
		roster = listed
	}
	h.WritePage(w, r, webi18n.T(loc, "title.trainers"), http.StatusOK, webtemplates.TrainersFragment(webtemplates.TrainersView{
		Heading:  webi18n.T(loc, "title.trainers"),
		Trainers: roster,
	}))
}
