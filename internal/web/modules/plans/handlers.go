package plans

import (
	"context"
	"net/http"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/publichandler"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

// PlanLister reads membership plans in catalog order.
type PlanLister interface {
	ListPlans(ctx context.Context) ([]gym.Plan, error)
}

type handlers struct {
	publichandler.Base
	plans PlanLister
}

func newHandlers(plans PlanLister) handlers {
	return handlers{Base: publichandler.NewBase(), plans: plans}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	var catalog []gym.Plan
	if h.plans != nil {
		listed, err := h.plans.ListPlans(httpx.RequestContext(r))
		if err != nil {
			h.WriteError(w, r, err)
			return
		}
		catalog = listed
	}
	h.WritePage(w, r, webi18n.T(loc, "title.plans"), http.StatusOK, webtemplates.PlansFragment(webtemplates.PlansView{
		Heading: webi18n.T(loc, "title.plans"),
		JoinCTA: webi18n.T(loc, "layout.nav_join"),
		Plans:   catalog,
	}))
}
