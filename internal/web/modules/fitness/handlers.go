package fitness

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/publichandler"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

type handlers struct {
	publichandler.Base
}

func newHandlers() handlers {
	return handlers{Base: publichandler.NewBase()}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.WritePage(w, r, webi18n.T(loc, "title.bmi_bmr"), http.StatusOK, webtemplates.FitnessFragment(webtemplates.FitnessView{
		Heading: webi18n.T(loc, "title.bmi_bmr"),
		Gender:  gym.GenderMale,
	}))
}

func (h handlers) handleCompute(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	view := webtemplates.FitnessView{
		Heading:  webi18n.T(loc, "title.bmi_bmr"),
		Gender:   strings.TrimSpace(r.FormValue("gender")),
		Age:      strings.TrimSpace(r.FormValue("age")),
		HeightCm: strings.TrimSpace(r.FormValue("height_cm")),
		WeightKg: strings.TrimSpace(r.FormValue("weight_kg")),
	}

	age, ageErr := strconv.Atoi(view.Age)
	height, heightErr := strconv.ParseFloat(view.HeightCm, 64)
	weight, weightErr := strconv.ParseFloat(view.WeightKg, 64)
	if ageErr != nil || heightErr != nil || weightErr != nil {
		view.Error = "Enter your age, height, and weight as numbers."
		h.WritePage(w, r, view.Heading, http.StatusBadRequest, webtemplates.FitnessFragment(view))
		return
	}

	metrics, err := gym.ComputeBodyMetrics(view.Gender, age, height, weight)
	if err != nil {
		view.Error = "Measurements must be positive values."
		h.WritePage(w, r, view.Heading, http.StatusBadRequest, webtemplates.FitnessFragment(view))
		return
	}
	view.Result = &metrics
	h.WritePage(w, r, view.Heading, http.StatusOK, webtemplates.FitnessFragment(view))
}
