package admission

import (
	"context"
	"errors"
	"image"
	"io"
	"net/http"
	"strconv"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/flash"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/publichandler"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

// maxFormMemory bounds in-memory multipart parsing; larger photo parts
// spill to temp files.
const maxFormMemory = 8 << 20

// Directory reads plans and records signed admissions.
type Directory interface {
	ListPlans(ctx context.Context) ([]gym.Plan, error)
	GetPlan(ctx context.Context, id int64) (gym.Plan, error)
	GetPlanBySlug(ctx context.Context, slug string) (gym.Plan, error)
	CreateAdmission(ctx context.Context, admission gym.Admission) (int64, error)
}

// PhotoStore persists applicant photos on disk.
type PhotoStore interface {
	SaveAdmissionPhoto(filename string, content io.Reader, now time.Time) (string, error)
}

type handlers struct {
	publichandler.Base
	dir    Directory
	photos PhotoStore
	now    func() time.Time
}

func newHandlers(dir Directory, photos PhotoStore, now func() time.Time) handlers {
	if now == nil {
		now = time.Now
	}
	return handlers{Base: publichandler.NewBase(), dir: dir, photos: photos, now: now}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	plans, err := h.dir.ListPlans(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	form := gym.AdmissionForm{}
	if slug := r.URL.Query().Get("plan"); slug != "" {
		if plan, err := h.dir.GetPlanBySlug(ctx, slug); err == nil {
			form.PlanID = strconv.FormatInt(plan.ID, 10)
		}
	}

	h.writeForm(w, r, http.StatusOK, form, nil, plans)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := gym.AdmissionForm{
		FirstName:             r.FormValue("first_name"),
		LastName:              r.FormValue("last_name"),
		Email:                 r.FormValue("email"),
		Phone:                 r.FormValue("phone"),
		Gender:                r.FormValue("gender"),
		DateOfBirth:           r.FormValue("date_of_birth"),
		Address:               r.FormValue("address"),
		PlanID:                r.FormValue("plan"),
		StartDate:             r.FormValue("start_date"),
		DurationMonths:        r.FormValue("duration_months"),
		EmergencyContactName:  r.FormValue("emergency_contact_name"),
		EmergencyContactPhone: r.FormValue("emergency_contact_phone"),
		FitnessGoals:          r.FormValue("fitness_goals"),
		MedicalConditions:     r.FormValue("medical_conditions"),
		UPIID:                 r.FormValue("upi_id"),
		AgreedTerms:           r.FormValue("agreed_terms") != "",
	}

	now := h.now().UTC()
	admission, errs := gym.ValidateAdmissionForm(form, now)
	if len(errs) > 0 {
		h.rerender(w, r, form, errs)
		return
	}

	ctx := httpx.RequestContext(r)
	plan, err := h.dir.GetPlan(ctx, admission.PlanID)
	if errors.Is(err, storage.ErrNotFound) {
		h.rerender(w, r, form, gym.FieldErrors{"plan": "Choose your membership plan."})
		return
	}
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	admission.TotalAmount = gym.AdmissionTotal(plan.PriceMonth, admission.DurationMonths)

	photoPath, fieldErr, err := h.savePhoto(r, now)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if fieldErr != nil {
		h.rerender(w, r, form, gym.FieldErrors{fieldErr.Field: fieldErr.Message})
		return
	}
	admission.PhotoPath = photoPath

	id, err := h.dir.CreateAdmission(ctx, admission)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	flash.Write(w, r, flash.NoticeSuccess("flash.admission_created"))
	httpx.WriteRedirect(w, r, routepath.PaymentPage(id))
}

// savePhoto validates and stores the optional applicant photo. A nil
// *gym.FieldError with an empty path means no photo was uploaded.
func (h handlers) savePhoto(r *http.Request, now time.Time) (string, *gym.FieldError, error) {
	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil, nil
	}
	if err != nil {
		return "", &gym.FieldError{Field: "photo", Message: "Could not read the uploaded photo."}, nil
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return "", &gym.FieldError{Field: "photo", Message: "Only image files are allowed."}, nil
	}
	if err := gym.ValidatePhoto(header.Size, header.Header.Get("Content-Type"), cfg.Width, cfg.Height); err != nil {
		var fieldErr gym.FieldError
		if errors.As(err, &fieldErr) {
			return "", &fieldErr, nil
		}
		return "", nil, err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", nil, err
	}
	if h.photos == nil {
		return "", nil, nil
	}
	path, err := h.photos.SaveAdmissionPhoto(header.Filename, file, now)
	if err != nil {
		return "", nil, err
	}
	return path, nil, nil
}

func (h handlers) rerender(w http.ResponseWriter, r *http.Request, form gym.AdmissionForm, errs gym.FieldErrors) {
	plans, err := h.dir.ListPlans(httpx.RequestContext(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writeForm(w, r, http.StatusBadRequest, form, errs, plans)
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, statusCode int, form gym.AdmissionForm, errs gym.FieldErrors, plans []gym.Plan) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.WritePage(w, r, webi18n.T(loc, "title.admission"), statusCode, webtemplates.AdmissionFragment(webtemplates.AdmissionView{
		Heading: webi18n.T(loc, "title.admission"),
		Form:    form,
		Errors:  errs,
		Plans:   plans,
	}))
}
