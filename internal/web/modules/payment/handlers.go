package payment

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
	"github.com/yuvrajprajapati/gymshim/internal/upi"
	webi18n "github.com/yuvrajprajapati/gymshim/internal/web/i18n"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/flash"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/httpx"
	"github.com/yuvrajprajapati/gymshim/internal/web/platform/publichandler"
	"github.com/yuvrajprajapati/gymshim/internal/web/routepath"
	webtemplates "github.com/yuvrajprajapati/gymshim/internal/web/templates"
)

// Ledger reads admissions and tracks their payment attempts.
type Ledger interface {
	GetAdmission(ctx context.Context, id int64) (gym.Admission, error)
	GetPlan(ctx context.Context, id int64) (gym.Plan, error)
	CreatePayment(ctx context.Context, payment gym.Payment) (int64, error)
	GetPayment(ctx context.Context, id int64) (gym.Payment, error)
	UpdatePayment(ctx context.Context, payment gym.Payment) error
}

type handlers struct {
	publichandler.Base
	ledger Ledger
	payee  upi.Payee
	now    func() time.Time
}

func newHandlers(ledger Ledger, payee upi.Payee, now func() time.Time) handlers {
	if now == nil {
		now = time.Now
	}
	return handlers{Base: publichandler.NewBase(), ledger: ledger, payee: payee, now: now}
}

func (h handlers) handleSummary(w http.ResponseWriter, r *http.Request) {
	admissionID, ok := parseID(r, "admissionID")
	if !ok {
		h.WriteNotFound(w, r)
		return
	}

	admission, plan, ok := h.resolveOrder(w, r, admissionID)
	if !ok {
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.WritePage(w, r, webi18n.T(loc, "title.payment"), http.StatusOK, webtemplates.PaymentSummaryFragment(webtemplates.PaymentSummaryView{
		Heading:       webi18n.T(loc, "title.payment"),
		ApplicantName: admission.FullName(),
		PlanName:      plan.Name,
		Months:        admission.DurationMonths,
		Amount:        admission.TotalAmount,
		AdmissionID:   admission.ID,
	}))
}

func (h handlers) handleInitiate(w http.ResponseWriter, r *http.Request) {
	admissionID, ok := parseID(r, "admissionID")
	if !ok {
		h.WriteNotFound(w, r)
		return
	}

	admission, _, ok := h.resolveOrder(w, r, admissionID)
	if !ok {
		return
	}

	payment, err := gym.NewUPIPayment(admission.ID, admission.TotalAmount, h.now())
	if err != nil {
		flash.Write(w, r, flash.NoticeError("flash.payment_invalid_plan"))
		httpx.WriteRedirect(w, r, routepath.Admission)
		return
	}

	ctx := httpx.RequestContext(r)
	paymentID, err := h.ledger.CreatePayment(ctx, payment)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	payment.ID = paymentID

	note := "Admission-" + strconv.FormatInt(admission.ID, 10)
	link, err := upi.PayLink(h.payee, payment.Amount, note, payment.TransactionID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	if isMobile(r.UserAgent()) {
		httpx.WriteRedirect(w, r, link)
		return
	}

	png, err := upi.QRPNG(link)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.WritePage(w, r, webi18n.T(loc, "title.payment_qr"), http.StatusOK, webtemplates.PaymentQRFragment(webtemplates.PaymentQRView{
		Heading:   webi18n.T(loc, "title.payment_qr"),
		Amount:    payment.Amount,
		PayLink:   link,
		QRBase64:  base64.StdEncoding.EncodeToString(png),
		PaymentID: payment.ID,
	}))
}

func (h handlers) handleInitiateGet(w http.ResponseWriter, r *http.Request) {
	admissionID, ok := parseID(r, "admissionID")
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	httpx.WriteRedirect(w, r, routepath.PaymentPage(admissionID))
}

// Confirmation is a form submission; browsing to it goes back home.
func (h handlers) handleConfirmGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) handleConfirm(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := parseID(r, "paymentID")
	if !ok {
		h.WriteNotFound(w, r)
		return
	}

	ctx := httpx.RequestContext(r)
	payment, err := h.ledger.GetPayment(ctx, paymentID)
	if errors.Is(err, storage.ErrNotFound) {
		h.WriteNotFound(w, r)
		return
	}
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	switch err := payment.Confirm(r.FormValue("upi_reference")); {
	case errors.Is(err, gym.ErrPaymentNotPending):
		flash.Write(w, r, flash.NoticeInfo("flash.payment_not_pending"))
		httpx.WriteRedirect(w, r, routepath.PaymentSuccess)
		return
	case errors.Is(err, gym.ErrInvalidReference):
		flash.Write(w, r, flash.NoticeError("flash.payment_invalid_reference"))
		httpx.WriteRedirect(w, r, routepath.PaymentPage(payment.AdmissionID))
		return
	case err != nil:
		h.WriteError(w, r, err)
		return
	}

	if err := h.ledger.UpdatePayment(ctx, payment); err != nil {
		h.WriteError(w, r, err)
		return
	}

	flash.Write(w, r, flash.NoticeSuccess("flash.payment_confirmed"))
	httpx.WriteRedirect(w, r, routepath.PaymentSuccess)
}

func (h handlers) handleSuccess(w http.ResponseWriter, r *http.Request) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	h.WritePage(w, r, webi18n.T(loc, "title.payment_success"), http.StatusOK, webtemplates.PaymentSuccessFragment(webtemplates.PaymentSuccessView{
		Heading: webi18n.T(loc, "title.payment_success"),
		Message: "Your membership is active. See you on the floor!",
	}))
}

func (h handlers) handleFallback(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

// resolveOrder loads the admission and its plan, redirecting back to the
// admission form when either is missing or the amount owed is not payable.
func (h handlers) resolveOrder(w http.ResponseWriter, r *http.Request, admissionID int64) (gym.Admission, gym.Plan, bool) {
	ctx := httpx.RequestContext(r)

	admission, err := h.ledger.GetAdmission(ctx, admissionID)
	if errors.Is(err, storage.ErrNotFound) {
		flash.Write(w, r, flash.NoticeError("flash.payment_missing_admission"))
		httpx.WriteRedirect(w, r, routepath.Admission)
		return gym.Admission{}, gym.Plan{}, false
	}
	if err != nil {
		h.WriteError(w, r, err)
		return gym.Admission{}, gym.Plan{}, false
	}

	if admission.PlanID == 0 || admission.TotalAmount.Sign() <= 0 {
		flash.Write(w, r, flash.NoticeError("flash.payment_invalid_plan"))
		httpx.WriteRedirect(w, r, routepath.Admission)
		return gym.Admission{}, gym.Plan{}, false
	}

	plan, err := h.ledger.GetPlan(ctx, admission.PlanID)
	if errors.Is(err, storage.ErrNotFound) {
		flash.Write(w, r, flash.NoticeError("flash.payment_invalid_plan"))
		httpx.WriteRedirect(w, r, routepath.Admission)
		return gym.Admission{}, gym.Plan{}, false
	}
	if err != nil {
		h.WriteError(w, r, err)
		return gym.Admission{}, gym.Plan{}, false
	}
	return admission, plan, true
}

func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isMobile(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, marker := range []string{"mobi", "android", "iphone"} {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}
