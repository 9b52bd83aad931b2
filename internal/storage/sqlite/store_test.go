package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenAppliesConnectionPragmas(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)

	var foreignKeys int
	if err := store.sqlDB.QueryRow(`PRAGMA foreign_keys`).Scan(&foreignKeys); err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if foreignKeys != 1 {
		t.Fatalf("foreign_keys = %d, want 1", foreignKeys)
	}

	var journalMode string
	if err := store.sqlDB.QueryRow(`PRAGMA journal_mode`).Scan(&journalMode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", journalMode)
	}
}

func TestCreateGetPlanRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := gym.Plan{
		Name:         "Premium",
		PriceMonth:   decimal.RequireFromString("1999"),
		PriceAnnual:  decimal.RequireFromString("19180"),
		DurationDays: 30,
		Perks:        "All equipment, group classes",
		Slug:         "premium",
		IsPopular:    true,
	}
	id, err := store.CreatePlan(context.Background(), input)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if id <= 0 {
		t.Fatalf("plan id = %d, want positive", id)
	}

	got, err := store.GetPlan(context.Background(), id)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if got.Name != input.Name {
		t.Fatalf("name = %q, want %q", got.Name, input.Name)
	}
	if !got.PriceMonth.Equal(input.PriceMonth) {
		t.Fatalf("price_month = %s, want %s", got.PriceMonth, input.PriceMonth)
	}
	if !got.IsPopular {
		t.Fatal("is_popular not persisted")
	}

	bySlug, err := store.GetPlanBySlug(context.Background(), "premium")
	if err != nil {
		t.Fatalf("get plan by slug: %v", err)
	}
	if bySlug.ID != id {
		t.Fatalf("slug lookup id = %d, want %d", bySlug.ID, id)
	}
}

func TestCreatePlanReturnsAlreadyExistsOnDuplicateSlug(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := gym.Plan{
		Name:       "Basic",
		PriceMonth: decimal.NewFromInt(999),
		Slug:       "basic",
	}
	if _, err := store.CreatePlan(context.Background(), input); err != nil {
		t.Fatalf("create initial plan: %v", err)
	}
	input.Name = "Basic Copy"
	_, err := store.CreatePlan(context.Background(), input)
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestListPlansCatalogOrder(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	seedPlans := []gym.Plan{
		{Name: "Elite", PriceMonth: decimal.NewFromInt(2999), Slug: "elite"},
		{Name: "Basic", PriceMonth: decimal.NewFromInt(999), Slug: "basic"},
		{Name: "Premium", PriceMonth: decimal.NewFromInt(1999), Slug: "premium", IsPopular: true},
	}
	for _, plan := range seedPlans {
		if _, err := store.CreatePlan(context.Background(), plan); err != nil {
			t.Fatalf("create plan %q: %v", plan.Name, err)
		}
	}

	plans, err := store.ListPlans(context.Background())
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	var names []string
	for _, plan := range plans {
		names = append(names, plan.Name)
	}
	want := []string{"Premium", "Basic", "Elite"}
	if len(names) != len(want) {
		t.Fatalf("plans = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("plans = %v, want %v", names, want)
		}
	}
}

func TestPlanSlugTaken(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.CreatePlan(context.Background(), gym.Plan{
		Name: "Basic", PriceMonth: decimal.NewFromInt(999), Slug: "basic",
	}); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	taken, err := store.PlanSlugTaken(context.Background(), "basic")
	if err != nil {
		t.Fatalf("check slug: %v", err)
	}
	if !taken {
		t.Fatal("expected basic slug to be taken")
	}
	free, err := store.PlanSlugTaken(context.Background(), "basic-1")
	if err != nil {
		t.Fatalf("check slug: %v", err)
	}
	if free {
		t.Fatal("expected basic-1 slug to be free")
	}
}

func TestDeletePlanNullsAdmissionReference(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	planID, err := store.CreatePlan(context.Background(), gym.Plan{
		Name: "Basic", PriceMonth: decimal.NewFromInt(999), Slug: "basic",
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	admissionID, err := store.CreateAdmission(context.Background(), validAdmission(planID))
	if err != nil {
		t.Fatalf("create admission: %v", err)
	}

	if err := store.DeletePlan(context.Background(), planID); err != nil {
		t.Fatalf("delete plan: %v", err)
	}
	admission, err := store.GetAdmission(context.Background(), admissionID)
	if err != nil {
		t.Fatalf("get admission: %v", err)
	}
	if admission.PlanID != 0 {
		t.Fatalf("plan_id = %d, want 0 after plan deletion", admission.PlanID)
	}
}

func TestCreateGetAdmissionRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	planID, err := store.CreatePlan(context.Background(), gym.Plan{
		Name: "Premium", PriceMonth: decimal.NewFromInt(1999), Slug: "premium",
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	input := validAdmission(planID)
	id, err := store.CreateAdmission(context.Background(), input)
	if err != nil {
		t.Fatalf("create admission: %v", err)
	}

	got, err := store.GetAdmission(context.Background(), id)
	if err != nil {
		t.Fatalf("get admission: %v", err)
	}
	if got.FirstName != input.FirstName {
		t.Fatalf("first_name = %q, want %q", got.FirstName, input.FirstName)
	}
	if got.Email != input.Email {
		t.Fatalf("email = %q, want %q", got.Email, input.Email)
	}
	if got.PlanID != planID {
		t.Fatalf("plan_id = %d, want %d", got.PlanID, planID)
	}
	if !got.DateOfBirth.Equal(input.DateOfBirth) {
		t.Fatalf("date_of_birth = %v, want %v", got.DateOfBirth, input.DateOfBirth)
	}
	if !got.TotalAmount.Equal(input.TotalAmount) {
		t.Fatalf("total_amount = %s, want %s", got.TotalAmount, input.TotalAmount)
	}
	if !got.AgreedTerms {
		t.Fatal("agreed_terms not persisted")
	}
}

func TestListAdmissionsSearchAndFilter(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	planID, err := store.CreatePlan(context.Background(), gym.Plan{
		Name: "Basic", PriceMonth: decimal.NewFromInt(999), Slug: "basic",
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	first := validAdmission(planID)
	first.FirstName = "Asha"
	first.Email = "asha@example.com"
	first.CreatedAt = time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	if _, err := store.CreateAdmission(context.Background(), first); err != nil {
		t.Fatalf("create first admission: %v", err)
	}
	second := validAdmission(0)
	second.FirstName = "Rohan"
	second.Email = "rohan@example.com"
	second.CreatedAt = time.Date(2026, time.August, 2, 10, 0, 0, 0, time.UTC)
	if _, err := store.CreateAdmission(context.Background(), second); err != nil {
		t.Fatalf("create second admission: %v", err)
	}

	all, err := store.ListAdmissions(context.Background(), storage.AdmissionFilter{})
	if err != nil {
		t.Fatalf("list admissions: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admissions = %d, want 2", len(all))
	}
	if all[0].FirstName != "Rohan" {
		t.Fatalf("newest first = %q, want Rohan", all[0].FirstName)
	}

	byQuery, err := store.ListAdmissions(context.Background(), storage.AdmissionFilter{Query: "asha"})
	if err != nil {
		t.Fatalf("search admissions: %v", err)
	}
	if len(byQuery) != 1 || byQuery[0].FirstName != "Asha" {
		t.Fatalf("search result = %+v, want Asha only", byQuery)
	}

	byPlan, err := store.ListAdmissions(context.Background(), storage.AdmissionFilter{PlanID: planID})
	if err != nil {
		t.Fatalf("filter admissions: %v", err)
	}
	if len(byPlan) != 1 || byPlan[0].FirstName != "Asha" {
		t.Fatalf("plan filter result = %+v, want Asha only", byPlan)
	}
}

func TestPaymentLifecycle(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	admissionID, err := store.CreateAdmission(context.Background(), validAdmission(0))
	if err != nil {
		t.Fatalf("create admission: %v", err)
	}

	created, err := gym.NewUPIPayment(admissionID, decimal.NewFromInt(1999), time.Now().UTC())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	id, err := store.CreatePayment(context.Background(), created)
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	payment, err := store.GetPayment(context.Background(), id)
	if err != nil {
		t.Fatalf("get payment: %v", err)
	}
	if payment.Status != gym.PaymentPending {
		t.Fatalf("status = %q, want pending", payment.Status)
	}
	if payment.TransactionID != created.TransactionID {
		t.Fatalf("transaction_id = %q, want %q", payment.TransactionID, created.TransactionID)
	}

	if err := payment.Confirm("UPI123456"); err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if err := store.UpdatePayment(context.Background(), payment); err != nil {
		t.Fatalf("update payment: %v", err)
	}

	confirmed, err := store.GetPayment(context.Background(), id)
	if err != nil {
		t.Fatalf("get confirmed payment: %v", err)
	}
	if confirmed.Status != gym.PaymentSuccess {
		t.Fatalf("status = %q, want success", confirmed.Status)
	}
	if confirmed.UPIReference != "UPI123456" {
		t.Fatalf("upi_reference = %q, want UPI123456", confirmed.UPIReference)
	}
}

func TestCreatePaymentRejectsDuplicateTransactionID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	admissionID, err := store.CreateAdmission(context.Background(), validAdmission(0))
	if err != nil {
		t.Fatalf("create admission: %v", err)
	}
	payment, err := gym.NewUPIPayment(admissionID, decimal.NewFromInt(999), time.Now().UTC())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if _, err := store.CreatePayment(context.Background(), payment); err != nil {
		t.Fatalf("create payment: %v", err)
	}
	_, err = store.CreatePayment(context.Background(), payment)
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestListPaymentsStatusFilter(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	admissionID, err := store.CreateAdmission(context.Background(), validAdmission(0))
	if err != nil {
		t.Fatalf("create admission: %v", err)
	}
	pending, err := gym.NewUPIPayment(admissionID, decimal.NewFromInt(999), time.Now().UTC())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if _, err := store.CreatePayment(context.Background(), pending); err != nil {
		t.Fatalf("create pending payment: %v", err)
	}
	confirmed, err := gym.NewUPIPayment(admissionID, decimal.NewFromInt(1999), time.Now().UTC())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if err := confirmed.Confirm("REF-9999"); err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if _, err := store.CreatePayment(context.Background(), confirmed); err != nil {
		t.Fatalf("create confirmed payment: %v", err)
	}

	successes, err := store.ListPayments(context.Background(), storage.PaymentFilter{Status: gym.PaymentSuccess})
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(successes) != 1 || successes[0].UPIReference != "REF-9999" {
		t.Fatalf("success payments = %+v, want the confirmed one", successes)
	}

	byAdmission, err := store.ListPayments(context.Background(), storage.PaymentFilter{AdmissionID: admissionID})
	if err != nil {
		t.Fatalf("list payments by admission: %v", err)
	}
	if len(byAdmission) != 2 {
		t.Fatalf("admission payments = %d, want 2", len(byAdmission))
	}
}

func TestDeleteAdmissionCascadesToPayments(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	admissionID, err := store.CreateAdmission(context.Background(), validAdmission(0))
	if err != nil {
		t.Fatalf("create admission: %v", err)
	}
	payment, err := gym.NewUPIPayment(admissionID, decimal.NewFromInt(999), time.Now().UTC())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	paymentID, err := store.CreatePayment(context.Background(), payment)
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}

	if _, err := store.sqlDB.Exec(`DELETE FROM admissions WHERE id = ?`, admissionID); err != nil {
		t.Fatalf("delete admission: %v", err)
	}
	_, err = store.GetPayment(context.Background(), paymentID)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get cascaded payment error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestTrainerCRUDAndOrdering(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	firstID, err := store.CreateTrainer(context.Background(), gym.Trainer{
		Name: "Vikram", Specialization: "Strength", DisplayOrder: 2, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create trainer: %v", err)
	}
	if _, err := store.CreateTrainer(context.Background(), gym.Trainer{
		Name: "Meera", Specialization: "Yoga", DisplayOrder: 1, IsActive: true,
	}); err != nil {
		t.Fatalf("create trainer: %v", err)
	}
	if _, err := store.CreateTrainer(context.Background(), gym.Trainer{
		Name: "Sanjay", Specialization: "Crossfit", DisplayOrder: 3, IsActive: false,
	}); err != nil {
		t.Fatalf("create trainer: %v", err)
	}

	active, err := store.ListTrainers(context.Background(), true)
	if err != nil {
		t.Fatalf("list active trainers: %v", err)
	}
	if len(active) != 2 || active[0].Name != "Meera" || active[1].Name != "Vikram" {
		t.Fatalf("active trainers = %+v, want Meera then Vikram", active)
	}

	update, err := store.GetTrainer(context.Background(), firstID)
	if err != nil {
		t.Fatalf("get trainer: %v", err)
	}
	update.IsActive = false
	if err := store.UpdateTrainer(context.Background(), update); err != nil {
		t.Fatalf("update trainer: %v", err)
	}
	active, err = store.ListTrainers(context.Background(), true)
	if err != nil {
		t.Fatalf("list active trainers: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Meera" {
		t.Fatalf("active trainers = %+v, want Meera only", active)
	}

	if err := store.DeleteTrainer(context.Background(), firstID); err != nil {
		t.Fatalf("delete trainer: %v", err)
	}
	_, err = store.GetTrainer(context.Background(), firstID)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted trainer error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestGalleryInsertListDelete(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	oldID, err := store.AddGalleryImage(context.Background(), gym.GalleryImage{
		Title:      "Weights floor",
		ImagePath:  "gallery/weights.jpg",
		UploadedAt: time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("add gallery image: %v", err)
	}
	if _, err := store.AddGalleryImage(context.Background(), gym.GalleryImage{
		ImagePath:  "gallery/cardio.jpg",
		UploadedAt: time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("add gallery image: %v", err)
	}

	images, err := store.ListGalleryImages(context.Background(), 0)
	if err != nil {
		t.Fatalf("list gallery images: %v", err)
	}
	if len(images) != 2 || images[0].ImagePath != "gallery/cardio.jpg" {
		t.Fatalf("gallery images = %+v, want newest first", images)
	}

	limited, err := store.ListGalleryImages(context.Background(), 1)
	if err != nil {
		t.Fatalf("list limited gallery images: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limited gallery images = %d, want 1", len(limited))
	}

	if err := store.DeleteGalleryImage(context.Background(), oldID); err != nil {
		t.Fatalf("delete gallery image: %v", err)
	}
	_, err = store.GetGalleryImage(context.Background(), oldID)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted image error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestStatsAggregates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.CreatePlan(context.Background(), gym.Plan{
		Name: "Basic", PriceMonth: decimal.NewFromInt(999), Slug: "basic",
	}); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	admissionID, err := store.CreateAdmission(context.Background(), validAdmission(0))
	if err != nil {
		t.Fatalf("create admission: %v", err)
	}
	pending, err := gym.NewUPIPayment(admissionID, decimal.NewFromInt(999), time.Now().UTC())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if _, err := store.CreatePayment(context.Background(), pending); err != nil {
		t.Fatalf("create pending payment: %v", err)
	}
	paid, err := gym.NewUPIPayment(admissionID, decimal.RequireFromString("1999.50"), time.Now().UTC())
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}
	if err := paid.Confirm("REF-0001"); err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if _, err := store.CreatePayment(context.Background(), paid); err != nil {
		t.Fatalf("create paid payment: %v", err)
	}

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Plans != 1 || stats.Admissions != 1 || stats.Payments != 2 {
		t.Fatalf("stats = %+v, want 1 plan, 1 admission, 2 payments", stats)
	}
	if stats.PendingPayments != 1 {
		t.Fatalf("pending payments = %d, want 1", stats.PendingPayments)
	}
	if want := decimal.RequireFromString("1999.50"); !stats.Revenue.Equal(want) {
		t.Fatalf("revenue = %s, want %s", stats.Revenue, want)
	}
}

func validAdmission(planID int64) gym.Admission {
	return gym.Admission{
		FirstName:      "Asha",
		LastName:       "Patel",
		Email:          "asha@example.com",
		Phone:          "+919876543210",
		Gender:         gym.GenderFemale,
		DateOfBirth:    time.Date(2000, time.January, 15, 0, 0, 0, 0, time.UTC),
		PlanID:         planID,
		StartDate:      time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 3,
		AgreedTerms:    true,
		TotalAmount:    decimal.NewFromInt(2997),
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "gym.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
