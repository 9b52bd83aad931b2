// Package sqlite provides a SQLite-backed gym storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
	sqlitemigrate "github.com/yuvrajprajapati/gymshim/internal/platform/storage/sqlitemigrate"
	"github.com/yuvrajprajapati/gymshim/internal/storage"
	"github.com/yuvrajprajapati/gymshim/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists gym membership state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func parseAmount(value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return amount, nil
}

// Open opens a SQLite gym store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreatePlan inserts one membership plan and returns its ID.
func (s *Store) CreatePlan(ctx context.Context, plan gym.Plan) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	plan, err := gym.NormalizePlan(plan)
	if err != nil {
		return 0, err
	}
	if plan.Slug == "" {
		return 0, fmt.Errorf("plan slug is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO membership_plans (
		   name, price_month, price_annual, duration_days, perks, slug, is_popular
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plan.Name,
		plan.PriceMonth.String(),
		plan.PriceAnnual.String(),
		plan.DurationDays,
		plan.Perks,
		plan.Slug,
		boolToInt(plan.IsPopular),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrAlreadyExists
		}
		return 0, fmt.Errorf("create plan: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create plan id: %w", err)
	}
	return id, nil
}

// UpdatePlan rewrites one membership plan.
func (s *Store) UpdatePlan(ctx context.Context, plan gym.Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if plan.ID <= 0 {
		return fmt.Errorf("plan id is required")
	}
	plan, err := gym.NormalizePlan(plan)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE membership_plans
		    SET name = ?, price_month = ?, price_annual = ?, duration_days = ?,
		        perks = ?, slug = ?, is_popular = ?
		  WHERE id = ?`,
		plan.Name,
		plan.PriceMonth.String(),
		plan.PriceAnnual.String(),
		plan.DurationDays,
		plan.Perks,
		plan.Slug,
		boolToInt(plan.IsPopular),
		plan.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update plan: %w", err)
	}
	return requireRowAffected(result, "update plan")
}

// DeletePlan removes one membership plan. Admissions referencing it keep a
// null plan reference.
func (s *Store) DeletePlan(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return fmt.Errorf("plan id is required")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM membership_plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return requireRowAffected(result, "delete plan")
}

const planColumns = `id, name, price_month, price_annual, duration_days, perks, slug, is_popular`

// GetPlan returns one membership plan by ID.
func (s *Store) GetPlan(ctx context.Context, id int64) (gym.Plan, error) {
	if err := ctx.Err(); err != nil {
		return gym.Plan{}, err
	}
	if s == nil || s.sqlDB == nil {
		return gym.Plan{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return gym.Plan{}, fmt.Errorf("plan id is required")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+planColumns+` FROM membership_plans WHERE id = ?`,
		id,
	)
	return scanPlan(row)
}

// GetPlanBySlug returns one membership plan by slug.
func (s *Store) GetPlanBySlug(ctx context.Context, slug string) (gym.Plan, error) {
	if err := ctx.Err(); err != nil {
		return gym.Plan{}, err
	}
	if s == nil || s.sqlDB == nil {
		return gym.Plan{}, fmt.Errorf("storage is not configured")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return gym.Plan{}, fmt.Errorf("plan slug is required")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+planColumns+` FROM membership_plans WHERE slug = ?`,
		slug,
	)
	return scanPlan(row)
}

// ListPlans returns all membership plans in catalog order: popular first,
// then monthly price ascending, then name.
func (s *Store) ListPlans(ctx context.Context) ([]gym.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+planColumns+`
		   FROM membership_plans
		  ORDER BY is_popular DESC, CAST(price_month AS REAL) ASC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []gym.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// PlanSlugTaken reports whether a slug is already in use.
func (s *Store) PlanSlugTaken(ctx context.Context, slug string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return false, nil
	}
	var count int
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM membership_plans WHERE slug = ?`,
		slug,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check plan slug: %w", err)
	}
	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (gym.Plan, error) {
	var plan gym.Plan
	var priceMonth string
	var priceAnnual string
	var isPopular int
	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&priceMonth,
		&priceAnnual,
		&plan.DurationDays,
		&plan.Perks,
		&plan.Slug,
		&isPopular,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gym.Plan{}, storage.ErrNotFound
		}
		return gym.Plan{}, fmt.Errorf("scan plan: %w", err)
	}
	if plan.PriceMonth, err = parseAmount(priceMonth); err != nil {
		return gym.Plan{}, err
	}
	if plan.PriceAnnual, err = parseAmount(priceAnnual); err != nil {
		return gym.Plan{}, err
	}
	plan.IsPopular = isPopular != 0
	return plan, nil
}

// CreateAdmission inserts one admission application and returns its ID.
func (s *Store) CreateAdmission(ctx context.Context, admission gym.Admission) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(admission.FirstName) == "" {
		return 0, fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(admission.Email) == "" {
		return 0, fmt.Errorf("email is required")
	}
	if admission.StartDate.IsZero() {
		return 0, fmt.Errorf("start date is required")
	}
	createdAt := admission.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := admission.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	var planID any
	if admission.PlanID > 0 {
		planID = admission.PlanID
	}
	var dateOfBirth any
	if !admission.DateOfBirth.IsZero() {
		dateOfBirth = toMillis(admission.DateOfBirth)
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO admissions (
		   first_name, last_name, email, phone, gender, date_of_birth, address,
		   plan_id, start_date, duration_months,
		   emergency_contact_name, emergency_contact_phone,
		   fitness_goals, medical_conditions, photo_path, upi_id,
		   agreed_terms, total_amount, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(admission.FirstName),
		strings.TrimSpace(admission.LastName),
		strings.TrimSpace(admission.Email),
		strings.TrimSpace(admission.Phone),
		admission.Gender,
		dateOfBirth,
		strings.TrimSpace(admission.Address),
		planID,
		toMillis(admission.StartDate),
		admission.DurationMonths,
		strings.TrimSpace(admission.EmergencyContactName),
		strings.TrimSpace(admission.EmergencyContactPhone),
		strings.TrimSpace(admission.FitnessGoals),
		strings.TrimSpace(admission.MedicalConditions),
		strings.TrimSpace(admission.PhotoPath),
		strings.TrimSpace(admission.UPIID),
		boolToInt(admission.AgreedTerms),
		admission.TotalAmount.String(),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create admission: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create admission id: %w", err)
	}
	return id, nil
}

const admissionColumns = `id, first_name, last_name, email, phone, gender,
	date_of_birth, address, plan_id, start_date, duration_months,
	emergency_contact_name, emergency_contact_phone,
	fitness_goals, medical_conditions, photo_path, upi_id,
	agreed_terms, total_amount, created_at, updated_at`

// GetAdmission returns one admission by ID.
func (s *Store) GetAdmission(ctx context.Context, id int64) (gym.Admission, error) {
	if err := ctx.Err(); err != nil {
		return gym.Admission{}, err
	}
	if s == nil || s.sqlDB == nil {
		return gym.Admission{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return gym.Admission{}, fmt.Errorf("admission id is required")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+admissionColumns+` FROM admissions WHERE id = ?`,
		id,
	)
	return scanAdmission(row)
}

// ListAdmissions returns admissions, newest first, optionally narrowed by a
// search query and plan filter.
func (s *Store) ListAdmissions(ctx context.Context, filter storage.AdmissionFilter) ([]gym.Admission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := `SELECT ` + admissionColumns + ` FROM admissions`
	var clauses []string
	var args []any
	if term := strings.TrimSpace(filter.Query); term != "" {
		pattern := "%" + term + "%"
		clauses = append(clauses,
			`(first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone LIKE ?)`)
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if filter.PlanID > 0 {
		clauses = append(clauses, `plan_id = ?`)
		args = append(args, filter.PlanID)
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list admissions: %w", err)
	}
	defer rows.Close()

	var admissions []gym.Admission
	for rows.Next() {
		admission, err := scanAdmission(rows)
		if err != nil {
			return nil, fmt.Errorf("list admissions: %w", err)
		}
		admissions = append(admissions, admission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list admissions: %w", err)
	}
	return admissions, nil
}

func scanAdmission(row rowScanner) (gym.Admission, error) {
	var admission gym.Admission
	var dateOfBirth sql.NullInt64
	var planID sql.NullInt64
	var startDate int64
	var agreedTerms int
	var totalAmount string
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&admission.ID,
		&admission.FirstName,
		&admission.LastName,
		&admission.Email,
		&admission.Phone,
		&admission.Gender,
		&dateOfBirth,
		&admission.Address,
		&planID,
		&startDate,
		&admission.DurationMonths,
		&admission.EmergencyContactName,
		&admission.EmergencyContactPhone,
		&admission.FitnessGoals,
		&admission.MedicalConditions,
		&admission.PhotoPath,
		&admission.UPIID,
		&agreedTerms,
		&totalAmount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gym.Admission{}, storage.ErrNotFound
		}
		return gym.Admission{}, fmt.Errorf("scan admission: %w", err)
	}
	if dateOfBirth.Valid {
		admission.DateOfBirth = fromMillis(dateOfBirth.Int64)
	}
	if planID.Valid {
		admission.PlanID = planID.Int64
	}
	admission.StartDate = fromMillis(startDate)
	admission.AgreedTerms = agreedTerms != 0
	if admission.TotalAmount, err = parseAmount(totalAmount); err != nil {
		return gym.Admission{}, err
	}
	admission.CreatedAt = fromMillis(createdAt)
	admission.UpdatedAt = fromMillis(updatedAt)
	return admission, nil
}

// CreatePayment inserts one payment record and returns its ID.
func (s *Store) CreatePayment(ctx context.Context, payment gym.Payment) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if payment.AdmissionID <= 0 {
		return 0, fmt.Errorf("admission id is required")
	}
	if strings.TrimSpace(payment.TransactionID) == "" {
		return 0, fmt.Errorf("transaction id is required")
	}
	createdAt := payment.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO admission_payments (
		   admission_id, amount, upi_reference, transaction_id, status, mode, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		payment.AdmissionID,
		payment.Amount.String(),
		strings.TrimSpace(payment.UPIReference),
		strings.TrimSpace(payment.TransactionID),
		string(payment.Status),
		string(payment.Mode),
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrAlreadyExists
		}
		return 0, fmt.Errorf("create payment: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create payment id: %w", err)
	}
	return id, nil
}

const paymentColumns = `id, admission_id, amount, upi_reference, transaction_id, status, mode, created_at`

// GetPayment returns one payment by ID.
func (s *Store) GetPayment(ctx context.Context, id int64) (gym.Payment, error) {
	if err := ctx.Err(); err != nil {
		return gym.Payment{}, err
	}
	if s == nil || s.sqlDB == nil {
		return gym.Payment{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return gym.Payment{}, fmt.Errorf("payment id is required")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+paymentColumns+` FROM admission_payments WHERE id = ?`,
		id,
	)
	return scanPayment(row)
}

// UpdatePayment rewrites the mutable fields of one payment.
func (s *Store) UpdatePayment(ctx context.Context, payment gym.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if payment.ID <= 0 {
		return fmt.Errorf("payment id is required")
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE admission_payments
		    SET upi_reference = ?, status = ?, mode = ?
		  WHERE id = ?`,
		strings.TrimSpace(payment.UPIReference),
		string(payment.Status),
		string(payment.Mode),
		payment.ID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return requireRowAffected(result, "update payment")
}

// ListPayments returns payments, newest first, optionally narrowed by status
// or admission.
func (s *Store) ListPayments(ctx context.Context, filter storage.PaymentFilter) ([]gym.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := `SELECT ` + paymentColumns + ` FROM admission_payments`
	var clauses []string
	var args []any
	if filter.Status != "" {
		clauses = append(clauses, `status = ?`)
		args = append(args, string(filter.Status))
	}
	if filter.AdmissionID > 0 {
		clauses = append(clauses, `admission_id = ?`)
		args = append(args, filter.AdmissionID)
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []gym.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("list payments: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func scanPayment(row rowScanner) (gym.Payment, error) {
	var payment gym.Payment
	var amount string
	var status string
	var mode string
	var createdAt int64
	err := row.Scan(
		&payment.ID,
		&payment.AdmissionID,
		&amount,
		&payment.UPIReference,
		&payment.TransactionID,
		&status,
		&mode,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gym.Payment{}, storage.ErrNotFound
		}
		return gym.Payment{}, fmt.Errorf("scan payment: %w", err)
	}
	if payment.Amount, err = parseAmount(amount); err != nil {
		return gym.Payment{}, err
	}
	payment.Status = gym.PaymentStatus(status)
	payment.Mode = gym.PaymentMode(mode)
	payment.CreatedAt = fromMillis(createdAt)
	return payment, nil
}

// CreateTrainer inserts one trainer and returns its ID.
func (s *Store) CreateTrainer(ctx context.Context, trainer gym.Trainer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	trainer, err := gym.NormalizeTrainer(trainer)
	if err != nil {
		return 0, err
	}
	createdAt := trainer.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := trainer.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO trainers (
		   name, specialization, bio_short, bio_full, image_url,
		   display_order, is_active, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trainer.Name,
		trainer.Specialization,
		trainer.BioShort,
		trainer.BioFull,
		trainer.ImageURL,
		trainer.DisplayOrder,
		boolToInt(trainer.IsActive),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("create trainer: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create trainer id: %w", err)
	}
	return id, nil
}

// UpdateTrainer rewrites one trainer.
func (s *Store) UpdateTrainer(ctx context.Context, trainer gym.Trainer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if trainer.ID <= 0 {
		return fmt.Errorf("trainer id is required")
	}
	trainer, err := gym.NormalizeTrainer(trainer)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE trainers
		    SET name = ?, specialization = ?, bio_short = ?, bio_full = ?,
		        image_url = ?, display_order = ?, is_active = ?, updated_at = ?
		  WHERE id = ?`,
		trainer.Name,
		trainer.Specialization,
		trainer.BioShort,
		trainer.BioFull,
		trainer.ImageURL,
		trainer.DisplayOrder,
		boolToInt(trainer.IsActive),
		toMillis(time.Now().UTC()),
		trainer.ID,
	)
	if err != nil {
		return fmt.Errorf("update trainer: %w", err)
	}
	return requireRowAffected(result, "update trainer")
}

// DeleteTrainer removes one trainer.
func (s *Store) DeleteTrainer(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return fmt.Errorf("trainer id is required")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM trainers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trainer: %w", err)
	}
	return requireRowAffected(result, "delete trainer")
}

const trainerColumns = `id, name, specialization, bio_short, bio_full, image_url,
	display_order, is_active, created_at, updated_at`

// GetTrainer returns one trainer by ID.
func (s *Store) GetTrainer(ctx context.Context, id int64) (gym.Trainer, error) {
	if err := ctx.Err(); err != nil {
		return gym.Trainer{}, err
	}
	if s == nil || s.sqlDB == nil {
		return gym.Trainer{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return gym.Trainer{}, fmt.Errorf("trainer id is required")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+trainerColumns+` FROM trainers WHERE id = ?`,
		id,
	)
	return scanTrainer(row)
}

// ListTrainers returns trainers in display order, optionally active only.
func (s *Store) ListTrainers(ctx context.Context, activeOnly bool) ([]gym.Trainer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	query := `SELECT ` + trainerColumns + ` FROM trainers`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY display_order ASC, name ASC`

	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	defer rows.Close()

	var trainers []gym.Trainer
	for rows.Next() {
		trainer, err := scanTrainer(rows)
		if err != nil {
			return nil, fmt.Errorf("list trainers: %w", err)
		}
		trainers = append(trainers, trainer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	return trainers, nil
}

func scanTrainer(row rowScanner) (gym.Trainer, error) {
	var trainer gym.Trainer
	var isActive int
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&trainer.ID,
		&trainer.Name,
		&trainer.Specialization,
		&trainer.BioShort,
		&trainer.BioFull,
		&trainer.ImageURL,
		&trainer.DisplayOrder,
		&isActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gym.Trainer{}, storage.ErrNotFound
		}
		return gym.Trainer{}, fmt.Errorf("scan trainer: %w", err)
	}
	trainer.IsActive = isActive != 0
	trainer.CreatedAt = fromMillis(createdAt)
	trainer.UpdatedAt = fromMillis(updatedAt)
	return trainer, nil
}

// AddGalleryImage inserts one gallery image and returns its ID.
func (s *Store) AddGalleryImage(ctx context.Context, image gym.GalleryImage) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	imagePath := strings.TrimSpace(image.ImagePath)
	if imagePath == "" {
		return 0, fmt.Errorf("image path is required")
	}
	uploadedAt := image.UploadedAt.UTC()
	if uploadedAt.IsZero() {
		uploadedAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO gallery_images (title, image_path, uploaded_at) VALUES (?, ?, ?)`,
		strings.TrimSpace(image.Title),
		imagePath,
		toMillis(uploadedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("add gallery image: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add gallery image id: %w", err)
	}
	return id, nil
}

// GetGalleryImage returns one gallery image by ID.
func (s *Store) GetGalleryImage(ctx context.Context, id int64) (gym.GalleryImage, error) {
	if err := ctx.Err(); err != nil {
		return gym.GalleryImage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return gym.GalleryImage{}, fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return gym.GalleryImage{}, fmt.Errorf("gallery image id is required")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, image_path, uploaded_at FROM gallery_images WHERE id = ?`,
		id,
	)
	var image gym.GalleryImage
	var uploadedAt int64
	if err := row.Scan(&image.ID, &image.Title, &image.ImagePath, &uploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gym.GalleryImage{}, storage.ErrNotFound
		}
		return gym.GalleryImage{}, fmt.Errorf("get gallery image: %w", err)
	}
	image.UploadedAt = fromMillis(uploadedAt)
	return image, nil
}

// ListGalleryImages returns gallery images, newest upload first.
func (s *Store) ListGalleryImages(ctx context.Context, limit int) ([]gym.GalleryImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	query := `SELECT id, title, image_path, uploaded_at
	   FROM gallery_images
	  ORDER BY uploaded_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	defer rows.Close()

	var images []gym.GalleryImage
	for rows.Next() {
		var image gym.GalleryImage
		var uploadedAt int64
		if err := rows.Scan(&image.ID, &image.Title, &image.ImagePath, &uploadedAt); err != nil {
			return nil, fmt.Errorf("list gallery images: %w", err)
		}
		image.UploadedAt = fromMillis(uploadedAt)
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	return images, nil
}

// DeleteGalleryImage removes one gallery image.
func (s *Store) DeleteGalleryImage(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if id <= 0 {
		return fmt.Errorf("gallery image id is required")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	return requireRowAffected(result, "delete gallery image")
}

// Stats aggregates entity counts and successful-payment revenue for the
// back-office dashboard.
func (s *Store) Stats(ctx context.Context) (storage.DashboardStats, error) {
	if err := ctx.Err(); err != nil {
		return storage.DashboardStats{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DashboardStats{}, fmt.Errorf("storage is not configured")
	}

	var stats storage.DashboardStats
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM membership_plans`, &stats.Plans},
		{`SELECT COUNT(*) FROM trainers`, &stats.Trainers},
		{`SELECT COUNT(*) FROM gallery_images`, &stats.GalleryImages},
		{`SELECT COUNT(*) FROM admissions`, &stats.Admissions},
		{`SELECT COUNT(*) FROM admission_payments`, &stats.Payments},
		{`SELECT COUNT(*) FROM admission_payments WHERE status = 'pending'`, &stats.PendingPayments},
	}
	for _, count := range counts {
		if err := s.sqlDB.QueryRowContext(ctx, count.query).Scan(count.dest); err != nil {
			return storage.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
		}
	}

	// Amounts are stored as decimal strings, so revenue is summed in Go.
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT amount FROM admission_payments WHERE status = 'success'`,
	)
	if err != nil {
		return storage.DashboardStats{}, fmt.Errorf("dashboard revenue: %w", err)
	}
	defer rows.Close()

	revenue := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return storage.DashboardStats{}, fmt.Errorf("dashboard revenue: %w", err)
		}
		amount, err := parseAmount(raw)
		if err != nil {
			return storage.DashboardStats{}, err
		}
		revenue = revenue.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return storage.DashboardStats{}, fmt.Errorf("dashboard revenue: %w", err)
	}
	stats.Revenue = revenue
	return stats, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func requireRowAffected(result sql.Result, operation string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.Store = (*Store)(nil)
