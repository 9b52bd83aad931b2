// Package storage defines persistence contracts for gym membership state.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/yuvrajprajapati/gymshim/internal/gym"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// AdmissionFilter narrows admission listings for the back office.
type AdmissionFilter struct {
	// Query matches name, email, or phone substrings when non-empty.
	Query string
	// PlanID limits results to one plan when non-zero.
	PlanID int64
	// Limit caps the result size when non-zero.
	Limit int
}

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	// Status limits results to one payment status when non-empty.
	Status gym.PaymentStatus
	// AdmissionID limits results to one admission when non-zero.
	AdmissionID int64
}

// DashboardStats aggregates counts shown on the back-office dashboard.
type DashboardStats struct {
	Plans           int
	Trainers        int
	GalleryImages   int
	Admissions      int
	Payments        int
	PendingPayments int
	Revenue         decimal.Decimal
}

// PlanStore persists membership plans.
type PlanStore interface {
	CreatePlan(ctx context.Context, plan gym.Plan) (int64, error)
	UpdatePlan(ctx context.Context, plan gym.Plan) error
	DeletePlan(ctx context.Context, id int64) error
	GetPlan(ctx context.Context, id int64) (gym.Plan, error)
	GetPlanBySlug(ctx context.Context, slug string) (gym.Plan, error)
	ListPlans(ctx context.Context) ([]gym.Plan, error)
	PlanSlugTaken(ctx context.Context, slug string) (bool, error)
}

// AdmissionStore persists admission applications.
type AdmissionStore interface {
	CreateAdmission(ctx context.Context, admission gym.Admission) (int64, error)
	GetAdmission(ctx context.Context, id int64) (gym.Admission, error)
	ListAdmissions(ctx context.Context, filter AdmissionFilter) ([]gym.Admission, error)
}

// PaymentStore persists admission payments.
type PaymentStore interface {
	CreatePayment(ctx context.Context, payment gym.Payment) (int64, error)
	GetPayment(ctx context.Context, id int64) (gym.Payment, error)
	UpdatePayment(ctx context.Context, payment gym.Payment) error
	ListPayments(ctx context.Context, filter PaymentFilter) ([]gym.Payment, error)
}

// TrainerStore persists trainers.
type TrainerStore interface {
	CreateTrainer(ctx context.Context, trainer gym.Trainer) (int64, error)
	UpdateTrainer(ctx context.Context, trainer gym.Trainer) error
	DeleteTrainer(ctx context.Context, id int64) error
	GetTrainer(ctx context.Context, id int64) (gym.Trainer, error)
	ListTrainers(ctx context.Context, activeOnly bool) ([]gym.Trainer, error)
}

// GalleryStore persists gallery images.
type GalleryStore interface {
	AddGalleryImage(ctx context.Context, image gym.GalleryImage) (int64, error)
	GetGalleryImage(ctx context.Context, id int64) (gym.GalleryImage, error)
	ListGalleryImages(ctx context.Context, limit int) ([]gym.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int64) error
}

// StatsStore aggregates back-office dashboard figures.
type StatsStore interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

// Store combines every persistence concern of the application.
type Store interface {
	PlanStore
	AdmissionStore
	PaymentStore
	TrainerStore
	GalleryStore
	StatsStore
	Close() error
}
