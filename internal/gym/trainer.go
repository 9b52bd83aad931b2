package gym

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	// ErrEmptyTrainerName indicates a missing trainer name.
	ErrEmptyTrainerName = errors.New("trainer name is required")
	// ErrEmptyTrainerSpecialization indicates a missing specialization line.
	ErrEmptyTrainerSpecialization = errors.New("trainer specialization is required")
)

// Trainer is a coach shown on the trainers page.
type Trainer struct {
	ID             int64
	Name           string
	Specialization string
	BioShort       string
	BioFull        string
	ImageURL       string
	DisplayOrder   int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeTrainer trims and validates trainer fields ahead of persistence.
func NormalizeTrainer(trainer Trainer) (Trainer, error) {
	trainer.Name = strings.TrimSpace(trainer.Name)
	if trainer.Name == "" {
		return Trainer{}, ErrEmptyTrainerName
	}
	trainer.Specialization = strings.TrimSpace(trainer.Specialization)
	if trainer.Specialization == "" {
		return Trainer{}, ErrEmptyTrainerSpecialization
	}
	trainer.BioShort = strings.TrimSpace(trainer.BioShort)
	trainer.BioFull = strings.TrimSpace(trainer.BioFull)
	trainer.ImageURL = strings.TrimSpace(trainer.ImageURL)
	if trainer.DisplayOrder < 0 {
		trainer.DisplayOrder = 0
	}
	return trainer, nil
}

// SortTrainers orders trainers for display: lower display order first, then name.
func SortTrainers(trainers []Trainer) {
	sort.SliceStable(trainers, func(i, j int) bool {
		if trainers[i].DisplayOrder != trainers[j].DisplayOrder {
			return trainers[i].DisplayOrder < trainers[j].DisplayOrder
		}
		return trainers[i].Name < trainers[j].Name
	})
}

// GalleryImage is one uploaded gym photo.
type GalleryImage struct {
	ID         int64
	Title      string
	ImagePath  string
	UploadedAt time.Time
}

// DisplayTitle falls back to the stored path when a gallery image is untitled.
func (g GalleryImage) DisplayTitle() string {
	if title := strings.TrimSpace(g.Title); title != "" {
		return title
	}
	return g.ImagePath
}
