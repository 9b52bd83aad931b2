package gym

import "testing"

func TestNormalizeTrainer(t *testing.T) {
	t.Parallel()

	trainer, err := NormalizeTrainer(Trainer{
		Name:           "  Rohan Mehta  ",
		Specialization: " Strength & Conditioning ",
		DisplayOrder:   -2,
	})
	if err != nil {
		t.Fatalf("normalize trainer: %v", err)
	}
	if trainer.Name != "Rohan Mehta" {
		t.Fatalf("Name = %q", trainer.Name)
	}
	if trainer.Specialization != "Strength & Conditioning" {
		t.Fatalf("Specialization = %q", trainer.Specialization)
	}
	if trainer.DisplayOrder != 0 {
		t.Fatalf("DisplayOrder = %d, want 0", trainer.DisplayOrder)
	}
}

func TestNormalizeTrainerRequiresFields(t *testing.T) {
	t.Parallel()

	if _, err := NormalizeTrainer(Trainer{Specialization: "Yoga"}); err != ErrEmptyTrainerName {
		t.Fatalf("err = %v, want ErrEmptyTrainerName", err)
	}
	if _, err := NormalizeTrainer(Trainer{Name: "Rohan"}); err != ErrEmptyTrainerSpecialization {
		t.Fatalf("err = %v, want ErrEmptyTrainerSpecialization", err)
	}
}

func TestSortTrainersByOrderThenName(t *testing.T) {
	t.Parallel()

	trainers := []Trainer{
		{Name: "Zara", DisplayOrder: 1},
		{Name: "Arjun", DisplayOrder: 1},
		{Name: "Meera", DisplayOrder: 0},
	}
	SortTrainers(trainers)

	want := []string{"Meera", "Arjun", "Zara"}
	for i := range want {
		if trainers[i].Name != want[i] {
			t.Fatalf("order = [%s %s %s], want %v", trainers[0].Name, trainers[1].Name, trainers[2].Name, want)
		}
	}
}

func TestGalleryImageDisplayTitle(t *testing.T) {
	t.Parallel()

	img := GalleryImage{Title: " Deadlift platform ", ImagePath: "gallery/a.jpg"}
	if got := img.DisplayTitle(); got != "Deadlift platform" {
		t.Fatalf("DisplayTitle() = %q", got)
	}

	img.Title = "  "
	if got := img.DisplayTitle(); got != "gallery/a.jpg" {
		t.Fatalf("DisplayTitle() fallback = %q", got)
	}
}
