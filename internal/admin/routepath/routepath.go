// Package routepath stores canonical HTTP paths for the admin back office.
package routepath

import "strconv"

const (
	Root   = "/"
	Login  = "/login"
	Logout = "/logout"

	StaticPrefix = "/static/"

	Plans       = "/plans"
	PlansCreate = "/plans/create"
	PlansPrefix = "/plans/"

	Trainers       = "/trainers"
	TrainersCreate = "/trainers/create"
	TrainersPrefix = "/trainers/"

	Gallery       = "/gallery"
	GalleryUpload = "/gallery/upload"
	GalleryPrefix = "/gallery/"

	Admissions       = "/admissions"
	AdmissionsPrefix = "/admissions/"

	Payments = "/payments"
)

// PlanEdit returns the edit route for one plan.
func PlanEdit(id int64) string {
	return PlansPrefix + strconv.FormatInt(id, 10) + "/edit"
}

// PlanDelete returns the delete route for one plan.
func PlanDelete(id int64) string {
	return PlansPrefix + strconv.FormatInt(id, 10) + "/delete"
}

// TrainerEdit returns the edit route for one trainer.
func TrainerEdit(id int64) string {
	return TrainersPrefix + strconv.FormatInt(id, 10) + "/edit"
}

// TrainerDelete returns the delete route for one trainer.
func TrainerDelete(id int64) string {
	return TrainersPrefix + strconv.FormatInt(id, 10) + "/delete"
}

// GalleryDelete returns the delete route for one gallery image.
func GalleryDelete(id int64) string {
	return GalleryPrefix + strconv.FormatInt(id, 10) + "/delete"
}

// AdmissionPage returns the detail route for one admission.
func AdmissionPage(id int64) string {
	return AdmissionsPrefix + strconv.FormatInt(id, 10)
}
