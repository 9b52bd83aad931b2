// Package gym defines the core business entities for the gym-membership site.
//
// The model is centered around a small set of concepts:
//
// # Plan
//
// A Plan is a purchasable membership tier (Basic, Premium, Elite) with
// monthly and annual pricing. Plans carry a URL slug derived from the name.
//
// # Admission
//
// An Admission is a member's signed application: personal details, the
// chosen plan, membership duration, and the computed total amount owed.
//
// # Payment
//
// A Payment tracks one UPI payment attempt against an admission. Payments
// start pending and are confirmed manually against a submitted UPI
// transaction reference.
//
// # Trainer and GalleryImage
//
// Trainers and gallery images are display-only content managed through the
// back office.
package gym
