package entities

import "time"

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "APPLIED"
	StatusInReview    ApplicationStatus = "IN_REVIEW"
	StatusShortlisted ApplicationStatus = "SHORTLISTED"
	StatusRejected    ApplicationStatus = "REJECTED"
	StatusHired       ApplicationStatus = "HIRED"
)

// JobTitle and ApplicantName are snapshots taken when the application is
// created so the employer's view stays stable even if the listing or seeker
// profile changes later.
type Application struct {
	ID              int `gorm:"primaryKey"`
	JobListingID    int
	JobSeekerID     int
	Status          ApplicationStatus
	ResumeFilePath  string
	JobTitle        string
	ApplicantName   string
	ApplicationDate time.Time
}
