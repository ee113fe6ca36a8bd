package entities

import "time"

type JobType string

const (
	FullTime   JobType = "FULL_TIME"
	PartTime   JobType = "PART_TIME"
	Internship JobType = "INTERNSHIP"
)

type JobListing struct {
	ID             int `gorm:"primaryKey"`
	EmployerID     int
	CompanyName    string
	Title          string
	Description    string
	Qualification  string
	Experience     int
	Location       string
	Salary         int
	JobType        JobType
	RequiredSkills string
	PostedDate     time.Time
	Active         bool `gorm:"default:true"`
}
