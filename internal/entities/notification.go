package entities

import "time"

// JobListingID and ApplicationID are optional back-references for
// deep-linking, not enforced foreign keys.
type Notification struct {
	ID            int `gorm:"primaryKey"`
	UserID        int
	Title         string
	Message       string
	IsRead        bool `gorm:"default:false"`
	CreatedAt     time.Time
	JobListingID  *int
	ApplicationID *int
}
