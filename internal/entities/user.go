package entities

type UserRole string

const (
	RoleEmployer  UserRole = "EMPLOYER"
	RoleJobSeeker UserRole = "JOB_SEEKER"
)

type User struct {
	ID    int `gorm:"primaryKey"`
	Name  string
	Email string
	Role  UserRole
}

type Employer struct {
	ID          int `gorm:"primaryKey"`
	UserID      int
	FullName    string
	CompanyName string
}

// JobSeeker skills are free text, comma-separated. Address doubles as the
// location used by job matching.
type JobSeeker struct {
	ID       int `gorm:"primaryKey"`
	UserID   int
	FullName string
	Email    string
	Skills   string
	Address  string
}
