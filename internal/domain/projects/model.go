package projects

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status follows the photography production workflow from intake to
// archive.
type Status string

const (
	StatusNewProject     Status = "New Project"
	StatusPreProduction  Status = "Pre-Production"
	StatusShootScheduled Status = "Picture Day Scheduled"
	StatusShootCompleted Status = "Picture Day Completed"
	StatusPostProduction Status = "Editing / Post-Production"
	StatusQAReview       Status = "QA Review"
	StatusProofpixUpload Status = "Proofpix Upload"
	StatusGalleryLive    Status = "Gallery Live"
	StatusArchived       Status = "Archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNewProject, StatusPreProduction, StatusShootScheduled,
		StatusShootCompleted, StatusPostProduction, StatusQAReview,
		StatusProofpixUpload, StatusGalleryLive, StatusArchived:
		return true
	}
	return false
}

type Project struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	TenantID    string          `gorm:"type:uuid;index;not null"`
	Name        string          `gorm:"not null"`
	Client      string          `gorm:"not null"`
	Status      Status          `gorm:"not null;default:'New Project'"`
	Budget      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Deadline    time.Time       `gorm:"type:date"`
	Description string
	Progress    int `gorm:"not null;default:0"`

	SportType    string
	Season       string
	Location     string
	PlayerCount  int
	PackageType  string
	ContactEmail string
	ContactPhone string
	RosterFile   string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// Stats are the dashboard's workflow counters: anything past intake and
// not archived counts as active; live galleries and archived shoots count
// as completed.
type Stats struct {
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	NewJobs   int64 `json:"new_jobs"`
}

type CreateProjectInput struct {
	TenantID     string
	Name         string
	Client       string
	Budget       decimal.Decimal
	Deadline     time.Time
	Description  string
	SportType    string
	Season       string
	Location     string
	PlayerCount  int
	PackageType  string
	ContactEmail string
	ContactPhone string
	RosterFile   string
}

type UpdateProjectInput struct {
	ID           string
	TenantID     string
	Name         string
	Client       string
	Status       Status
	Budget       decimal.Decimal
	Deadline     time.Time
	Description  string
	Progress     int
	SportType    string
	Season       string
	Location     string
	PlayerCount  int
	PackageType  string
	ContactEmail string
	ContactPhone string
	RosterFile   string
}
