package employees

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleDeveloper Role = "developer"
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleEmployee  Role = "employee"
	RoleEditor    Role = "editor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDeveloper, RoleAdmin, RoleManager, RoleEmployee, RoleEditor:
		return true
	}
	return false
}

// Admin reports whether the role may manage other employees.
func (r Role) Admin() bool {
	return r == RoleAdmin || r == RoleDeveloper
}

type User struct {
	ID           string          `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID     string          `gorm:"type:uuid;index;not null" json:"tenantId"`
	Name         string          `gorm:"not null" json:"name"`
	Email        string          `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string          `json:"phone"`
	Role         Role            `gorm:"not null;default:'employee'" json:"role"`
	Position     string          `json:"position"`
	Department   string          `json:"department"`
	JoinDate     time.Time       `gorm:"type:date" json:"joinDate"`
	Salary       decimal.Decimal `gorm:"type:numeric(12,2)" json:"salary"`
	AvatarURL    string          `json:"avatarUrl"`
	PasswordHash string          `gorm:"not null" json:"-"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

type AttendanceStatus string

const (
	AttendancePresent  AttendanceStatus = "present"
	AttendanceAbsent   AttendanceStatus = "absent"
	AttendanceLate     AttendanceStatus = "late"
	AttendanceRemote   AttendanceStatus = "remote"
	AttendanceSick     AttendanceStatus = "sick"
	AttendanceVacation AttendanceStatus = "vacation"
	AttendanceHoliday  AttendanceStatus = "holiday"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceRemote,
		AttendanceSick, AttendanceVacation, AttendanceHoliday:
		return true
	}
	return false
}

// AttendanceRecord is unique per (user, calendar date).
type AttendanceRecord struct {
	ID          string           `gorm:"type:uuid;primaryKey"`
	TenantID    string           `gorm:"type:uuid;index;not null"`
	UserID      string           `gorm:"type:uuid;index:idx_attendance_user_date,unique;not null"`
	Date        time.Time        `gorm:"type:date;index:idx_attendance_user_date,unique;not null"`
	Status      AttendanceStatus `gorm:"not null"`
	CheckIn     string
	CheckOut    string
	LateMinutes int
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type CreateUserInput struct {
	TenantID   string
	Name       string
	Email      string
	Phone      string
	Role       Role
	Position   string
	Department string
	JoinDate   time.Time
	Salary     decimal.Decimal
	Password   string
}

type UpdateProfileInput struct {
	ID         string
	TenantID   string
	Name       string
	Phone      string
	Position   string
	Department string
	Salary     decimal.Decimal
	AvatarURL  string
}

type MarkAttendanceInput struct {
	TenantID    string
	UserID      string
	Date        time.Time
	Status      AttendanceStatus
	CheckIn     string
	CheckOut    string
	LateMinutes int
}
