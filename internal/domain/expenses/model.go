package expenses

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Expense struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	TenantID    string          `gorm:"type:uuid;index;not null"`
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category    string          `gorm:"not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	Status      Status          `gorm:"not null;default:'Pending'"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

type ListFilter struct {
	From     *time.Time
	To       *time.Time
	Status   Status
	Category string
	Limit    int
	Offset   int
}

type CreateExpenseInput struct {
	TenantID    string
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}

type UpdateExpenseInput struct {
	ID          string
	TenantID    string
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Status      Status
}
