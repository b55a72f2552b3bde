package invoices

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft   Status = "Draft"
	StatusSent    Status = "Sent"
	StatusPaid    Status = "Paid"
	StatusOverdue Status = "Overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

type Invoice struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	TenantID    string          `gorm:"type:uuid;index;not null"`
	ClientID    string          `gorm:"type:uuid;index"`
	ClientName  string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"size:3;not null"`
	IssueDate   time.Time       `gorm:"type:date;not null"`
	DueDate     time.Time       `gorm:"type:date;not null"`
	Status      Status          `gorm:"not null;default:'Draft'"`
	PaymentInfo string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type InvoiceItem struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	InvoiceID   string `gorm:"type:uuid;index;not null"`
	Description string `gorm:"not null"`
	FolderName  string
	FileType    string
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

type InvoiceWithItems struct {
	Invoice
	Items []InvoiceItem
}

type ItemInput struct {
	Description string
	FolderName  string
	FileType    string
	Quantity    int
	Price       decimal.Decimal
}

type ListFilter struct {
	Status Status
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type CreateInvoiceInput struct {
	TenantID    string
	ClientID    string
	ClientName  string
	Currency    string
	IssueDate   time.Time
	DueDate     time.Time
	PaymentInfo string
	Items       []ItemInput
}

type UpdateInvoiceInput struct {
	ID          string
	TenantID    string
	ClientID    string
	ClientName  string
	Currency    string
	IssueDate   time.Time
	DueDate     time.Time
	Status      Status
	PaymentInfo string
	Items       []ItemInput
}
