package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanySettings has exactly one row per tenant.
type CompanySettings struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	TenantID    string `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Address     string
	Email       string
	Phone       string
	Website     string
	TaxID       string
	PaymentInfo string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type LineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// PartnerDivision is the saved state of the profit-split calculator,
// one snapshot per tenant.
type PartnerDivision struct {
	ID           string          `gorm:"type:uuid;primaryKey"`
	TenantID     string          `gorm:"type:uuid;uniqueIndex;not null"`
	Income       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PartnerAName string          `gorm:"not null;default:'Partner A'"`
	PartnerBName string          `gorm:"not null;default:'Partner B'"`
	PartnerA     []LineItem      `gorm:"serializer:json"`
	PartnerB     []LineItem      `gorm:"serializer:json"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}

type UpdateCompanyInput struct {
	TenantID    string
	Name        string
	Address     string
	Email       string
	Phone       string
	Website     string
	TaxID       string
	PaymentInfo string
}

type SaveDivisionInput struct {
	TenantID     string
	Income       decimal.Decimal
	PartnerAName string
	PartnerBName string
	PartnerA     []LineItem
	PartnerB     []LineItem
}
