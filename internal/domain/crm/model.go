package crm

import (
	"time"

	"github.com/shopspring/decimal"
)

type Contact struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	TenantID      string `gorm:"type:uuid;index;not null"`
	Name          string `gorm:"not null"`
	Company       string
	Email         string
	Phone         string
	Tags          []string  `gorm:"serializer:json"`
	LastContacted time.Time `gorm:"type:date"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// Stage is the sales pipeline column an opportunity sits in.
type Stage string

const (
	StageNew         Stage = "New"
	StageQualified   Stage = "Qualified"
	StageProposal    Stage = "Proposal"
	StageNegotiation Stage = "Negotiation"
	StageWon         Stage = "Won"
)

func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageQualified, StageProposal, StageNegotiation, StageWon:
		return true
	}
	return false
}

type Opportunity struct {
	ID                string          `gorm:"type:uuid;primaryKey"`
	TenantID          string          `gorm:"type:uuid;index;not null"`
	ContactID         string          `gorm:"type:uuid;index"`
	Title             string          `gorm:"not null"`
	Value             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stage             Stage           `gorm:"not null;default:'New'"`
	Probability       int             `gorm:"not null;default:0"`
	ExpectedCloseDate time.Time       `gorm:"type:date"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

type CreateContactInput struct {
	TenantID      string
	Name          string
	Company       string
	Email         string
	Phone         string
	Tags          []string
	LastContacted time.Time
}

type UpdateContactInput struct {
	ID            string
	TenantID      string
	Name          string
	Company       string
	Email         string
	Phone         string
	Tags          []string
	LastContacted time.Time
}

type CreateOpportunityInput struct {
	TenantID          string
	ContactID         string
	Title             string
	Value             decimal.Decimal
	Probability       int
	ExpectedCloseDate time.Time
}
