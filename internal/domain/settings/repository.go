package settings

import "context"

type Repository interface {
	GetCompany(ctx context.Context, tenantID string) (*CompanySettings, error)
	// UpsertCompany writes the tenant's single settings row.
	UpsertCompany(ctx context.Context, company *CompanySettings) error

	GetDivision(ctx context.Context, tenantID string) (*PartnerDivision, error)
	UpsertDivision(ctx context.Context, division *PartnerDivision) error
}
