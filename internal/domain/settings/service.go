package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Company returns the tenant's settings. A tenant that never saved any
// surfaces as ErrSettingsNotFound rather than an implicit empty row.
func (s *Service) Company(ctx context.Context, tenantID string) (*CompanySettings, error) {
	return s.repo.GetCompany(ctx, tenantID)
}

func (s *Service) UpdateCompany(ctx context.Context, input UpdateCompanyInput) (*CompanySettings, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	company, err := s.repo.GetCompany(ctx, input.TenantID)
	if errors.Is(err, ErrSettingsNotFound) {
		company = &CompanySettings{ID: uuid.NewString(), TenantID: input.TenantID}
	} else if err != nil {
		return nil, err
	}

	company.Name = strings.TrimSpace(input.Name)
	company.Address = input.Address
	company.Email = strings.ToLower(strings.TrimSpace(input.Email))
	company.Phone = input.Phone
	company.Website = input.Website
	company.TaxID = input.TaxID
	company.PaymentInfo = input.PaymentInfo

	if err := s.repo.UpsertCompany(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *Service) Division(ctx context.Context, tenantID string) (*PartnerDivision, error) {
	return s.repo.GetDivision(ctx, tenantID)
}

// SaveDivision stores the calculator state so both partners see the same
// numbers next session.
func (s *Service) SaveDivision(ctx context.Context, input SaveDivisionInput) (*PartnerDivision, error) {
	if input.Income.IsNegative() {
		return nil, ErrNegativeAmount
	}
	for _, item := range append(append([]LineItem{}, input.PartnerA...), input.PartnerB...) {
		if item.Amount.IsNegative() {
			return nil, ErrNegativeAmount
		}
	}

	division, err := s.repo.GetDivision(ctx, input.TenantID)
	if errors.Is(err, ErrDivisionNotFound) {
		division = &PartnerDivision{ID: uuid.NewString(), TenantID: input.TenantID}
	} else if err != nil {
		return nil, err
	}

	division.Income = input.Income
	division.PartnerA = input.PartnerA
	division.PartnerB = input.PartnerB
	if name := strings.TrimSpace(input.PartnerAName); name != "" {
		division.PartnerAName = name
	}
	if name := strings.TrimSpace(input.PartnerBName); name != "" {
		division.PartnerBName = name
	}

	if err := s.repo.UpsertDivision(ctx, division); err != nil {
		return nil, err
	}
	return division, nil
}
