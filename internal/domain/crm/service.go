package crm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListContacts(ctx context.Context, tenantID string) ([]Contact, error) {
	return s.repo.ListContacts(ctx, tenantID)
}

func (s *Service) CreateContact(ctx context.Context, input CreateContactInput) (*Contact, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	contact := Contact{
		ID:            uuid.NewString(),
		TenantID:      input.TenantID,
		Name:          strings.TrimSpace(input.Name),
		Company:       input.Company,
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:         input.Phone,
		Tags:          normalizeTags(input.Tags),
		LastContacted: input.LastContacted,
	}

	if err := s.repo.CreateContact(ctx, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *Service) UpdateContact(ctx context.Context, input UpdateContactInput) (*Contact, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	contact, err := s.repo.GetContactByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	contact.Name = strings.TrimSpace(input.Name)
	contact.Company = input.Company
	contact.Email = strings.ToLower(strings.TrimSpace(input.Email))
	contact.Phone = input.Phone
	contact.Tags = normalizeTags(input.Tags)
	contact.LastContacted = input.LastContacted
	contact.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *Service) DeleteContact(ctx context.Context, tenantID, contactID string) error {
	deleted, err := s.repo.DeleteContact(ctx, tenantID, contactID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactNotFound
	}
	return nil
}

func (s *Service) ListOpportunities(ctx context.Context, tenantID string) ([]Opportunity, error) {
	return s.repo.ListOpportunities(ctx, tenantID)
}

func (s *Service) CreateOpportunity(ctx context.Context, input CreateOpportunityInput) (*Opportunity, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.Probability < 0 || input.Probability > 100 {
		return nil, ErrInvalidProbability
	}

	opportunity := Opportunity{
		ID:                uuid.NewString(),
		TenantID:          input.TenantID,
		ContactID:         input.ContactID,
		Title:             strings.TrimSpace(input.Title),
		Value:             input.Value,
		Stage:             StageNew,
		Probability:       input.Probability,
		ExpectedCloseDate: input.ExpectedCloseDate,
	}

	if err := s.repo.CreateOpportunity(ctx, &opportunity); err != nil {
		return nil, err
	}
	return &opportunity, nil
}

// MoveStage drags an opportunity to another pipeline column.
func (s *Service) MoveStage(ctx context.Context, tenantID, opportunityID string, stage Stage) (*Opportunity, error) {
	if !stage.Valid() {
		return nil, ErrInvalidStage
	}

	opportunity, err := s.repo.GetOpportunityByID(ctx, tenantID, opportunityID)
	if err != nil {
		return nil, err
	}

	opportunity.Stage = stage
	if stage == StageWon {
		opportunity.Probability = 100
	}
	opportunity.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateOpportunity(ctx, opportunity); err != nil {
		return nil, err
	}
	return opportunity, nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
