package crm

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type fakeCRMRepo struct {
	contacts      map[string]*Contact
	opportunities map[string]*Opportunity
}

func newFakeCRMRepo() *fakeCRMRepo {
	return &fakeCRMRepo{
		contacts:      make(map[string]*Contact),
		opportunities: make(map[string]*Opportunity),
	}
}

func (r *fakeCRMRepo) ListContacts(ctx context.Context, tenantID string) ([]Contact, error) {
	items := make([]Contact, 0)
	for _, contact := range r.contacts {
		if contact.TenantID == tenantID {
			items = append(items, *contact)
		}
	}
	return items, nil
}

func (r *fakeCRMRepo) GetContactByID(ctx context.Context, tenantID, contactID string) (*Contact, error) {
	contact, ok := r.contacts[contactID]
	if !ok || contact.TenantID != tenantID {
		return nil, ErrContactNotFound
	}
	clone := *contact
	return &clone, nil
}

func (r *fakeCRMRepo) CreateContact(ctx context.Context, contact *Contact) error {
	clone := *contact
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *fakeCRMRepo) UpdateContact(ctx context.Context, contact *Contact) error {
	if _, ok := r.contacts[contact.ID]; !ok {
		return ErrContactNotFound
	}
	clone := *contact
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *fakeCRMRepo) DeleteContact(ctx context.Context, tenantID, contactID string) (bool, error) {
	contact, ok := r.contacts[contactID]
	if !ok || contact.TenantID != tenantID {
		return false, nil
	}
	delete(r.contacts, contactID)
	return true, nil
}

func (r *fakeCRMRepo) ListOpportunities(ctx context.Context, tenantID string) ([]Opportunity, error) {
	items := make([]Opportunity, 0)
	for _, opportunity := range r.opportunities {
		if opportunity.TenantID == tenantID {
			items = append(items, *opportunity)
		}
	}
	return items, nil
}

func (r *fakeCRMRepo) GetOpportunityByID(ctx context.Context, tenantID, opportunityID string) (*Opportunity, error) {
	opportunity, ok := r.opportunities[opportunityID]
	if !ok || opportunity.TenantID != tenantID {
		return nil, ErrOpportunityNotFound
	}
	clone := *opportunity
	return &clone, nil
}

func (r *fakeCRMRepo) CreateOpportunity(ctx context.Context, opportunity *Opportunity) error {
	clone := *opportunity
	r.opportunities[opportunity.ID] = &clone
	return nil
}

func (r *fakeCRMRepo) UpdateOpportunity(ctx context.Context, opportunity *Opportunity) error {
	if _, ok := r.opportunities[opportunity.ID]; !ok {
		return ErrOpportunityNotFound
	}
	clone := *opportunity
	r.opportunities[opportunity.ID] = &clone
	return nil
}

func TestCreateContactNormalizes(t *testing.T) {
	svc := NewService(newFakeCRMRepo())

	contact, err := svc.CreateContact(context.Background(), CreateContactInput{
		TenantID: "tenant-1",
		Name:     "  Jordan Reyes ",
		Email:    " Jordan@League.ORG ",
		Tags:     []string{"league", " league ", "", "schools"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if contact.Name != "Jordan Reyes" {
		t.Fatalf("expected trimmed name, got %q", contact.Name)
	}
	if contact.Email != "jordan@league.org" {
		t.Fatalf("expected lowered email, got %q", contact.Email)
	}
	if len(contact.Tags) != 2 {
		t.Fatalf("expected deduplicated tags, got %v", contact.Tags)
	}
}

func TestMoveStageWonForcesProbability(t *testing.T) {
	repo := newFakeCRMRepo()
	svc := NewService(repo)

	opportunity, err := svc.CreateOpportunity(context.Background(), CreateOpportunityInput{
		TenantID:    "tenant-1",
		Title:       "Fall league contract",
		Value:       decimal.NewFromInt(12000),
		Probability: 40,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if opportunity.Stage != StageNew {
		t.Fatalf("expected new stage, got %s", opportunity.Stage)
	}

	moved, err := svc.MoveStage(context.Background(), "tenant-1", opportunity.ID, StageWon)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if moved.Stage != StageWon || moved.Probability != 100 {
		t.Fatalf("unexpected won state: %+v", moved)
	}

	if _, err := svc.MoveStage(context.Background(), "tenant-1", opportunity.ID, Stage("Lost")); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("expected ErrInvalidStage, got %v", err)
	}
}

func TestCreateOpportunityValidatesProbability(t *testing.T) {
	svc := NewService(newFakeCRMRepo())

	_, err := svc.CreateOpportunity(context.Background(), CreateOpportunityInput{
		TenantID:    "tenant-1",
		Title:       "School portraits",
		Value:       decimal.NewFromInt(3000),
		Probability: 120,
	})
	if !errors.Is(err, ErrInvalidProbability) {
		t.Fatalf("expected ErrInvalidProbability, got %v", err)
	}
}
