package crm

import "context"

type Repository interface {
	ListContacts(ctx context.Context, tenantID string) ([]Contact, error)
	GetContactByID(ctx context.Context, tenantID, contactID string) (*Contact, error)
	CreateContact(ctx context.Context, contact *Contact) error
	UpdateContact(ctx context.Context, contact *Contact) error
	DeleteContact(ctx context.Context, tenantID, contactID string) (bool, error)

	ListOpportunities(ctx context.Context, tenantID string) ([]Opportunity, error)
	GetOpportunityByID(ctx context.Context, tenantID, opportunityID string) (*Opportunity, error)
	CreateOpportunity(ctx context.Context, opportunity *Opportunity) error
	UpdateOpportunity(ctx context.Context, opportunity *Opportunity) error
}
