package crm

import (
	"context"
	"errors"

	crmdomain "flowspace-go/internal/domain/crm"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListContacts(ctx context.Context, tenantID string) ([]crmdomain.Contact, error) {
	var items []crmdomain.Contact
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetContactByID(ctx context.Context, tenantID, contactID string) (*crmdomain.Contact, error) {
	var contact crmdomain.Contact
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, contactID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmdomain.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *PostgresRepository) CreateContact(ctx context.Context, contact *crmdomain.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *PostgresRepository) UpdateContact(ctx context.Context, contact *crmdomain.Contact) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", contact.ID, contact.TenantID).
		Save(contact).Error
}

func (r *PostgresRepository) DeleteContact(ctx context.Context, tenantID, contactID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&crmdomain.Contact{}, "tenant_id = ? AND id = ?", tenantID, contactID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListOpportunities(ctx context.Context, tenantID string) ([]crmdomain.Opportunity, error) {
	var items []crmdomain.Opportunity
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetOpportunityByID(ctx context.Context, tenantID, opportunityID string) (*crmdomain.Opportunity, error) {
	var opportunity crmdomain.Opportunity
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, opportunityID).
		First(&opportunity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crmdomain.ErrOpportunityNotFound
		}
		return nil, err
	}
	return &opportunity, nil
}

func (r *PostgresRepository) CreateOpportunity(ctx context.Context, opportunity *crmdomain.Opportunity) error {
	return r.db.WithContext(ctx).Create(opportunity).Error
}

func (r *PostgresRepository) UpdateOpportunity(ctx context.Context, opportunity *crmdomain.Opportunity) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", opportunity.ID, opportunity.TenantID).
		Save(opportunity).Error
}
