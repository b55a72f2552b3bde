package settings

import (
	"context"
	"errors"

	settingsdomain "flowspace-go/internal/domain/settings"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetCompany(ctx context.Context, tenantID string) (*settingsdomain.CompanySettings, error) {
	var company settingsdomain.CompanySettings
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, settingsdomain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *PostgresRepository) UpsertCompany(ctx context.Context, company *settingsdomain.CompanySettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address", "email", "phone", "website", "tax_id", "payment_info", "updated_at",
			}),
		}).
		Create(company).Error
}

func (r *PostgresRepository) GetDivision(ctx context.Context, tenantID string) (*settingsdomain.PartnerDivision, error) {
	var division settingsdomain.PartnerDivision
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&division).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, settingsdomain.ErrDivisionNotFound
		}
		return nil, err
	}
	return &division, nil
}

func (r *PostgresRepository) UpsertDivision(ctx context.Context, division *settingsdomain.PartnerDivision) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"income", "partner_a_name", "partner_b_name", "partner_a", "partner_b", "updated_at",
			}),
		}).
		Create(division).Error
}
