package forms

import (
	"context"
	"errors"

	formsdomain "flowspace-go/internal/domain/forms"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListForms(ctx context.Context, tenantID string) ([]formsdomain.Form, error) {
	var items []formsdomain.Form
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetFormByID(ctx context.Context, tenantID, formID string) (*formsdomain.Form, error) {
	var form formsdomain.Form
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, formID).
		First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, formsdomain.ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *PostgresRepository) CreateForm(ctx context.Context, form *formsdomain.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *PostgresRepository) UpdateForm(ctx context.Context, form *formsdomain.Form) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", form.ID, form.TenantID).
		Save(form).Error
}

func (r *PostgresRepository) DeleteForm(ctx context.Context, tenantID, formID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&formsdomain.Form{}, "tenant_id = ? AND id = ?", tenantID, formID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) IncrementSubmissions(ctx context.Context, tenantID, formID string) error {
	result := r.db.WithContext(ctx).
		Model(&formsdomain.Form{}).
		Where("id = ? AND tenant_id = ?", formID, tenantID).
		UpdateColumn("submissions", gorm.Expr("submissions + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return formsdomain.ErrFormNotFound
	}
	return nil
}
