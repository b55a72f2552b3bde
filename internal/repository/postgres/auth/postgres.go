package auth

import (
	"context"
	"errors"

	authdomain "flowspace-go/internal/domain/auth"
	employeesdomain "flowspace-go/internal/domain/employees"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateTenant(ctx context.Context, tenant *authdomain.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

func (r *PostgresRepository) GetTenantByID(ctx context.Context, tenantID string) (*authdomain.Tenant, error) {
	var tenant authdomain.Tenant
	if err := r.db.WithContext(ctx).
		Where("id = ?", tenantID).
		First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*employeesdomain.User, error) {
	var user employeesdomain.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeesdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, userID string) (*employeesdomain.User, error) {
	var user employeesdomain.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeesdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *employeesdomain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
