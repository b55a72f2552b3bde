package auth

import (
	"context"

	"flowspace-go/internal/domain/employees"
)

type Repository interface {
	CreateTenant(ctx context.Context, tenant *Tenant) error
	GetTenantByID(ctx context.Context, tenantID string) (*Tenant, error)
	GetUserByEmail(ctx context.Context, email string) (*employees.User, error)
	GetUserByID(ctx context.Context, userID string) (*employees.User, error)
	CreateUser(ctx context.Context, user *employees.User) error
}
