package auth

import (
	"time"

	"flowspace-go/internal/domain/employees"
)

// Tenant is one company workspace. Every other entity hangs off a tenant.
type Tenant struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type RegisterInput struct {
	CompanyName string
	Name        string
	Email       string
	Password    string
}

type Credentials struct {
	Email    string
	Password string
}

// Session is what the middleware puts into the request context after
// verifying the cookie.
type Session struct {
	UserID   string
	TenantID string
	Role     employees.Role
}

type LoginResult struct {
	User  *employees.User
	Token string
}
