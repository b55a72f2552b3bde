package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"flowspace-go/internal/domain/employees"
)

type fakeAuthRepo struct {
	tenants map[string]*Tenant
	users   map[string]*employees.User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		tenants: make(map[string]*Tenant),
		users:   make(map[string]*employees.User),
	}
}

func (r *fakeAuthRepo) CreateTenant(ctx context.Context, tenant *Tenant) error {
	clone := *tenant
	r.tenants[tenant.ID] = &clone
	return nil
}

func (r *fakeAuthRepo) GetTenantByID(ctx context.Context, tenantID string) (*Tenant, error) {
	tenant, ok := r.tenants[tenantID]
	if !ok {
		return nil, errors.New("tenant not found")
	}
	clone := *tenant
	return &clone, nil
}

func (r *fakeAuthRepo) GetUserByEmail(ctx context.Context, email string) (*employees.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, employees.ErrUserNotFound
}

func (r *fakeAuthRepo) GetUserByID(ctx context.Context, userID string) (*employees.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, employees.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeAuthRepo) CreateUser(ctx context.Context, user *employees.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, "test-secret", time.Hour)
	return svc
}

func TestRegisterCreatesTenantAndAdmin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestService(repo)

	result, err := svc.Register(context.Background(), RegisterInput{
		CompanyName: "FlowSpace Studio",
		Name:        "Dana Ortiz",
		Email:       "Dana@FlowSpace.io",
		Password:    "first-login-pass",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.User.Role != employees.RoleAdmin {
		t.Fatalf("expected first user to be admin, got %s", result.User.Role)
	}
	if result.User.Email != "dana@flowspace.io" {
		t.Fatalf("expected lowered email, got %q", result.User.Email)
	}
	if len(repo.tenants) != 1 {
		t.Fatalf("expected one tenant, got %d", len(repo.tenants))
	}
	if result.Token == "" {
		t.Fatalf("expected a session token")
	}

	_, err = svc.Register(context.Background(), RegisterInput{
		CompanyName: "Other Co",
		Name:        "Dana Again",
		Email:       "dana@flowspace.io",
		Password:    "another-pass-123",
	})
	if !errors.Is(err, employees.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{
		CompanyName: "FlowSpace Studio",
		Name:        "Dana Ortiz",
		Email:       "dana@flowspace.io",
		Password:    "first-login-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(ctx, Credentials{Email: "DANA@flowspace.io", Password: "first-login-pass"})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}

	session, err := svc.VerifyToken(result.Token)
	if err != nil {
		t.Fatalf("expected token to verify, got %v", err)
	}
	if session.UserID != registered.User.ID || session.TenantID != registered.User.TenantID {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.Role != employees.RoleAdmin {
		t.Fatalf("expected admin role in session, got %s", session.Role)
	}

	if _, err := svc.Login(ctx, Credentials{Email: "dana@flowspace.io", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, Credentials{Email: "nobody@flowspace.io", Password: "first-login-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestService(repo)
	issued := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	result, err := svc.Register(context.Background(), RegisterInput{
		CompanyName: "FlowSpace Studio",
		Name:        "Dana Ortiz",
		Email:       "dana@flowspace.io",
		Password:    "first-login-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.VerifyToken(result.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}

	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
