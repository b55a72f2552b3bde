package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"flowspace-go/internal/domain/employees"
)

const minPasswordLength = 8

type Service struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(repo Repository, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// Register creates a new tenant and its first user, who becomes the admin.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*LoginResult, error) {
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, ErrCompanyRequired
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, employees.ErrWeakPassword
	}

	if existing, err := s.repo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, employees.ErrEmailTaken
	} else if err != nil && !errors.Is(err, employees.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tenant := Tenant{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(input.CompanyName),
	}
	if err := s.repo.CreateTenant(ctx, &tenant); err != nil {
		return nil, err
	}

	user := employees.User{
		ID:           uuid.NewString(),
		TenantID:     tenant.ID,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Role:         employees.RoleAdmin,
		JoinDate:     s.now().UTC(),
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: &user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, employees.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token}, nil
}

// CurrentUser resolves the authenticated user for session introspection.
func (s *Service) CurrentUser(ctx context.Context, session Session) (*employees.User, error) {
	return s.repo.GetUserByID(ctx, session.UserID)
}

type sessionClaims struct {
	TenantID string `json:"tid"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) issueToken(user *employees.User) (string, error) {
	now := s.now()
	claims := sessionClaims{
		TenantID: user.TenantID,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature and expiry and returns the session.
func (s *Service) VerifyToken(tokenString string) (*Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.TenantID == "" {
		return nil, ErrInvalidToken
	}

	return &Session{
		UserID:   claims.Subject,
		TenantID: claims.TenantID,
		Role:     employees.Role(claims.Role),
	}, nil
}

// TokenTTL is exposed so the HTTP layer can align cookie expiry.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}
