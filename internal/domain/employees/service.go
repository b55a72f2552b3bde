package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListUsers(ctx context.Context, tenantID string) ([]User, error) {
	return s.repo.ListUsers(ctx, tenantID)
}

func (s *Service) GetUser(ctx context.Context, tenantID, userID string) (*User, error) {
	return s.repo.GetUserByID(ctx, tenantID, userID)
}

func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	role := input.Role
	if role == "" {
		role = RoleEmployee
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	if existing, err := s.repo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		TenantID:     input.TenantID,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Phone:        input.Phone,
		Role:         role,
		Position:     input.Position,
		Department:   input.Department,
		JoinDate:     input.JoinDate,
		Salary:       input.Salary,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	user, err := s.repo.GetUserByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(input.Name)
	user.Phone = input.Phone
	user.Position = input.Position
	user.Department = input.Department
	user.Salary = input.Salary
	user.AvatarURL = input.AvatarURL

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateRole(ctx context.Context, tenantID, userID string, role Role) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	user, err := s.repo.GetUserByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, tenantID, userID string) error {
	deleted, err := s.repo.DeleteUser(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// MarkAttendance records or replaces the day's entry for a user.
func (s *Service) MarkAttendance(ctx context.Context, input MarkAttendanceInput) (*AttendanceRecord, error) {
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if _, err := s.repo.GetUserByID(ctx, input.TenantID, input.UserID); err != nil {
		return nil, err
	}

	day := input.Date
	if day.IsZero() {
		day = s.now()
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	record := AttendanceRecord{
		ID:          uuid.NewString(),
		TenantID:    input.TenantID,
		UserID:      input.UserID,
		Date:        day,
		Status:      input.Status,
		CheckIn:     input.CheckIn,
		CheckOut:    input.CheckOut,
		LateMinutes: input.LateMinutes,
	}
	if input.Status != AttendanceLate {
		record.LateMinutes = 0
	}

	if err := s.repo.UpsertAttendance(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// MonthAttendance lists every record in the given month for the tenant.
func (s *Service) MonthAttendance(ctx context.Context, tenantID string, year int, month time.Month) ([]AttendanceRecord, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.repo.ListAttendanceByMonth(ctx, tenantID, from, to)
}
