package expenses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListExpenses(ctx context.Context, tenantID string, filter ListFilter) ([]Expense, int64, error) {
	return s.repo.ListExpenses(ctx, tenantID, filter)
}

func (s *Service) GetExpense(ctx context.Context, tenantID, expenseID string) (*Expense, error) {
	return s.repo.GetExpenseByID(ctx, tenantID, expenseID)
}

func (s *Service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	if err := validateInput(input.Description, input.Category); err != nil {
		return nil, err
	}
	if input.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	expense := Expense{
		ID:          uuid.NewString(),
		TenantID:    input.TenantID,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Category:    strings.TrimSpace(input.Category),
		Date:        input.Date,
		Status:      StatusPending,
	}

	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *Service) UpdateExpense(ctx context.Context, input UpdateExpenseInput) (*Expense, error) {
	if err := validateInput(input.Description, input.Category); err != nil {
		return nil, err
	}
	if input.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	expense, err := s.repo.GetExpenseByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	expense.Description = strings.TrimSpace(input.Description)
	expense.Amount = input.Amount
	expense.Category = strings.TrimSpace(input.Category)
	expense.Date = input.Date
	expense.Status = input.Status
	expense.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ToggleStatus flips an approved expense back to pending; anything else
// becomes approved. Mirrors the dashboard's one-click approval control.
func (s *Service) ToggleStatus(ctx context.Context, tenantID, expenseID string) (*Expense, error) {
	expense, err := s.repo.GetExpenseByID(ctx, tenantID, expenseID)
	if err != nil {
		return nil, err
	}

	if expense.Status == StatusApproved {
		expense.Status = StatusPending
	} else {
		expense.Status = StatusApproved
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *Service) DeleteExpense(ctx context.Context, tenantID, expenseID string) error {
	deleted, err := s.repo.DeleteExpense(ctx, tenantID, expenseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

func validateInput(description, category string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}
