package expenses

import "context"

type Repository interface {
	ListExpenses(ctx context.Context, tenantID string, filter ListFilter) ([]Expense, int64, error)
	GetExpenseByID(ctx context.Context, tenantID, expenseID string) (*Expense, error)
	CreateExpense(ctx context.Context, expense *Expense) error
	UpdateExpense(ctx context.Context, expense *Expense) error
	DeleteExpense(ctx context.Context, tenantID, expenseID string) (bool, error)
}
