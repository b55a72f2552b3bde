package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRow and ExpenseRow are the minimal projections the report
// service needs. Statuses arrive as stored, uninterpreted.
type InvoiceRow struct {
	Amount    decimal.Decimal
	IssueDate time.Time
	Status    string
}

type ExpenseRow struct {
	Amount decimal.Decimal
	Date   time.Time
	Status string
}

type Repository interface {
	ListInvoiceRows(ctx context.Context, tenantID string) ([]InvoiceRow, error)
	ListExpenseRows(ctx context.Context, tenantID string) ([]ExpenseRow, error)
}
