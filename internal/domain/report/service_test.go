package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeReportRepo struct {
	invoices []InvoiceRow
	expenses []ExpenseRow
}

func (f *fakeReportRepo) ListInvoiceRows(ctx context.Context, tenantID string) ([]InvoiceRow, error) {
	return f.invoices, nil
}

func (f *fakeReportRepo) ListExpenseRows(ctx context.Context, tenantID string) ([]ExpenseRow, error) {
	return f.expenses, nil
}

func TestFinancialsNormalizesStatuses(t *testing.T) {
	repo := &fakeReportRepo{
		invoices: []InvoiceRow{
			{Amount: decimal.NewFromInt(1000), IssueDate: date(2024, time.March, 10), Status: "Paid"},
			{Amount: decimal.NewFromInt(500), IssueDate: date(2024, time.April, 1), Status: "Sent"},
			{Amount: decimal.NewFromInt(200), IssueDate: date(2021, time.April, 1), Status: "Overdue"},
			{Amount: decimal.NewFromInt(999), IssueDate: date(2024, time.April, 2), Status: "Draft"},
		},
		expenses: []ExpenseRow{
			{Amount: decimal.NewFromInt(400), Date: date(2024, time.March, 12), Status: "Approved"},
			{Amount: decimal.NewFromInt(50), Date: date(2024, time.March, 13), Status: "Pending"},
			{Amount: decimal.NewFromInt(60), Date: date(2024, time.March, 14), Status: "Rejected"},
		},
	}

	svc := NewService(repo)
	svc.now = func() time.Time { return date(2024, time.June, 15) }

	result, err := svc.Financials(context.Background(), "tenant-1", YearWindow())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !result.Summary.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected income 1000 (paid only), got %s", result.Summary.TotalIncome)
	}
	if !result.Summary.TotalExpense.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected expense 400 (approved only), got %s", result.Summary.TotalExpense)
	}
	// Sent + Overdue across all time, the 2021 invoice included.
	if !result.Summary.PendingIncome.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected pending 700, got %s", result.Summary.PendingIncome)
	}
	if !result.Summary.NetProfit.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected net 600, got %s", result.Summary.NetProfit)
	}
}

func TestFinancialsUsesInjectedClock(t *testing.T) {
	repo := &fakeReportRepo{
		invoices: []InvoiceRow{
			{Amount: decimal.NewFromInt(100), IssueDate: date(2022, time.July, 4), Status: "Paid"},
		},
	}

	svc := NewService(repo)
	svc.now = func() time.Time { return date(2022, time.July, 20) }

	result, err := svc.Financials(context.Background(), "tenant-1", MonthWindow())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Summary.TotalIncome.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected july 2022 invoice inside month window, got %s", result.Summary.TotalIncome)
	}
	if len(result.Series) != 31 {
		t.Fatalf("expected 31 daily buckets for July, got %d", len(result.Series))
	}
}
