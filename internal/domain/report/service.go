package report

import (
	"context"
	"time"
)

// Invoice and expense statuses as persisted by their owning domains.
const (
	statusPaid     = "Paid"
	statusSent     = "Sent"
	statusOverdue  = "Overdue"
	statusApproved = "Approved"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Financials loads the tenant's invoices and expenses, normalizes them
// into monetary events and runs the aggregation engine over them. Only
// paid invoices and approved expenses enter the windowed totals; sent and
// overdue invoices feed the all-time pending figure.
func (s *Service) Financials(ctx context.Context, tenantID string, window ReportWindow) (AggregationResult, error) {
	invoiceRows, err := s.repo.ListInvoiceRows(ctx, tenantID)
	if err != nil {
		return AggregationResult{}, err
	}
	expenseRows, err := s.repo.ListExpenseRows(ctx, tenantID)
	if err != nil {
		return AggregationResult{}, err
	}

	events := make([]MonetaryEvent, 0, len(invoiceRows)+len(expenseRows))
	var pending []MonetaryEvent

	for _, row := range invoiceRows {
		switch row.Status {
		case statusPaid:
			events = append(events, MonetaryEvent{
				Amount:     row.Amount,
				OccurredOn: row.IssueDate,
				Kind:       KindIncome,
			})
		case statusSent, statusOverdue:
			pending = append(pending, MonetaryEvent{
				Amount:     row.Amount,
				OccurredOn: row.IssueDate,
				Kind:       KindIncome,
			})
		}
	}

	for _, row := range expenseRows {
		if row.Status != statusApproved {
			continue
		}
		events = append(events, MonetaryEvent{
			Amount:     row.Amount,
			OccurredOn: row.Date,
			Kind:       KindExpense,
		})
	}

	return Aggregate(events, pending, window, s.now())
}
