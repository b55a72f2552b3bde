package invoices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeInvoicesRepo struct {
	invoices map[string]*Invoice
	items    map[string][]InvoiceItem
}

func newFakeInvoicesRepo() *fakeInvoicesRepo {
	return &fakeInvoicesRepo{
		invoices: make(map[string]*Invoice),
		items:    make(map[string][]InvoiceItem),
	}
}

func (r *fakeInvoicesRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeInvoicesRepo) ListInvoices(ctx context.Context, tenantID string, filter ListFilter) ([]Invoice, int64, error) {
	items := make([]Invoice, 0)
	for _, invoice := range r.invoices {
		if invoice.TenantID != tenantID {
			continue
		}
		if filter.Status != "" && invoice.Status != filter.Status {
			continue
		}
		items = append(items, *invoice)
	}
	return items, int64(len(items)), nil
}

func (r *fakeInvoicesRepo) GetInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*Invoice, error) {
	invoice, ok := r.invoices[invoiceID]
	if !ok || invoice.TenantID != tenantID {
		return nil, ErrInvoiceNotFound
	}
	clone := *invoice
	return &clone, nil
}

func (r *fakeInvoicesRepo) CreateInvoice(ctx context.Context, invoice *Invoice) error {
	clone := *invoice
	r.invoices[invoice.ID] = &clone
	return nil
}

func (r *fakeInvoicesRepo) UpdateInvoice(ctx context.Context, invoice *Invoice) error {
	if _, ok := r.invoices[invoice.ID]; !ok {
		return ErrInvoiceNotFound
	}
	clone := *invoice
	r.invoices[invoice.ID] = &clone
	return nil
}

func (r *fakeInvoicesRepo) DeleteInvoice(ctx context.Context, tenantID, invoiceID string) (bool, error) {
	invoice, ok := r.invoices[invoiceID]
	if !ok || invoice.TenantID != tenantID {
		return false, nil
	}
	delete(r.invoices, invoiceID)
	delete(r.items, invoiceID)
	return true, nil
}

func (r *fakeInvoicesRepo) ReplaceItems(ctx context.Context, invoiceID string, items []InvoiceItem) error {
	r.items[invoiceID] = append([]InvoiceItem{}, items...)
	return nil
}

func (r *fakeInvoicesRepo) GetItemsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]InvoiceItem, error) {
	result := make(map[string][]InvoiceItem, len(invoiceIDs))
	for _, id := range invoiceIDs {
		result[id] = append([]InvoiceItem{}, r.items[id]...)
	}
	return result, nil
}

func testCreateInput() CreateInvoiceInput {
	return CreateInvoiceInput{
		TenantID:   "tenant-1",
		ClientID:   "client-1",
		ClientName: "Riverside Soccer League",
		Currency:   "usd",
		IssueDate:  time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		Items: []ItemInput{
			{Description: "team photos", Quantity: 3, Price: decimal.NewFromInt(150)},
			{Description: "prints package", Quantity: 2, Price: decimal.RequireFromString("24.50")},
		},
	}
}

func TestCreateInvoiceComputesAmountFromItems(t *testing.T) {
	svc := NewService(newFakeInvoicesRepo())

	created, err := svc.CreateInvoice(context.Background(), testCreateInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// 3*150 + 2*24.50 = 499
	if !created.Amount.Equal(decimal.NewFromInt(499)) {
		t.Fatalf("expected amount 499, got %s", created.Amount)
	}
	if created.Status != StatusDraft {
		t.Fatalf("expected draft, got %s", created.Status)
	}
	if created.Currency != "USD" {
		t.Fatalf("expected normalized currency USD, got %s", created.Currency)
	}
	if len(created.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(created.Items))
	}
	for _, item := range created.Items {
		if item.InvoiceID != created.ID {
			t.Fatalf("item not linked to invoice: %+v", item)
		}
	}
}

func TestCreateInvoiceRequiresItems(t *testing.T) {
	svc := NewService(newFakeInvoicesRepo())

	input := testCreateInput()
	input.Items = nil
	if _, err := svc.CreateInvoice(context.Background(), input); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}

	input = testCreateInput()
	input.Items[0].Quantity = 0
	if _, err := svc.CreateInvoice(context.Background(), input); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem for zero quantity, got %v", err)
	}

	input = testCreateInput()
	input.Items[1].Price = decimal.NewFromInt(-1)
	if _, err := svc.CreateInvoice(context.Background(), input); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem for negative price, got %v", err)
	}
}

func TestSendAndPayTransitions(t *testing.T) {
	repo := newFakeInvoicesRepo()
	svc := NewService(repo)

	created, err := svc.CreateInvoice(context.Background(), testCreateInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	sent, err := svc.SendInvoice(context.Background(), "tenant-1", created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sent.Status != StatusSent {
		t.Fatalf("expected sent, got %s", sent.Status)
	}

	paid, err := svc.MarkPaid(context.Background(), "tenant-1", created.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if paid.Status != StatusPaid {
		t.Fatalf("expected paid, got %s", paid.Status)
	}

	if _, err := svc.SendInvoice(context.Background(), "tenant-1", created.ID); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
}

func TestUpdateInvoiceRecomputesAmount(t *testing.T) {
	repo := newFakeInvoicesRepo()
	svc := NewService(repo)

	created, err := svc.CreateInvoice(context.Background(), testCreateInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	updated, err := svc.UpdateInvoice(context.Background(), UpdateInvoiceInput{
		ID:         created.ID,
		TenantID:   "tenant-1",
		ClientID:   created.ClientID,
		ClientName: created.ClientName,
		Currency:   created.Currency,
		IssueDate:  created.IssueDate,
		DueDate:    created.DueDate,
		Status:     StatusSent,
		Items: []ItemInput{
			{Description: "gallery hosting", Quantity: 1, Price: decimal.NewFromInt(75)},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !updated.Amount.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected recomputed amount 75, got %s", updated.Amount)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected items replaced, got %d", len(updated.Items))
	}
}

func TestGetInvoiceScopedToTenant(t *testing.T) {
	repo := newFakeInvoicesRepo()
	svc := NewService(repo)

	created, err := svc.CreateInvoice(context.Background(), testCreateInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := svc.GetInvoice(context.Background(), "tenant-2", created.ID); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound for foreign tenant, got %v", err)
	}
}
