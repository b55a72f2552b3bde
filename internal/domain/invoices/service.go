package invoices

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListInvoices(ctx context.Context, tenantID string, filter ListFilter) ([]InvoiceWithItems, int64, error) {
	invoices, total, err := s.repo.ListInvoices(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	if len(invoices) == 0 {
		return []InvoiceWithItems{}, total, nil
	}

	ids := make([]string, 0, len(invoices))
	for _, invoice := range invoices {
		ids = append(ids, invoice.ID)
	}

	itemsByInvoice, err := s.repo.GetItemsByInvoiceIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]InvoiceWithItems, 0, len(invoices))
	for _, invoice := range invoices {
		result = append(result, InvoiceWithItems{
			Invoice: invoice,
			Items:   itemsByInvoice[invoice.ID],
		})
	}
	return result, total, nil
}

func (s *Service) GetInvoice(ctx context.Context, tenantID, invoiceID string) (*InvoiceWithItems, error) {
	invoice, err := s.repo.GetInvoiceByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	itemsByInvoice, err := s.repo.GetItemsByInvoiceIDs(ctx, []string{invoice.ID})
	if err != nil {
		return nil, err
	}
	return &InvoiceWithItems{Invoice: *invoice, Items: itemsByInvoice[invoice.ID]}, nil
}

func (s *Service) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*InvoiceWithItems, error) {
	if err := validateHeader(input.ClientName, input.Currency); err != nil {
		return nil, err
	}

	items, total, err := buildItems(input.Items)
	if err != nil {
		return nil, err
	}

	invoice := Invoice{
		ID:          uuid.NewString(),
		TenantID:    input.TenantID,
		ClientID:    input.ClientID,
		ClientName:  strings.TrimSpace(input.ClientName),
		Amount:      total,
		Currency:    strings.ToUpper(strings.TrimSpace(input.Currency)),
		IssueDate:   input.IssueDate,
		DueDate:     input.DueDate,
		Status:      StatusDraft,
		PaymentInfo: input.PaymentInfo,
	}
	for i := range items {
		items[i].InvoiceID = invoice.ID
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateInvoice(ctx, &invoice); err != nil {
			return err
		}
		return tx.ReplaceItems(ctx, invoice.ID, items)
	})
	if err != nil {
		return nil, err
	}

	return &InvoiceWithItems{Invoice: invoice, Items: items}, nil
}

func (s *Service) UpdateInvoice(ctx context.Context, input UpdateInvoiceInput) (*InvoiceWithItems, error) {
	if err := validateHeader(input.ClientName, input.Currency); err != nil {
		return nil, err
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	items, total, err := buildItems(input.Items)
	if err != nil {
		return nil, err
	}

	var updated Invoice
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		invoice, err := tx.GetInvoiceByID(ctx, input.TenantID, input.ID)
		if err != nil {
			return err
		}

		invoice.ClientID = input.ClientID
		invoice.ClientName = strings.TrimSpace(input.ClientName)
		invoice.Amount = total
		invoice.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
		invoice.IssueDate = input.IssueDate
		invoice.DueDate = input.DueDate
		invoice.Status = input.Status
		invoice.PaymentInfo = input.PaymentInfo
		invoice.UpdatedAt = time.Now().UTC()

		for i := range items {
			items[i].InvoiceID = invoice.ID
		}

		if err := tx.UpdateInvoice(ctx, invoice); err != nil {
			return err
		}
		if err := tx.ReplaceItems(ctx, invoice.ID, items); err != nil {
			return err
		}

		updated = *invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &InvoiceWithItems{Invoice: updated, Items: items}, nil
}

// SendInvoice marks the invoice as sent, regardless of its current draft
// or overdue state. Paid invoices stay paid.
func (s *Service) SendInvoice(ctx context.Context, tenantID, invoiceID string) (*Invoice, error) {
	return s.transition(ctx, tenantID, invoiceID, StatusSent)
}

func (s *Service) MarkPaid(ctx context.Context, tenantID, invoiceID string) (*Invoice, error) {
	return s.transition(ctx, tenantID, invoiceID, StatusPaid)
}

func (s *Service) transition(ctx context.Context, tenantID, invoiceID string, to Status) (*Invoice, error) {
	invoice, err := s.repo.GetInvoiceByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == StatusPaid && to != StatusPaid {
		return nil, ErrAlreadyPaid
	}

	invoice.Status = to
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateInvoice(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, tenantID, invoiceID string) error {
	deleted, err := s.repo.DeleteInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvoiceNotFound
	}
	return nil
}

// buildItems validates the line items and returns them with generated ids
// alongside the invoice total. The total is always recomputed server-side
// so a client cannot post an amount that disagrees with its own lines.
func buildItems(inputs []ItemInput) ([]InvoiceItem, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, ErrNoItems
	}

	items := make([]InvoiceItem, 0, len(inputs))
	total := decimal.Zero
	for _, input := range inputs {
		if strings.TrimSpace(input.Description) == "" {
			return nil, decimal.Zero, fmt.Errorf("item description is required")
		}
		if input.Quantity <= 0 || input.Price.IsNegative() {
			return nil, decimal.Zero, ErrInvalidItem
		}

		line := input.Price.Mul(decimal.NewFromInt(int64(input.Quantity)))
		total = total.Add(line)

		items = append(items, InvoiceItem{
			ID:          uuid.NewString(),
			Description: strings.TrimSpace(input.Description),
			FolderName:  input.FolderName,
			FileType:    input.FileType,
			Quantity:    input.Quantity,
			Price:       input.Price,
		})
	}
	return items, total, nil
}

func validateHeader(clientName, currency string) error {
	if strings.TrimSpace(clientName) == "" {
		return fmt.Errorf("client name is required")
	}
	if strings.TrimSpace(currency) == "" {
		return fmt.Errorf("currency is required")
	}
	return nil
}
