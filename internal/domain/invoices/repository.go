package invoices

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListInvoices(ctx context.Context, tenantID string, filter ListFilter) ([]Invoice, int64, error)
	GetInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*Invoice, error)
	CreateInvoice(ctx context.Context, invoice *Invoice) error
	UpdateInvoice(ctx context.Context, invoice *Invoice) error
	DeleteInvoice(ctx context.Context, tenantID, invoiceID string) (bool, error)
	ReplaceItems(ctx context.Context, invoiceID string, items []InvoiceItem) error
	GetItemsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]InvoiceItem, error)
}
