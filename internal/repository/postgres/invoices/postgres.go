package invoices

import (
	"context"
	"errors"

	invoicesdomain "flowspace-go/internal/domain/invoices"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(invoicesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListInvoices(ctx context.Context, tenantID string, filter invoicesdomain.ListFilter) ([]invoicesdomain.Invoice, int64, error) {
	query := r.db.WithContext(ctx).Model(&invoicesdomain.Invoice{}).Where("tenant_id = ?", tenantID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("issue_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("issue_date <= ?", *filter.To)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("issue_date desc, created_at desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []invoicesdomain.Invoice
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PostgresRepository) GetInvoiceByID(ctx context.Context, tenantID, invoiceID string) (*invoicesdomain.Invoice, error) {
	var invoice invoicesdomain.Invoice
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, invoiceID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invoicesdomain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *PostgresRepository) CreateInvoice(ctx context.Context, invoice *invoicesdomain.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *PostgresRepository) UpdateInvoice(ctx context.Context, invoice *invoicesdomain.Invoice) error {
	return r.db.WithContext(ctx).
		Model(&invoicesdomain.Invoice{}).
		Where("id = ? AND tenant_id = ?", invoice.ID, invoice.TenantID).
		Updates(map[string]interface{}{
			"client_id":    invoice.ClientID,
			"client_name":  invoice.ClientName,
			"currency":     invoice.Currency,
			"amount":       invoice.Amount,
			"status":       invoice.Status,
			"issue_date":   invoice.IssueDate,
			"due_date":     invoice.DueDate,
			"payment_info": invoice.PaymentInfo,
			"updated_at":   invoice.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteInvoice(ctx context.Context, tenantID, invoiceID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&invoicesdomain.Invoice{}, "tenant_id = ? AND id = ?", tenantID, invoiceID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ReplaceItems(ctx context.Context, invoiceID string, items []invoicesdomain.InvoiceItem) error {
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Delete(&invoicesdomain.InvoiceItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *PostgresRepository) GetItemsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]invoicesdomain.InvoiceItem, error) {
	result := make(map[string][]invoicesdomain.InvoiceItem, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return result, nil
	}

	var rows []invoicesdomain.InvoiceItem
	if err := r.db.WithContext(ctx).
		Where("invoice_id IN ?", invoiceIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.InvoiceID] = append(result[row.InvoiceID], row)
	}
	return result, nil
}
