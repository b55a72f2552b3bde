package report

import (
	"context"

	reportdomain "flowspace-go/internal/domain/report"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListInvoiceRows pulls the projection straight from the invoices table;
// the report service decides what each status means.
func (r *PostgresRepository) ListInvoiceRows(ctx context.Context, tenantID string) ([]reportdomain.InvoiceRow, error) {
	var rows []reportdomain.InvoiceRow
	if err := r.db.WithContext(ctx).
		Table("invoices").
		Select("amount, issue_date, status").
		Where("tenant_id = ?", tenantID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) ListExpenseRows(ctx context.Context, tenantID string) ([]reportdomain.ExpenseRow, error) {
	var rows []reportdomain.ExpenseRow
	if err := r.db.WithContext(ctx).
		Table("expenses").
		Select("amount, date, status").
		Where("tenant_id = ?", tenantID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
