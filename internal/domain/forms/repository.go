package forms

import "context"

type Repository interface {
	ListForms(ctx context.Context, tenantID string) ([]Form, error)
	GetFormByID(ctx context.Context, tenantID, formID string) (*Form, error)
	CreateForm(ctx context.Context, form *Form) error
	UpdateForm(ctx context.Context, form *Form) error
	DeleteForm(ctx context.Context, tenantID, formID string) (bool, error)
	// IncrementSubmissions bumps the counter atomically in the store.
	IncrementSubmissions(ctx context.Context, tenantID, formID string) error
}
