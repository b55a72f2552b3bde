package forms

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListForms(ctx context.Context, tenantID string) ([]Form, error) {
	return s.repo.ListForms(ctx, tenantID)
}

func (s *Service) CreateForm(ctx context.Context, input CreateFormInput) (*Form, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	fields, err := buildFields(input.Fields)
	if err != nil {
		return nil, err
	}

	form := Form{
		ID:          uuid.NewString(),
		TenantID:    input.TenantID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Fields:      fields,
		Active:      true,
	}

	if err := s.repo.CreateForm(ctx, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *Service) DeleteForm(ctx context.Context, tenantID, formID string) error {
	deleted, err := s.repo.DeleteForm(ctx, tenantID, formID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFormNotFound
	}
	return nil
}

// SetActive switches whether the public form accepts submissions.
func (s *Service) SetActive(ctx context.Context, tenantID, formID string, active bool) (*Form, error) {
	form, err := s.repo.GetFormByID(ctx, tenantID, formID)
	if err != nil {
		return nil, err
	}

	form.Active = active
	if err := s.repo.UpdateForm(ctx, form); err != nil {
		return nil, err
	}
	return form, nil
}

// RecordSubmission counts one submission against an active form.
func (s *Service) RecordSubmission(ctx context.Context, tenantID, formID string) error {
	form, err := s.repo.GetFormByID(ctx, tenantID, formID)
	if err != nil {
		return err
	}
	if !form.Active {
		return ErrFormInactive
	}
	return s.repo.IncrementSubmissions(ctx, tenantID, formID)
}

func buildFields(inputs []FieldInput) ([]Field, error) {
	fields := make([]Field, 0, len(inputs))
	for _, in := range inputs {
		label := strings.TrimSpace(in.Label)
		if label == "" || !in.Type.Valid() {
			return nil, ErrInvalidField
		}
		if in.Type == FieldSelect && len(in.Options) == 0 {
			return nil, ErrNoSelectOptions
		}
		fields = append(fields, Field{
			ID:       uuid.NewString(),
			Label:    label,
			Type:     in.Type,
			Required: in.Required,
			Options:  in.Options,
		})
	}
	return fields, nil
}
