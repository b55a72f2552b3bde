package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	formsdomain "flowspace-go/internal/domain/forms"
)

type formFieldRequest struct {
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

type createFormRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Fields      []formFieldRequest `json:"fields"`
}

type formActiveRequest struct {
	Active bool `json:"active"`
}

type formResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Fields      []formsdomain.Field `json:"fields"`
	Active      bool                `json:"active"`
	Submissions int64               `json:"submissions"`
	CreatedAt   time.Time           `json:"created_at"`
}

func toFormResponse(form formsdomain.Form) formResponse {
	fields := form.Fields
	if fields == nil {
		fields = []formsdomain.Field{}
	}
	return formResponse{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Fields:      fields,
		Active:      form.Active,
		Submissions: form.Submissions,
		CreatedAt:   form.CreatedAt,
	}
}

func (h *Handlers) ListForms(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	items, err := h.services.Forms.ListForms(r.Context(), session.TenantID)
	if err != nil {
		h.log.InternalError("forms.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]formResponse, 0, len(items))
	for _, form := range items {
		response = append(response, toFormResponse(form))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateForm(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req createFormRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	fields := make([]formsdomain.FieldInput, 0, len(req.Fields))
	for _, field := range req.Fields {
		fields = append(fields, formsdomain.FieldInput{
			Label:    field.Label,
			Type:     formsdomain.FieldType(field.Type),
			Required: field.Required,
			Options:  field.Options,
		})
	}

	form, err := h.services.Forms.CreateForm(r.Context(), formsdomain.CreateFormInput{
		TenantID:    session.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Fields:      fields,
	})
	if err != nil {
		switch {
		case errors.Is(err, formsdomain.ErrTitleRequired),
			errors.Is(err, formsdomain.ErrInvalidField),
			errors.Is(err, formsdomain.ErrNoSelectOptions):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("forms.create failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toFormResponse(*form))
}

func (h *Handlers) SetFormActive(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req formActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	form, err := h.services.Forms.SetActive(r.Context(), session.TenantID, chi.URLParam(r, "id"), req.Active)
	if err != nil {
		if errors.Is(err, formsdomain.ErrFormNotFound) {
			writeError(w, http.StatusNotFound, "form_not_found", "form not found")
			return
		}
		h.log.InternalError("forms.set_active failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toFormResponse(*form))
}

func (h *Handlers) RecordFormSubmission(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	err := h.services.Forms.RecordSubmission(r.Context(), session.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, formsdomain.ErrFormNotFound):
			writeError(w, http.StatusNotFound, "form_not_found", "form not found")
		case errors.Is(err, formsdomain.ErrFormInactive):
			writeError(w, http.StatusConflict, "form_inactive", "form is not accepting submissions")
		default:
			h.log.InternalError("forms.submission failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteForm(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.services.Forms.DeleteForm(r.Context(), session.TenantID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, formsdomain.ErrFormNotFound) {
			writeError(w, http.StatusNotFound, "form_not_found", "form not found")
			return
		}
		h.log.InternalError("forms.delete failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
