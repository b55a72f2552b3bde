package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	crmdomain "flowspace-go/internal/domain/crm"
)

type contactRequest struct {
	Name          string   `json:"name"`
	Company       string   `json:"company"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Tags          []string `json:"tags"`
	LastContacted string   `json:"last_contacted"`
}

type contactResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Tags          []string  `json:"tags"`
	LastContacted string    `json:"last_contacted,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type opportunityRequest struct {
	ContactID         string          `json:"contact_id"`
	Title             string          `json:"title"`
	Value             decimal.Decimal `json:"value"`
	Probability       int             `json:"probability"`
	ExpectedCloseDate string          `json:"expected_close_date"`
}

type opportunityStageRequest struct {
	Stage string `json:"stage"`
}

type opportunityResponse struct {
	ID                string          `json:"id"`
	ContactID         string          `json:"contact_id,omitempty"`
	Title             string          `json:"title"`
	Value             decimal.Decimal `json:"value"`
	Stage             string          `json:"stage"`
	Probability       int             `json:"probability"`
	ExpectedCloseDate string          `json:"expected_close_date,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toContactResponse(contact crmdomain.Contact) contactResponse {
	lastContacted := ""
	if !contact.LastContacted.IsZero() {
		lastContacted = contact.LastContacted.Format("2006-01-02")
	}
	tags := contact.Tags
	if tags == nil {
		tags = []string{}
	}
	return contactResponse{
		ID:            contact.ID,
		Name:          contact.Name,
		Company:       contact.Company,
		Email:         contact.Email,
		Phone:         contact.Phone,
		Tags:          tags,
		LastContacted: lastContacted,
		CreatedAt:     contact.CreatedAt,
	}
}

func toOpportunityResponse(opportunity crmdomain.Opportunity) opportunityResponse {
	expectedClose := ""
	if !opportunity.ExpectedCloseDate.IsZero() {
		expectedClose = opportunity.ExpectedCloseDate.Format("2006-01-02")
	}
	return opportunityResponse{
		ID:                opportunity.ID,
		ContactID:         opportunity.ContactID,
		Title:             opportunity.Title,
		Value:             opportunity.Value,
		Stage:             string(opportunity.Stage),
		Probability:       opportunity.Probability,
		ExpectedCloseDate: expectedClose,
		CreatedAt:         opportunity.CreatedAt,
	}
}

func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	items, err := h.services.CRM.ListContacts(r.Context(), session.TenantID)
	if err != nil {
		h.log.InternalError("crm.contacts.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]contactResponse, 0, len(items))
	for _, contact := range items {
		response = append(response, toContactResponse(contact))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	lastContacted, err := parseDateField(req.LastContacted)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid last contacted date")
		return
	}

	contact, err := h.services.CRM.CreateContact(r.Context(), crmdomain.CreateContactInput{
		TenantID:      session.TenantID,
		Name:          req.Name,
		Company:       req.Company,
		Email:         req.Email,
		Phone:         req.Phone,
		Tags:          req.Tags,
		LastContacted: lastContacted,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toContactResponse(*contact))
}

func (h *Handlers) UpdateContact(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	lastContacted, err := parseDateField(req.LastContacted)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid last contacted date")
		return
	}

	contact, err := h.services.CRM.UpdateContact(r.Context(), crmdomain.UpdateContactInput{
		ID:            chi.URLParam(r, "id"),
		TenantID:      session.TenantID,
		Name:          req.Name,
		Company:       req.Company,
		Email:         req.Email,
		Phone:         req.Phone,
		Tags:          req.Tags,
		LastContacted: lastContacted,
	})
	if err != nil {
		if errors.Is(err, crmdomain.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, "contact_not_found", "contact not found")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toContactResponse(*contact))
}

func (h *Handlers) DeleteContact(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.services.CRM.DeleteContact(r.Context(), session.TenantID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, crmdomain.ErrContactNotFound) {
			writeError(w, http.StatusNotFound, "contact_not_found", "contact not found")
			return
		}
		h.log.InternalError("crm.contacts.delete failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	items, err := h.services.CRM.ListOpportunities(r.Context(), session.TenantID)
	if err != nil {
		h.log.InternalError("crm.opportunities.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]opportunityResponse, 0, len(items))
	for _, opportunity := range items {
		response = append(response, toOpportunityResponse(opportunity))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req opportunityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	expectedClose, err := parseDateField(req.ExpectedCloseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid expected close date")
		return
	}

	opportunity, err := h.services.CRM.CreateOpportunity(r.Context(), crmdomain.CreateOpportunityInput{
		TenantID:          session.TenantID,
		ContactID:         req.ContactID,
		Title:             req.Title,
		Value:             req.Value,
		Probability:       req.Probability,
		ExpectedCloseDate: expectedClose,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toOpportunityResponse(*opportunity))
}

func (h *Handlers) MoveOpportunityStage(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req opportunityStageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	opportunity, err := h.services.CRM.MoveStage(r.Context(), session.TenantID, chi.URLParam(r, "id"),
		crmdomain.Stage(req.Stage))
	if err != nil {
		switch {
		case errors.Is(err, crmdomain.ErrOpportunityNotFound):
			writeError(w, http.StatusNotFound, "opportunity_not_found", "opportunity not found")
		case errors.Is(err, crmdomain.ErrInvalidStage):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid pipeline stage")
		default:
			h.log.InternalError("crm.opportunities.stage failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toOpportunityResponse(*opportunity))
}
