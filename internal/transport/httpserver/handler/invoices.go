package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	invoicesdomain "flowspace-go/internal/domain/invoices"
)

type invoiceItemRequest struct {
	Description string          `json:"description"`
	FolderName  string          `json:"folder_name"`
	FileType    string          `json:"file_type"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type invoiceRequest struct {
	ClientID    string               `json:"client_id"`
	ClientName  string               `json:"client_name"`
	Currency    string               `json:"currency"`
	IssueDate   string               `json:"issue_date"`
	DueDate     string               `json:"due_date"`
	PaymentInfo string               `json:"payment_info"`
	Items       []invoiceItemRequest `json:"items"`
}

type invoiceItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	FolderName  string          `json:"folder_name,omitempty"`
	FileType    string          `json:"file_type,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type invoiceResponse struct {
	ID          string                `json:"id"`
	ClientID    string                `json:"client_id,omitempty"`
	ClientName  string                `json:"client_name"`
	Amount      decimal.Decimal       `json:"amount"`
	Currency    string                `json:"currency"`
	IssueDate   string                `json:"issue_date"`
	DueDate     string                `json:"due_date"`
	Status      string                `json:"status"`
	PaymentInfo string                `json:"payment_info,omitempty"`
	Items       []invoiceItemResponse `json:"items"`
	CreatedAt   time.Time             `json:"created_at"`
}

type invoiceListResponse struct {
	Items []invoiceResponse `json:"items"`
	Total int64             `json:"total"`
}

func toInvoiceResponse(invoice invoicesdomain.InvoiceWithItems) invoiceResponse {
	items := make([]invoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, invoiceItemResponse{
			ID:          item.ID,
			Description: item.Description,
			FolderName:  item.FolderName,
			FileType:    item.FileType,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return invoiceResponse{
		ID:          invoice.ID,
		ClientID:    invoice.ClientID,
		ClientName:  invoice.ClientName,
		Amount:      invoice.Amount,
		Currency:    invoice.Currency,
		IssueDate:   invoice.IssueDate.Format("2006-01-02"),
		DueDate:     invoice.DueDate.Format("2006-01-02"),
		Status:      string(invoice.Status),
		PaymentInfo: invoice.PaymentInfo,
		Items:       items,
		CreatedAt:   invoice.CreatedAt,
	}
}

func itemInputs(items []invoiceItemRequest) []invoicesdomain.ItemInput {
	inputs := make([]invoicesdomain.ItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, invoicesdomain.ItemInput{
			Description: item.Description,
			FolderName:  item.FolderName,
			FileType:    item.FileType,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return inputs
}

func (h *Handlers) ListInvoices(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid from date")
		return
	}
	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid to date")
		return
	}
	limit, err := parseIntParam(query.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}
	offset, err := parseIntParam(query.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid offset")
		return
	}

	filter := invoicesdomain.ListFilter{
		Status: invoicesdomain.Status(query.Get("status")),
		From:   from,
		To:     to,
		Limit:  limit,
		Offset: offset,
	}

	items, total, err := h.services.Invoices.ListInvoices(r.Context(), session.TenantID, filter)
	if err != nil {
		h.log.InternalError("invoices.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]invoiceResponse, 0, len(items))
	for _, invoice := range items {
		response = append(response, toInvoiceResponse(invoice))
	}
	writeJSON(w, http.StatusOK, invoiceListResponse{Items: response, Total: total})
}

func (h *Handlers) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req invoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	issueDate, err := parseDateRequired(req.IssueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid issue date")
		return
	}
	dueDate, err := parseDateRequired(req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid due date")
		return
	}

	invoice, err := h.services.Invoices.CreateInvoice(r.Context(), invoicesdomain.CreateInvoiceInput{
		TenantID:    session.TenantID,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		Currency:    req.Currency,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		PaymentInfo: req.PaymentInfo,
		Items:       itemInputs(req.Items),
	})
	if err != nil {
		switch {
		case errors.Is(err, invoicesdomain.ErrNoItems), errors.Is(err, invoicesdomain.ErrInvalidItem):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("invoices.create failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toInvoiceResponse(*invoice))
}

func (h *Handlers) GetInvoice(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	invoice, err := h.services.Invoices.GetInvoice(r.Context(), session.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, invoicesdomain.ErrInvoiceNotFound) {
			writeError(w, http.StatusNotFound, "invoice_not_found", "invoice not found")
			return
		}
		h.log.InternalError("invoices.get failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(*invoice))
}

func (h *Handlers) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req invoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	issueDate, err := parseDateRequired(req.IssueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid issue date")
		return
	}
	dueDate, err := parseDateRequired(req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid due date")
		return
	}

	invoice, err := h.services.Invoices.UpdateInvoice(r.Context(), invoicesdomain.UpdateInvoiceInput{
		ID:          chi.URLParam(r, "id"),
		TenantID:    session.TenantID,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		Currency:    req.Currency,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		PaymentInfo: req.PaymentInfo,
		Items:       itemInputs(req.Items),
	})
	if err != nil {
		switch {
		case errors.Is(err, invoicesdomain.ErrInvoiceNotFound):
			writeError(w, http.StatusNotFound, "invoice_not_found", "invoice not found")
		case errors.Is(err, invoicesdomain.ErrNoItems), errors.Is(err, invoicesdomain.ErrInvalidItem):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("invoices.update failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(*invoice))
}

func (h *Handlers) SendInvoice(w http.ResponseWriter, r *http.Request) {
	h.invoiceTransition(w, r, h.services.Invoices.SendInvoice)
}

func (h *Handlers) PayInvoice(w http.ResponseWriter, r *http.Request) {
	h.invoiceTransition(w, r, h.services.Invoices.MarkPaid)
}

func (h *Handlers) invoiceTransition(w http.ResponseWriter, r *http.Request, transition func(ctx context.Context, tenantID, invoiceID string) (*invoicesdomain.Invoice, error)) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	invoice, err := transition(r.Context(), session.TenantID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, invoicesdomain.ErrInvoiceNotFound):
			writeError(w, http.StatusNotFound, "invoice_not_found", "invoice not found")
		case errors.Is(err, invoicesdomain.ErrAlreadyPaid):
			writeError(w, http.StatusConflict, "already_paid", "paid invoices cannot change status")
		default:
			h.log.InternalError("invoices.transition failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(invoicesdomain.InvoiceWithItems{Invoice: *invoice}))
}

func (h *Handlers) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.services.Invoices.DeleteInvoice(r.Context(), session.TenantID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, invoicesdomain.ErrInvoiceNotFound) {
			writeError(w, http.StatusNotFound, "invoice_not_found", "invoice not found")
			return
		}
		h.log.InternalError("invoices.delete failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
