package handler

import (
	"errors"
	"net/http"
	"strings"

	reportdomain "flowspace-go/internal/domain/report"
)

// Financials serves the dashboard and finance charts. The range parameter
// selects the window: month and year anchor on the server clock, custom
// requires explicit start and end dates.
func (h *Handlers) Financials(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	var window reportdomain.ReportWindow
	switch strings.TrimSpace(query.Get("range")) {
	case "month":
		window = reportdomain.MonthWindow()
	case "year", "":
		window = reportdomain.YearWindow()
	case "custom":
		start, err := parseDateRequired(query.Get("start"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid start date")
			return
		}
		end, err := parseDateRequired(query.Get("end"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid end date")
			return
		}
		window = reportdomain.CustomWindow(start, end)
	default:
		writeError(w, http.StatusBadRequest, "invalid_request", "range must be month, year or custom")
		return
	}

	result, err := h.services.Reports.Financials(r.Context(), session.TenantID, window)
	if err != nil {
		if errors.Is(err, reportdomain.ErrInvalidWindow) {
			writeError(w, http.StatusBadRequest, "invalid_window", "end date is before start date")
			return
		}
		h.log.InternalError("reports.financials failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// PartnerSplit is a stateless calculation; persistence of the inputs
// lives under settings.
func (h *Handlers) PartnerSplit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.session(w, r); !ok {
		return
	}

	var input reportdomain.SplitInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := reportdomain.SplitProfit(input)
	if err != nil {
		if errors.Is(err, reportdomain.ErrInvalidEvent) {
			writeError(w, http.StatusBadRequest, "invalid_request", "amounts cannot be negative")
			return
		}
		h.log.InternalError("reports.partner_split failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
