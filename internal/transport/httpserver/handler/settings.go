package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	settingsdomain "flowspace-go/internal/domain/settings"
)

type companySettingsRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	TaxID       string `json:"tax_id"`
	PaymentInfo string `json:"payment_info"`
}

type companySettingsResponse struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	TaxID       string `json:"tax_id,omitempty"`
	PaymentInfo string `json:"payment_info,omitempty"`
}

type divisionLineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type partnerDivisionRequest struct {
	Income       decimal.Decimal    `json:"income"`
	PartnerAName string             `json:"partner_a_name"`
	PartnerBName string             `json:"partner_b_name"`
	PartnerA     []divisionLineItem `json:"partner_a"`
	PartnerB     []divisionLineItem `json:"partner_b"`
}

type partnerDivisionResponse struct {
	Income       decimal.Decimal    `json:"income"`
	PartnerAName string             `json:"partner_a_name"`
	PartnerBName string             `json:"partner_b_name"`
	PartnerA     []divisionLineItem `json:"partner_a"`
	PartnerB     []divisionLineItem `json:"partner_b"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func toCompanyResponse(company settingsdomain.CompanySettings) companySettingsResponse {
	return companySettingsResponse{
		Name:        company.Name,
		Address:     company.Address,
		Email:       company.Email,
		Phone:       company.Phone,
		Website:     company.Website,
		TaxID:       company.TaxID,
		PaymentInfo: company.PaymentInfo,
	}
}

func toDivisionItems(items []settingsdomain.LineItem) []divisionLineItem {
	result := make([]divisionLineItem, 0, len(items))
	for _, item := range items {
		result = append(result, divisionLineItem{Label: item.Label, Amount: item.Amount})
	}
	return result
}

func fromDivisionItems(items []divisionLineItem) []settingsdomain.LineItem {
	result := make([]settingsdomain.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, settingsdomain.LineItem{Label: item.Label, Amount: item.Amount})
	}
	return result
}

func toDivisionResponse(division settingsdomain.PartnerDivision) partnerDivisionResponse {
	return partnerDivisionResponse{
		Income:       division.Income,
		PartnerAName: division.PartnerAName,
		PartnerBName: division.PartnerBName,
		PartnerA:     toDivisionItems(division.PartnerA),
		PartnerB:     toDivisionItems(division.PartnerB),
		UpdatedAt:    division.UpdatedAt,
	}
}

func (h *Handlers) GetCompanySettings(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	company, err := h.services.Settings.Company(r.Context(), session.TenantID)
	if err != nil {
		if errors.Is(err, settingsdomain.ErrSettingsNotFound) {
			writeError(w, http.StatusNotFound, "settings_not_found", "company settings not configured yet")
			return
		}
		h.log.InternalError("settings.company.get failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toCompanyResponse(*company))
}

func (h *Handlers) UpdateCompanySettings(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req companySettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	company, err := h.services.Settings.UpdateCompany(r.Context(), settingsdomain.UpdateCompanyInput{
		TenantID:    session.TenantID,
		Name:        req.Name,
		Address:     req.Address,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		TaxID:       req.TaxID,
		PaymentInfo: req.PaymentInfo,
	})
	if err != nil {
		if errors.Is(err, settingsdomain.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "company name is required")
			return
		}
		h.log.InternalError("settings.company.update failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toCompanyResponse(*company))
}

func (h *Handlers) GetPartnerDivision(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	division, err := h.services.Settings.Division(r.Context(), session.TenantID)
	if err != nil {
		if errors.Is(err, settingsdomain.ErrDivisionNotFound) {
			writeError(w, http.StatusNotFound, "division_not_found", "no saved partner division")
			return
		}
		h.log.InternalError("settings.division.get failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toDivisionResponse(*division))
}

func (h *Handlers) SavePartnerDivision(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req partnerDivisionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	division, err := h.services.Settings.SaveDivision(r.Context(), settingsdomain.SaveDivisionInput{
		TenantID:     session.TenantID,
		Income:       req.Income,
		PartnerAName: req.PartnerAName,
		PartnerBName: req.PartnerBName,
		PartnerA:     fromDivisionItems(req.PartnerA),
		PartnerB:     fromDivisionItems(req.PartnerB),
	})
	if err != nil {
		if errors.Is(err, settingsdomain.ErrNegativeAmount) {
			writeError(w, http.StatusBadRequest, "invalid_request", "amounts cannot be negative")
			return
		}
		h.log.InternalError("settings.division.save failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toDivisionResponse(*division))
}
