package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	employeesdomain "flowspace-go/internal/domain/employees"
)

type createEmployeeRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Role       string          `json:"role"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	JoinDate   string          `json:"join_date"`
	Salary     decimal.Decimal `json:"salary"`
	Password   string          `json:"password"`
}

type updateProfileRequest struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	AvatarURL  string          `json:"avatar_url"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type markAttendanceRequest struct {
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	LateMinutes int    `json:"late_minutes"`
}

type userResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone,omitempty"`
	Role       string          `json:"role"`
	Position   string          `json:"position,omitempty"`
	Department string          `json:"department,omitempty"`
	JoinDate   string          `json:"join_date,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	AvatarURL  string          `json:"avatar_url,omitempty"`
}

type attendanceResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	CheckIn     string `json:"check_in,omitempty"`
	CheckOut    string `json:"check_out,omitempty"`
	LateMinutes int    `json:"late_minutes,omitempty"`
}

func toUserResponse(user employeesdomain.User) userResponse {
	joinDate := ""
	if !user.JoinDate.IsZero() {
		joinDate = user.JoinDate.Format("2006-01-02")
	}
	return userResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       string(user.Role),
		Position:   user.Position,
		Department: user.Department,
		JoinDate:   joinDate,
		Salary:     user.Salary,
		AvatarURL:  user.AvatarURL,
	}
}

func toAttendanceResponse(record employeesdomain.AttendanceRecord) attendanceResponse {
	return attendanceResponse{
		ID:          record.ID,
		UserID:      record.UserID,
		Date:        record.Date.Format("2006-01-02"),
		Status:      string(record.Status),
		CheckIn:     record.CheckIn,
		CheckOut:    record.CheckOut,
		LateMinutes: record.LateMinutes,
	}
}

func (h *Handlers) ListEmployees(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	items, err := h.services.Employees.ListUsers(r.Context(), session.TenantID)
	if err != nil {
		h.log.InternalError("employees.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]userResponse, 0, len(items))
	for _, user := range items {
		response = append(response, toUserResponse(user))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req createEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	joinDate, err := parseDateField(req.JoinDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid join date")
		return
	}

	user, err := h.services.Employees.CreateUser(r.Context(), employeesdomain.CreateUserInput{
		TenantID:   session.TenantID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       employeesdomain.Role(req.Role),
		Position:   req.Position,
		Department: req.Department,
		JoinDate:   joinDate,
		Salary:     req.Salary,
		Password:   req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, employeesdomain.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", "email already registered")
		case errors.Is(err, employeesdomain.ErrInvalidRole), errors.Is(err, employeesdomain.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("employees.create failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(*user))
}

func (h *Handlers) UpdateEmployeeProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, err := h.services.Employees.UpdateProfile(r.Context(), employeesdomain.UpdateProfileInput{
		ID:         chi.URLParam(r, "id"),
		TenantID:   session.TenantID,
		Name:       req.Name,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
		AvatarURL:  req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, employeesdomain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

func (h *Handlers) UpdateEmployeeRole(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req updateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, err := h.services.Employees.UpdateRole(r.Context(), session.TenantID, chi.URLParam(r, "id"),
		employeesdomain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, employeesdomain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		case errors.Is(err, employeesdomain.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown role")
		default:
			h.log.InternalError("employees.role failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

func (h *Handlers) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.services.Employees.DeleteUser(r.Context(), session.TenantID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, employeesdomain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("employees.delete failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req markAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDateField(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = session.UserID
	}

	record, err := h.services.Employees.MarkAttendance(r.Context(), employeesdomain.MarkAttendanceInput{
		TenantID:    session.TenantID,
		UserID:      userID,
		Date:        date,
		Status:      employeesdomain.AttendanceStatus(req.Status),
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		LateMinutes: req.LateMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, employeesdomain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		case errors.Is(err, employeesdomain.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown attendance status")
		default:
			h.log.InternalError("attendance.mark failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceResponse(*record))
}

// ListAttendance returns every record in the requested month
// (?month=2024-03), defaulting to the current month.
func (h *Handlers) ListAttendance(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	month := time.Now().UTC()
	if value := r.URL.Query().Get("month"); value != "" {
		parsed, err := parseMonthRequired(value)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid month")
			return
		}
		month = parsed
	}

	records, err := h.services.Employees.MonthAttendance(r.Context(), session.TenantID, month.Year(), month.Month())
	if err != nil {
		h.log.InternalError("attendance.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]attendanceResponse, 0, len(records))
	for _, record := range records {
		response = append(response, toAttendanceResponse(record))
	}
	writeJSON(w, http.StatusOK, response)
}
