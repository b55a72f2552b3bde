package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	projectsdomain "flowspace-go/internal/domain/projects"
)

type projectRequest struct {
	Name         string          `json:"name"`
	Client       string          `json:"client"`
	Status       string          `json:"status,omitempty"`
	Budget       decimal.Decimal `json:"budget"`
	Deadline     string          `json:"deadline"`
	Description  string          `json:"description"`
	Progress     int             `json:"progress,omitempty"`
	SportType    string          `json:"sport_type"`
	Season       string          `json:"season"`
	Location     string          `json:"location"`
	PlayerCount  int             `json:"player_count"`
	PackageType  string          `json:"package_type"`
	ContactEmail string          `json:"contact_email"`
	ContactPhone string          `json:"contact_phone"`
	RosterFile   string          `json:"roster_file"`
}

type projectResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Client       string          `json:"client"`
	Status       string          `json:"status"`
	Budget       decimal.Decimal `json:"budget"`
	Deadline     string          `json:"deadline,omitempty"`
	Description  string          `json:"description,omitempty"`
	Progress     int             `json:"progress"`
	SportType    string          `json:"sport_type,omitempty"`
	Season       string          `json:"season,omitempty"`
	Location     string          `json:"location,omitempty"`
	PlayerCount  int             `json:"player_count,omitempty"`
	PackageType  string          `json:"package_type,omitempty"`
	ContactEmail string          `json:"contact_email,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	RosterFile   string          `json:"roster_file,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type projectListResponse struct {
	Items []projectResponse `json:"items"`
	Total int64             `json:"total"`
}

func toProjectResponse(project projectsdomain.Project) projectResponse {
	deadline := ""
	if !project.Deadline.IsZero() {
		deadline = project.Deadline.Format("2006-01-02")
	}
	return projectResponse{
		ID:           project.ID,
		Name:         project.Name,
		Client:       project.Client,
		Status:       string(project.Status),
		Budget:       project.Budget,
		Deadline:     deadline,
		Description:  project.Description,
		Progress:     project.Progress,
		SportType:    project.SportType,
		Season:       project.Season,
		Location:     project.Location,
		PlayerCount:  project.PlayerCount,
		PackageType:  project.PackageType,
		ContactEmail: project.ContactEmail,
		ContactPhone: project.ContactPhone,
		RosterFile:   project.RosterFile,
		CreatedAt:    project.CreatedAt,
	}
}

func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
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

	filter := projectsdomain.ListFilter{
		Status: projectsdomain.Status(query.Get("status")),
		Limit:  limit,
		Offset: offset,
	}

	items, total, err := h.services.Projects.ListProjects(r.Context(), session.TenantID, filter)
	if err != nil {
		h.log.InternalError("projects.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]projectResponse, 0, len(items))
	for _, project := range items {
		response = append(response, toProjectResponse(project))
	}
	writeJSON(w, http.StatusOK, projectListResponse{Items: response, Total: total})
}

func (h *Handlers) ProjectStats(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	stats, err := h.services.Projects.Stats(r.Context(), session.TenantID)
	if err != nil {
		h.log.InternalError("projects.stats failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	deadline, err := parseDateField(req.Deadline)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid deadline")
		return
	}

	project, err := h.services.Projects.CreateProject(r.Context(), projectsdomain.CreateProjectInput{
		TenantID:     session.TenantID,
		Name:         req.Name,
		Client:       req.Client,
		Budget:       req.Budget,
		Deadline:     deadline,
		Description:  req.Description,
		SportType:    req.SportType,
		Season:       req.Season,
		Location:     req.Location,
		PlayerCount:  req.PlayerCount,
		PackageType:  req.PackageType,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		RosterFile:   req.RosterFile,
	})
	if err != nil {
		h.log.InternalError("projects.create failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(*project))
}

func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	deadline, err := parseDateField(req.Deadline)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid deadline")
		return
	}

	project, err := h.services.Projects.UpdateProject(r.Context(), projectsdomain.UpdateProjectInput{
		ID:           chi.URLParam(r, "id"),
		TenantID:     session.TenantID,
		Name:         req.Name,
		Client:       req.Client,
		Status:       projectsdomain.Status(req.Status),
		Budget:       req.Budget,
		Deadline:     deadline,
		Description:  req.Description,
		Progress:     req.Progress,
		SportType:    req.SportType,
		Season:       req.Season,
		Location:     req.Location,
		PlayerCount:  req.PlayerCount,
		PackageType:  req.PackageType,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		RosterFile:   req.RosterFile,
	})
	if err != nil {
		switch {
		case errors.Is(err, projectsdomain.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, "project_not_found", "project not found")
		case errors.Is(err, projectsdomain.ErrInvalidStatus),
			errors.Is(err, projectsdomain.ErrInvalidProgress):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("projects.update failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(*project))
}

func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.services.Projects.DeleteProject(r.Context(), session.TenantID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, projectsdomain.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "project_not_found", "project not found")
			return
		}
		h.log.InternalError("projects.delete failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
