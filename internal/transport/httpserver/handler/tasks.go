package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	authdomain "flowspace-go/internal/domain/auth"
	tasksdomain "flowspace-go/internal/domain/tasks"
)

type createTaskRequest struct {
	ProjectID   string   `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Assignee    string   `json:"assignee"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date"`
	Checklist   []string `json:"checklist"`
}

type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

type taskStatusRequest struct {
	Status string `json:"status"`
}

type taskCommentRequest struct {
	Content string `json:"content"`
}

type sendToEditorRequest struct {
	Editor       string `json:"editor"`
	SourceLink   string `json:"source_link"`
	Instructions string `json:"instructions"`
}

type submitReviewRequest struct {
	DeliverableLink string `json:"deliverable_link"`
}

type taskResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`

	Checklist []tasksdomain.ChecklistItem `json:"checklist"`
	Comments  []tasksdomain.Comment       `json:"comments"`
	History   []tasksdomain.Activity      `json:"history"`

	SourceLink      string    `json:"source_link,omitempty"`
	Instructions    string    `json:"instructions,omitempty"`
	DeliverableLink string    `json:"deliverable_link,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type taskListResponse struct {
	Items []taskResponse `json:"items"`
	Total int64          `json:"total"`
}

func toTaskResponse(task tasksdomain.Task) taskResponse {
	dueDate := ""
	if !task.DueDate.IsZero() {
		dueDate = task.DueDate.Format("2006-01-02")
	}
	return taskResponse{
		ID:              task.ID,
		ProjectID:       task.ProjectID,
		Title:           task.Title,
		Description:     task.Description,
		Assignee:        task.Assignee,
		Status:          string(task.Status),
		Priority:        string(task.Priority),
		DueDate:         dueDate,
		Checklist:       task.Checklist,
		Comments:        task.Comments,
		History:         task.History,
		SourceLink:      task.SourceLink,
		Instructions:    task.Instructions,
		DeliverableLink: task.DeliverableLink,
		CreatedAt:       task.CreatedAt,
	}
}

func (h *Handlers) taskActor(r *http.Request, session authdomain.Session) tasksdomain.Actor {
	id, name := h.actor(r, session)
	return tasksdomain.Actor{ID: id, Name: name}
}

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
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

	filter := tasksdomain.ListFilter{
		ProjectID: query.Get("project_id"),
		Status:    tasksdomain.Status(query.Get("status")),
		Assignee:  query.Get("assignee"),
		Limit:     limit,
		Offset:    offset,
	}

	items, total, err := h.services.Tasks.ListTasks(r.Context(), session.TenantID, filter)
	if err != nil {
		h.log.InternalError("tasks.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]taskResponse, 0, len(items))
	for _, task := range items {
		response = append(response, toTaskResponse(task))
	}
	writeJSON(w, http.StatusOK, taskListResponse{Items: response, Total: total})
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	dueDate, err := parseDateField(req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid due date")
		return
	}

	priority := tasksdomain.Priority(req.Priority)
	if req.Priority == "" {
		priority = tasksdomain.PriorityMedium
	}

	task, err := h.services.Tasks.CreateTask(r.Context(), tasksdomain.CreateTaskInput{
		TenantID:    session.TenantID,
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Priority:    priority,
		DueDate:     dueDate,
		Checklist:   req.Checklist,
	}, h.taskActor(r, session))
	if err != nil {
		if errors.Is(err, tasksdomain.ErrInvalidPriority) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid priority")
			return
		}
		h.log.InternalError("tasks.create failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(*task))
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	dueDate, err := parseDateField(req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid due date")
		return
	}

	task, err := h.services.Tasks.UpdateTask(r.Context(), tasksdomain.UpdateTaskInput{
		ID:          chi.URLParam(r, "id"),
		TenantID:    session.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		Priority:    tasksdomain.Priority(req.Priority),
		DueDate:     dueDate,
	}, h.taskActor(r, session))
	if err != nil {
		h.taskError(w, err, session.TenantID, "tasks.update")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

func (h *Handlers) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req taskStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	task, err := h.services.Tasks.UpdateStatus(r.Context(), session.TenantID, chi.URLParam(r, "id"),
		tasksdomain.Status(req.Status), h.taskActor(r, session))
	if err != nil {
		h.taskError(w, err, session.TenantID, "tasks.status")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

func (h *Handlers) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	task, err := h.services.Tasks.ToggleChecklistItem(r.Context(), session.TenantID,
		chi.URLParam(r, "id"), chi.URLParam(r, "item_id"), h.taskActor(r, session))
	if err != nil {
		h.taskError(w, err, session.TenantID, "tasks.checklist")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

func (h *Handlers) AddTaskComment(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req taskCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	task, err := h.services.Tasks.AddComment(r.Context(), session.TenantID, chi.URLParam(r, "id"),
		req.Content, h.taskActor(r, session))
	if err != nil {
		h.taskError(w, err, session.TenantID, "tasks.comment")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

func (h *Handlers) SendTaskToEditor(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req sendToEditorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	task, err := h.services.Tasks.SendToEditor(r.Context(), session.TenantID, chi.URLParam(r, "id"),
		req.Editor, req.SourceLink, req.Instructions, h.taskActor(r, session))
	if err != nil {
		h.taskError(w, err, session.TenantID, "tasks.send_to_editor")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

func (h *Handlers) SubmitTaskForReview(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req submitReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	task, err := h.services.Tasks.SubmitForReview(r.Context(), session.TenantID, chi.URLParam(r, "id"),
		req.DeliverableLink, h.taskActor(r, session))
	if err != nil {
		h.taskError(w, err, session.TenantID, "tasks.submit_review")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.services.Tasks.DeleteTask(r.Context(), session.TenantID, chi.URLParam(r, "id")); err != nil {
		h.taskError(w, err, session.TenantID, "tasks.delete")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) taskError(w http.ResponseWriter, err error, tenantID, operation string) {
	switch {
	case errors.Is(err, tasksdomain.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "task_not_found", "task not found")
	case errors.Is(err, tasksdomain.ErrChecklistItemNotFound):
		writeError(w, http.StatusNotFound, "checklist_item_not_found", "checklist item not found")
	case errors.Is(err, tasksdomain.ErrInvalidStatus), errors.Is(err, tasksdomain.ErrInvalidPriority):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.InternalError(operation+" failed", err, "tenant_id", tenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
