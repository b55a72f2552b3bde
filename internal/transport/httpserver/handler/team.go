package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	teamdomain "flowspace-go/internal/domain/team"
)

type postRequest struct {
	Content string `json:"content"`
}

type postCommentRequest struct {
	Content string `json:"content"`
}

type postResponse struct {
	ID         string                   `json:"id"`
	AuthorID   string                   `json:"author_id"`
	AuthorName string                   `json:"author_name"`
	Content    string                   `json:"content"`
	LikedBy    []string                 `json:"liked_by"`
	Comments   []teamdomain.PostComment `json:"comments"`
	CreatedAt  time.Time                `json:"created_at"`
}

func toPostResponse(post teamdomain.Post) postResponse {
	likedBy := post.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	comments := post.Comments
	if comments == nil {
		comments = []teamdomain.PostComment{}
	}
	return postResponse{
		ID:         post.ID,
		AuthorID:   post.AuthorID,
		AuthorName: post.AuthorName,
		Content:    post.Content,
		LikedBy:    likedBy,
		Comments:   comments,
		CreatedAt:  post.CreatedAt,
	}
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	items, err := h.services.Team.ListPosts(r.Context(), session.TenantID)
	if err != nil {
		h.log.InternalError("team.posts.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]postResponse, 0, len(items))
	for _, post := range items {
		response = append(response, toPostResponse(post))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id, name := h.actor(r, session)
	post, err := h.services.Team.CreatePost(r.Context(), session.TenantID,
		teamdomain.Author{ID: id, Name: name}, req.Content)
	if err != nil {
		if errors.Is(err, teamdomain.ErrEmptyContent) {
			writeError(w, http.StatusBadRequest, "invalid_request", "post content cannot be empty")
			return
		}
		h.log.InternalError("team.posts.create failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(*post))
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	err := h.services.Team.DeletePost(r.Context(), session.TenantID, chi.URLParam(r, "id"), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, teamdomain.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "post_not_found", "post not found")
		case errors.Is(err, teamdomain.ErrNotPostOwner):
			writeError(w, http.StatusForbidden, "forbidden", "only the author can delete a post")
		default:
			h.log.InternalError("team.posts.delete failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) TogglePostLike(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	post, err := h.services.Team.ToggleLike(r.Context(), session.TenantID, chi.URLParam(r, "id"), session.UserID)
	if err != nil {
		if errors.Is(err, teamdomain.ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "post_not_found", "post not found")
			return
		}
		h.log.InternalError("team.posts.like failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(*post))
}

func (h *Handlers) AddPostComment(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req postCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id, name := h.actor(r, session)
	post, err := h.services.Team.AddComment(r.Context(), session.TenantID, chi.URLParam(r, "id"),
		teamdomain.Author{ID: id, Name: name}, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, teamdomain.ErrPostNotFound):
			writeError(w, http.StatusNotFound, "post_not_found", "post not found")
		case errors.Is(err, teamdomain.ErrEmptyContent):
			writeError(w, http.StatusBadRequest, "invalid_request", "comment cannot be empty")
		default:
			h.log.InternalError("team.posts.comment failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(*post))
}
