package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	articlesdomain "flowspace-go/internal/domain/articles"
)

type articleRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

type articleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"last_updated"`
}

func toArticleResponse(article articlesdomain.Article) articleResponse {
	return articleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Category:    article.Category,
		Content:     article.Content,
		LastUpdated: article.UpdatedAt,
	}
}

func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	items, err := h.services.Articles.ListArticles(r.Context(), session.TenantID)
	if err != nil {
		h.log.InternalError("articles.list failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]articleResponse, 0, len(items))
	for _, article := range items {
		response = append(response, toArticleResponse(article))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateArticle(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	article, err := h.services.Articles.CreateArticle(r.Context(), articlesdomain.CreateArticleInput{
		TenantID: session.TenantID,
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, articlesdomain.ErrTitleRequired), errors.Is(err, articlesdomain.ErrContentRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("articles.create failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(*article))
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	article, err := h.services.Articles.UpdateArticle(r.Context(), articlesdomain.UpdateArticleInput{
		ID:       chi.URLParam(r, "id"),
		TenantID: session.TenantID,
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, articlesdomain.ErrArticleNotFound):
			writeError(w, http.StatusNotFound, "article_not_found", "article not found")
		case errors.Is(err, articlesdomain.ErrTitleRequired), errors.Is(err, articlesdomain.ErrContentRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("articles.update failed", err, "tenant_id", session.TenantID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(*article))
}

func (h *Handlers) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.services.Articles.DeleteArticle(r.Context(), session.TenantID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, articlesdomain.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "article_not_found", "article not found")
			return
		}
		h.log.InternalError("articles.delete failed", err, "tenant_id", session.TenantID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
