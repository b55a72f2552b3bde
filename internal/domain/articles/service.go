package articles

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const defaultCategory = "General"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListArticles(ctx context.Context, tenantID string) ([]Article, error) {
	return s.repo.ListArticles(ctx, tenantID)
}

func (s *Service) CreateArticle(ctx context.Context, input CreateArticleInput) (*Article, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrContentRequired
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = defaultCategory
	}

	article := Article{
		ID:       uuid.NewString(),
		TenantID: input.TenantID,
		Title:    title,
		Category: category,
		Content:  content,
	}

	if err := s.repo.CreateArticle(ctx, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *Service) UpdateArticle(ctx context.Context, input UpdateArticleInput) (*Article, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrContentRequired
	}

	article, err := s.repo.GetArticleByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	article.Title = title
	article.Content = content
	if category := strings.TrimSpace(input.Category); category != "" {
		article.Category = category
	}

	if err := s.repo.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *Service) DeleteArticle(ctx context.Context, tenantID, articleID string) error {
	deleted, err := s.repo.DeleteArticle(ctx, tenantID, articleID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrArticleNotFound
	}
	return nil
}
