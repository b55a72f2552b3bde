package articles

import "context"

type Repository interface {
	// ListArticles returns the tenant's articles, most recently updated first.
	ListArticles(ctx context.Context, tenantID string) ([]Article, error)
	GetArticleByID(ctx context.Context, tenantID, articleID string) (*Article, error)
	CreateArticle(ctx context.Context, article *Article) error
	UpdateArticle(ctx context.Context, article *Article) error
	DeleteArticle(ctx context.Context, tenantID, articleID string) (bool, error)
}
