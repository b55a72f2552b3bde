package articles

import (
	"context"
	"errors"

	"gorm.io/gorm"

	articlesdomain "flowspace-go/internal/domain/articles"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListArticles(ctx context.Context, tenantID string) ([]articlesdomain.Article, error) {
	var items []articlesdomain.Article
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("updated_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetArticleByID(ctx context.Context, tenantID, articleID string) (*articlesdomain.Article, error) {
	var article articlesdomain.Article
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, articleID).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, articlesdomain.ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *PostgresRepository) CreateArticle(ctx context.Context, article *articlesdomain.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *PostgresRepository) UpdateArticle(ctx context.Context, article *articlesdomain.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *PostgresRepository) DeleteArticle(ctx context.Context, tenantID, articleID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, articleID).
		Delete(&articlesdomain.Article{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
