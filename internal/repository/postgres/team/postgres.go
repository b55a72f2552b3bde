package team

import (
	"context"
	"errors"

	teamdomain "flowspace-go/internal/domain/team"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPosts(ctx context.Context, tenantID string) ([]teamdomain.Post, error) {
	var items []teamdomain.Post
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetPostByID(ctx context.Context, tenantID, postID string) (*teamdomain.Post, error) {
	var post teamdomain.Post
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, postID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamdomain.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostgresRepository) CreatePost(ctx context.Context, post *teamdomain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *PostgresRepository) UpdatePost(ctx context.Context, post *teamdomain.Post) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", post.ID, post.TenantID).
		Save(post).Error
}

func (r *PostgresRepository) DeletePost(ctx context.Context, tenantID, postID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&teamdomain.Post{}, "tenant_id = ? AND id = ?", tenantID, postID)
	return result.RowsAffected > 0, result.Error
}
