package team

import "context"

type Repository interface {
	// ListPosts returns the tenant's feed ordered newest first.
	ListPosts(ctx context.Context, tenantID string) ([]Post, error)
	GetPostByID(ctx context.Context, tenantID, postID string) (*Post, error)
	CreatePost(ctx context.Context, post *Post) error
	UpdatePost(ctx context.Context, post *Post) error
	DeletePost(ctx context.Context, tenantID, postID string) (bool, error)
}
