package team

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListPosts(ctx context.Context, tenantID string) ([]Post, error) {
	return s.repo.ListPosts(ctx, tenantID)
}

func (s *Service) CreatePost(ctx context.Context, tenantID string, author Author, content string) (*Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	post := Post{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    content,
		LikedBy:    []string{},
		Comments:   []PostComment{},
	}

	if err := s.repo.CreatePost(ctx, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post. Only the author may delete it.
func (s *Service) DeletePost(ctx context.Context, tenantID, postID, userID string) error {
	post, err := s.repo.GetPostByID(ctx, tenantID, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return ErrNotPostOwner
	}

	deleted, err := s.repo.DeletePost(ctx, tenantID, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}
	return nil
}

// ToggleLike adds the user to the post's likes, or removes them if already present.
func (s *Service) ToggleLike(ctx context.Context, tenantID, postID, userID string) (*Post, error) {
	post, err := s.repo.GetPostByID(ctx, tenantID, postID)
	if err != nil {
		return nil, err
	}

	liked := make([]string, 0, len(post.LikedBy))
	found := false
	for _, id := range post.LikedBy {
		if id == userID {
			found = true
			continue
		}
		liked = append(liked, id)
	}
	if !found {
		liked = append(liked, userID)
	}
	post.LikedBy = liked

	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) AddComment(ctx context.Context, tenantID, postID string, author Author, content string) (*Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	post, err := s.repo.GetPostByID(ctx, tenantID, postID)
	if err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments, PostComment{
		ID:         uuid.NewString(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    content,
		CreatedAt:  s.now().UTC(),
	})

	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
