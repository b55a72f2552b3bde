package team

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakePostRepo struct {
	posts map[string]*Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*Post)}
}

func (r *fakePostRepo) ListPosts(ctx context.Context, tenantID string) ([]Post, error) {
	items := make([]Post, 0)
	for _, post := range r.posts {
		if post.TenantID == tenantID {
			items = append(items, *post)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, tenantID, postID string) (*Post, error) {
	post, ok := r.posts[postID]
	if !ok || post.TenantID != tenantID {
		return nil, ErrPostNotFound
	}
	clone := *post
	return &clone, nil
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *Post) error {
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *fakePostRepo) UpdatePost(ctx context.Context, post *Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return ErrPostNotFound
	}
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *fakePostRepo) DeletePost(ctx context.Context, tenantID, postID string) (bool, error) {
	post, ok := r.posts[postID]
	if !ok || post.TenantID != tenantID {
		return false, nil
	}
	delete(r.posts, postID)
	return true, nil
}

func TestToggleLikeFlips(t *testing.T) {
	svc := NewService(newFakePostRepo())
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "tenant-1", Author{ID: "user-1", Name: "Sam"}, "Shipped the gallery!")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	liked, err := svc.ToggleLike(ctx, "tenant-1", post.ID, "user-2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(liked.LikedBy) != 1 || liked.LikedBy[0] != "user-2" {
		t.Fatalf("expected a single like from user-2, got %v", liked.LikedBy)
	}

	unliked, err := svc.ToggleLike(ctx, "tenant-1", post.ID, "user-2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(unliked.LikedBy) != 0 {
		t.Fatalf("expected like removed, got %v", unliked.LikedBy)
	}
}

func TestAddCommentStampsAuthor(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewService(repo)
	fixed := time.Date(2024, time.June, 3, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "tenant-1", Author{ID: "user-1", Name: "Sam"}, "Morning standup notes")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	updated, err := svc.AddComment(ctx, "tenant-1", post.ID, Author{ID: "user-2", Name: "Riley"}, "On it")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(updated.Comments) != 1 {
		t.Fatalf("expected one comment, got %d", len(updated.Comments))
	}
	comment := updated.Comments[0]
	if comment.AuthorName != "Riley" || comment.Content != "On it" || !comment.CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected comment: %+v", comment)
	}

	if _, err := svc.AddComment(ctx, "tenant-1", post.ID, Author{ID: "user-2", Name: "Riley"}, "   "); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestDeletePostRequiresAuthor(t *testing.T) {
	svc := NewService(newFakePostRepo())
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "tenant-1", Author{ID: "user-1", Name: "Sam"}, "Team lunch on Friday")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := svc.DeletePost(ctx, "tenant-1", post.ID, "user-2"); !errors.Is(err, ErrNotPostOwner) {
		t.Fatalf("expected ErrNotPostOwner, got %v", err)
	}
	if err := svc.DeletePost(ctx, "tenant-1", post.ID, "user-1"); err != nil {
		t.Fatalf("expected author delete to succeed, got %v", err)
	}
	if _, err := svc.ListPosts(ctx, "tenant-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
