package feed

import (
	"context"

	"craftlink/models"
)

// PostInput carries the fields accepted when creating a post.
type PostInput struct {
	Content   string   `json:"content" binding:"required"`
	Images    []string `json:"images"`
	ProjectID string   `json:"projectId"`
	Type      string   `json:"type" binding:"required"`
}

// FeedService manages posts and assembles the home feed.
type FeedService interface {
	// CreatePost publishes a post authored by userID.
	CreatePost(ctx context.Context, userID string, input PostInput) (*models.Post, error)
	// DeletePost removes a post the user owns.
	DeletePost(ctx context.Context, userID, postID string) error
	// Comment appends a comment to a post.
	Comment(ctx context.Context, userID, postID, content string) (*models.Comment, error)
	// Like records a like, idempotently.
	Like(ctx context.Context, userID, postID string) error
	// Unlike removes a like.
	Unlike(ctx context.Context, userID, postID string) error
	// UserPosts lists a single author's posts, newest first.
	UserPosts(ctx context.Context, userID string, page int) ([]models.Post, error)
	// HomeFeed assembles the user's feed: own posts plus those of accepted
	// connections, newest first, paginated.
	HomeFeed(ctx context.Context, userID string, page int) ([]models.Post, error)
}
