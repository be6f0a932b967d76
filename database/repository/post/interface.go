// File: database/repository/post/interface.go
package postRepo

import (
	"errors"

	"craftlink/models"
)

// ErrPostNotFound is returned when a post id matches no document.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines data access for feed posts.
type PostRepository interface {
	// Create inserts a new post.
	Create(post *models.Post) error
	// GetByID retrieves a post by id.
	GetByID(id string) (*models.Post, error)
	// GetByAuthors retrieves posts by the given authors, newest first,
	// paginated with limit/offset.
	GetByAuthors(authorIDs []string, limit, offset int) ([]models.Post, error)
	// AddComment appends a comment to a post.
	AddComment(postID string, comment models.Comment) error
	// Like records a like; adding the same user twice is a no-op.
	Like(postID, userID string) error
	// Unlike removes a like; absent likes are a no-op.
	Unlike(postID, userID string) error
	// Delete removes a post owned by the given user.
	Delete(postID, userID string) error
}
