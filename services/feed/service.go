package feed

import (
	"context"
	"fmt"
	"time"

	connectionRepo "craftlink/database/repository/connection"
	postRepo "craftlink/database/repository/post"
	"craftlink/models"
	"craftlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageSize is the number of posts per feed page.
const PageSize = 20

// nowFunc returns the current time; tests may substitute a fixed clock.
var nowFunc = time.Now

// DefaultFeedService is the production implementation of FeedService.
type DefaultFeedService struct {
	Posts       postRepo.PostRepository
	Connections connectionRepo.ConnectionRepository
	Cache       FeedCache
}

// CreatePost publishes a post and invalidates the author's cached feed.
func (s *DefaultFeedService) CreatePost(ctx context.Context, userID string, input PostInput) (*models.Post, error) {
	if !models.ValidPostType(input.Type) {
		return nil, fmt.Errorf("unsupported post type %q", input.Type)
	}

	post := &models.Post{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   input.Content,
		Images:    input.Images,
		ProjectID: input.ProjectID,
		Type:      input.Type,
	}
	if err := s.Posts.Create(post); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return post, nil
}

// DeletePost removes a post the user owns.
func (s *DefaultFeedService) DeletePost(ctx context.Context, userID, postID string) error {
	if err := s.Posts.Delete(postID, userID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// Comment appends a comment to a post.
func (s *DefaultFeedService) Comment(ctx context.Context, userID, postID, content string) (*models.Comment, error) {
	comment := models.Comment{
		ID:      uuid.New().String(),
		UserID:  userID,
		Content: content,
	}
	comment.CreatedAt = nowFunc()
	if err := s.Posts.AddComment(postID, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Like records a like, idempotently.
func (s *DefaultFeedService) Like(ctx context.Context, userID, postID string) error {
	return s.Posts.Like(postID, userID)
}

// Unlike removes a like.
func (s *DefaultFeedService) Unlike(ctx context.Context, userID, postID string) error {
	return s.Posts.Unlike(postID, userID)
}

// UserPosts lists a single author's posts, newest first.
func (s *DefaultFeedService) UserPosts(ctx context.Context, userID string, page int) ([]models.Post, error) {
	return s.Posts.GetByAuthors([]string{userID}, PageSize, pageOffset(page))
}

// HomeFeed assembles the user's feed from cache or storage.
func (s *DefaultFeedService) HomeFeed(ctx context.Context, userID string, page int) ([]models.Post, error) {
	if s.Cache != nil {
		if posts, ok := s.Cache.GetPage(ctx, userID, page); ok {
			return posts, nil
		}
	}

	connectedIDs, err := s.Connections.ConnectedIDs(userID)
	if err != nil {
		return nil, err
	}
	authors := append(connectedIDs, userID)

	posts, err := s.Posts.GetByAuthors(authors, PageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.SetPage(ctx, userID, page, posts); err != nil {
			utils.GetLogger().Warn("failed to cache feed page",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return posts, nil
}

func (s *DefaultFeedService) invalidate(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		utils.GetLogger().Warn("failed to invalidate feed cache",
			zap.String("userID", userID), zap.Error(err))
	}
}

func pageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
