package feed

import (
	"context"
	"fmt"
	"testing"

	postRepo "craftlink/database/repository/post"
	"craftlink/models"
)

type memPostRepo struct {
	posts []models.Post
}

func (r *memPostRepo) Create(post *models.Post) error {
	r.posts = append([]models.Post{*post}, r.posts...)
	return nil
}

func (r *memPostRepo) GetByID(id string) (*models.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID == id {
			return &r.posts[i], nil
		}
	}
	return nil, postRepo.ErrPostNotFound
}

func (r *memPostRepo) GetByAuthors(authorIDs []string, limit, offset int) ([]models.Post, error) {
	authors := make(map[string]bool, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = true
	}
	matched := []models.Post{}
	for _, p := range r.posts {
		if authors[p.UserID] {
			matched = append(matched, p)
		}
	}
	if offset >= len(matched) {
		return []models.Post{}, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memPostRepo) AddComment(postID string, comment models.Comment) error {
	for i := range r.posts {
		if r.posts[i].ID == postID {
			r.posts[i].Comments = append(r.posts[i].Comments, comment)
			return nil
		}
	}
	return postRepo.ErrPostNotFound
}

func (r *memPostRepo) Like(postID, userID string) error {
	for i := range r.posts {
		if r.posts[i].ID == postID {
			for _, l := range r.posts[i].Likes {
				if l == userID {
					return nil
				}
			}
			r.posts[i].Likes = append(r.posts[i].Likes, userID)
			return nil
		}
	}
	return postRepo.ErrPostNotFound
}

func (r *memPostRepo) Unlike(postID, userID string) error {
	for i := range r.posts {
		if r.posts[i].ID == postID {
			likes := r.posts[i].Likes[:0]
			for _, l := range r.posts[i].Likes {
				if l != userID {
					likes = append(likes, l)
				}
			}
			r.posts[i].Likes = likes
			return nil
		}
	}
	return postRepo.ErrPostNotFound
}

func (r *memPostRepo) Delete(postID, userID string) error {
	for i := range r.posts {
		if r.posts[i].ID == postID && r.posts[i].UserID == userID {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return postRepo.ErrPostNotFound
}

type memConnectionRepo struct {
	connected map[string][]string
}

func (r *memConnectionRepo) Create(conn *models.Connection) error { return nil }

func (r *memConnectionRepo) Accept(connectionID, userID string) error { return nil }

func (r *memConnectionRepo) GetByPair(userA, userB string) (*models.Connection, error) {
	return nil, nil
}

func (r *memConnectionRepo) ListForUser(userID, status string) ([]models.Connection, error) {
	return nil, nil
}

func (r *memConnectionRepo) ConnectedIDs(userID string) ([]string, error) {
	return r.connected[userID], nil
}

type memFeedCache struct {
	pages        map[string][]models.Post
	invalidated  int
	servedFromMe bool
}

func cacheKey(userID string, page int) string {
	return fmt.Sprintf("%s:%d", userID, page)
}

func (c *memFeedCache) GetPage(ctx context.Context, userID string, page int) ([]models.Post, bool) {
	posts, ok := c.pages[cacheKey(userID, page)]
	if ok {
		c.servedFromMe = true
	}
	return posts, ok
}

func (c *memFeedCache) SetPage(ctx context.Context, userID string, page int, posts []models.Post) error {
	if c.pages == nil {
		c.pages = make(map[string][]models.Post)
	}
	c.pages[cacheKey(userID, page)] = posts
	return nil
}

func (c *memFeedCache) Invalidate(ctx context.Context, userID string) error {
	c.invalidated++
	for key := range c.pages {
		delete(c.pages, key)
	}
	return nil
}

func newFeedFixture() (*DefaultFeedService, *memPostRepo, *memFeedCache) {
	posts := &memPostRepo{}
	cache := &memFeedCache{}
	svc := &DefaultFeedService{
		Posts: posts,
		Connections: &memConnectionRepo{
			connected: map[string][]string{"realtor-1": {"contractor-1"}},
		},
		Cache: cache,
	}
	return svc, posts, cache
}

func TestHomeFeed_IncludesOwnAndConnectedPosts(t *testing.T) {
	svc, _, _ := newFeedFixture()
	ctx := context.Background()

	if _, err := svc.CreatePost(ctx, "realtor-1", PostInput{Content: "listing", Type: models.PostTypeGeneral}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreatePost(ctx, "contractor-1", PostInput{Content: "new cert", Type: models.PostTypeCertification}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreatePost(ctx, "stranger", PostInput{Content: "noise", Type: models.PostTypeGeneral}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	feed, err := svc.HomeFeed(ctx, "realtor-1", 1)
	if err != nil {
		t.Fatalf("home feed failed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}
	for _, p := range feed {
		if p.UserID == "stranger" {
			t.Fatalf("expected unconnected author excluded, got %+v", p)
		}
	}
}

func TestHomeFeed_ServesSecondReadFromCache(t *testing.T) {
	svc, _, cache := newFeedFixture()
	ctx := context.Background()

	if _, err := svc.HomeFeed(ctx, "realtor-1", 1); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if cache.servedFromMe {
		t.Fatalf("first read should miss the cache")
	}
	if _, err := svc.HomeFeed(ctx, "realtor-1", 1); err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if !cache.servedFromMe {
		t.Fatalf("second read should hit the cache")
	}
}

func TestCreatePost_RejectsUnknownType(t *testing.T) {
	svc, _, _ := newFeedFixture()

	_, err := svc.CreatePost(context.Background(), "realtor-1", PostInput{Content: "x", Type: "meme"})
	if err == nil {
		t.Fatalf("expected unsupported type to be rejected")
	}
}

func TestCreatePost_InvalidatesCache(t *testing.T) {
	svc, _, cache := newFeedFixture()
	ctx := context.Background()

	if _, err := svc.HomeFeed(ctx, "realtor-1", 1); err != nil {
		t.Fatalf("warm read failed: %v", err)
	}
	if _, err := svc.CreatePost(ctx, "realtor-1", PostInput{Content: "fresh", Type: models.PostTypeGeneral}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidated == 0 {
		t.Fatalf("expected cache invalidation after publishing")
	}

	feed, err := svc.HomeFeed(ctx, "realtor-1", 1)
	if err != nil {
		t.Fatalf("reread failed: %v", err)
	}
	if len(feed) != 1 || feed[0].Content != "fresh" {
		t.Fatalf("expected fresh post in feed, got %+v", feed)
	}
}

func TestDeletePost_OnlyOwner(t *testing.T) {
	svc, repo, _ := newFeedFixture()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "realtor-1", PostInput{Content: "x", Type: models.PostTypeGeneral})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeletePost(ctx, "someone-else", post.ID); err == nil {
		t.Fatalf("expected non-owner delete to fail")
	}
	if err := svc.DeletePost(ctx, "realtor-1", post.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("expected post removed, got %d", len(repo.posts))
	}
}

func TestLike_Idempotent(t *testing.T) {
	svc, repo, _ := newFeedFixture()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "contractor-1", PostInput{Content: "x", Type: models.PostTypeProjectUpdate})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Like(ctx, "realtor-1", post.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := svc.Like(ctx, "realtor-1", post.ID); err != nil {
		t.Fatalf("repeat like failed: %v", err)
	}
	stored, _ := repo.GetByID(post.ID)
	if len(stored.Likes) != 1 {
		t.Fatalf("expected a single like, got %v", stored.Likes)
	}

	if err := svc.Unlike(ctx, "realtor-1", post.ID); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	stored, _ = repo.GetByID(post.ID)
	if len(stored.Likes) != 0 {
		t.Fatalf("expected like removed, got %v", stored.Likes)
	}
}
