package handlers

import (
	"errors"
	"net/http"
	"strconv"

	postRepo "craftlink/database/repository/post"
	"craftlink/services/feed"
	"craftlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler serves the social feed endpoints.
type FeedHandler struct {
	Feed feed.FeedService
}

// NewFeedHandler constructs a FeedHandler.
func NewFeedHandler(svc feed.FeedService) *FeedHandler {
	return &FeedHandler{Feed: svc}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// CreatePostHandler handles POST /api/feed/posts.
func (h *FeedHandler) CreatePostHandler(c *gin.Context) {
	var input feed.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	post, err := h.Feed.CreatePost(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create post", err.Error())
		return
	}
	c.JSON(http.StatusCreated, post)
}

// DeletePostHandler handles DELETE /api/feed/posts/:postID.
func (h *FeedHandler) DeletePostHandler(c *gin.Context) {
	err := h.Feed.DeletePost(c.Request.Context(), currentUserID(c), c.Param("postID"))
	if err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("failed to delete post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// CommentHandler handles POST /api/feed/posts/:postID/comments.
func (h *FeedHandler) CommentHandler(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	comment, err := h.Feed.Comment(c.Request.Context(), currentUserID(c), c.Param("postID"), input.Content)
	if err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// LikeHandler handles PUT /api/feed/posts/:postID/like.
func (h *FeedHandler) LikeHandler(c *gin.Context) {
	if err := h.Feed.Like(c.Request.Context(), currentUserID(c), c.Param("postID")); err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Liked"})
}

// UnlikeHandler handles DELETE /api/feed/posts/:postID/like.
func (h *FeedHandler) UnlikeHandler(c *gin.Context) {
	if err := h.Feed.Unlike(c.Request.Context(), currentUserID(c), c.Param("postID")); err != nil {
		if errors.Is(err, postRepo.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unliked"})
}

// HomeFeedHandler handles GET /api/feed?page=N.
func (h *FeedHandler) HomeFeedHandler(c *gin.Context) {
	page := pageParam(c)
	posts, err := h.Feed.HomeFeed(c.Request.Context(), currentUserID(c), page)
	if err != nil {
		utils.GetLogger().Error("failed to assemble feed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page, "posts": posts})
}

// UserPostsHandler handles GET /api/feed/users/:userID/posts?page=N.
func (h *FeedHandler) UserPostsHandler(c *gin.Context) {
	page := pageParam(c)
	posts, err := h.Feed.UserPosts(c.Request.Context(), c.Param("userID"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page, "posts": posts})
}
