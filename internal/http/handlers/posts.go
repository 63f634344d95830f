package handlers

import (
	"errors"
	"net/http"

	"github.com/BakedBeans3210/limigo/internal/service"

	"github.com/gin-gonic/gin"
)

type CreatePostRequest struct {
	Content string   `json:"content"`
	Links   []string `json:"links"`
	Images  []string `json:"images"`
	Video   *string  `json:"video"`
}

// CreatePost charges the author and persists the post.
// Expects {content, links[], images[], video?}.
func (h *Handler) CreatePost(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req CreatePostRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	ctx := c.Request.Context()
	result, err := h.Ledger.CreatePost(ctx, userID, req.Content, req.Links, req.Images, req.Video)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrInsufficientBalance):
			c.JSON(http.StatusForbidden, gin.H{"error": "not enough characters"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		}
		return
	}

	PostsCreated.Inc()
	h.Feed.Invalidate(ctx)

	c.JSON(http.StatusOK, gin.H{
		"post":            result.Post,
		"cost":            result.Cost,
		"remaining_chars": result.NewBalance,
	})
}

// Regenerate credits the caller for elapsed whole hours
func (h *Handler) Regenerate(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ctx := c.Request.Context()
	newBalance, err := h.Ledger.Regenerate(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrRegenTooSoon):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too soon to regenerate"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		}
		return
	}

	RegenApplied.Inc()

	c.JSON(http.StatusOK, gin.H{"new_balance": newBalance})
}

// FeedLatest returns the latest posts across all authors, served through
// the Redis cache when available
func (h *Handler) FeedLatest(c *gin.Context) {
	ctx := c.Request.Context()

	if posts, ok := h.Feed.Get(ctx); ok {
		c.JSON(http.StatusOK, gin.H{"posts": posts, "cached": true})
		return
	}

	posts, err := h.PostRepo.GetLatest(ctx, h.FeedLimit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		return
	}

	h.Feed.Set(ctx, posts)

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// MyPosts returns the current user's posts
func (h *Handler) MyPosts(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	posts, err := h.PostRepo.GetByAuthor(c.Request.Context(), userID, h.FeedLimit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
