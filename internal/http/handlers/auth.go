package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BakedBeans3210/limigo/internal/domain"
	"github.com/BakedBeans3210/limigo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type AuthRequest struct {
	Username string `json:"username"`
}

// Auth resolves-or-creates a user by username and issues a token. New
// users start with a full character storage.
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || len(username) > 64 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid username"})
		return
	}

	ctx := c.Request.Context()

	user, err := h.Users.GetByUsername(ctx, username)
	if err != nil {
		// only a missing row means "provision"; a store outage must not
		// be mistaken for a new user
		if !errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		user = &domain.User{
			Username:    username,
			CharBalance: service.MaxCharStorage,
		}
		if err := h.Users.Create(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"char_balance": user.CharBalance,
			"post_count":   user.PostCount,
		},
	})
}
