package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me returns the current user's document, including balance and counters
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"char_balance": user.CharBalance,
		"post_count":   user.PostCount,
		"last_post":    user.LastPost,
		"last_regen":   user.LastRegen,
		"created_at":   user.CreatedAt,
	})
}

// MyLedger returns recent balance movements for the current user
func (h *Handler) MyLedger(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	entries, err := h.Entries.GetByUserID(c.Request.Context(), userID, 100)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
		return
	}

	// empty history must render as [], not null
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"id":     e.ID,
			"type":   e.Type,
			"amount": e.Amount,
			"meta":   e.Meta,
			"date":   e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"ledger": out})
}
