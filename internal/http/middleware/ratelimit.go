package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type windowCounter struct {
	start time.Time
	count int
}

var (
	rlMu      sync.Mutex
	rlWindows = make(map[string]*windowCounter)
)

// allowInMemory is a fixed-window counter shared by SimpleRateLimit and the
// Redis limiters' fallback path when Redis is not configured.
func allowInMemory(key string, maxRequests int, window time.Duration) bool {
	now := time.Now()

	rlMu.Lock()
	defer rlMu.Unlock()

	// evict stale windows so the map does not grow unbounded
	if len(rlWindows) > 10000 {
		for k, w := range rlWindows {
			if now.Sub(w.start) > window {
				delete(rlWindows, k)
			}
		}
	}

	w, ok := rlWindows[key]
	if !ok || now.Sub(w.start) > window {
		rlWindows[key] = &windowCounter{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= maxRequests
}

// SimpleRateLimit blocks clients that send more than maxRequests per window
// without needing Redis.
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowInMemory("simple:"+c.ClientIP(), maxRequests, window) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
