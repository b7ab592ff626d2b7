package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate limit tiers.
const (
	// Login / register / password reset
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// Everything else
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given bucket key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes stale entries from the visitors map to prevent
// memory leaks.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit throttles requests per caller. Authenticated callers get a
// bucket per user ID, anonymous callers one per client IP, with separate
// quotas for strict and general tiers.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, burst, tier := limitGeneral, burstGeneral, "general"
		if isAuthPath(c.FullPath()) {
			limit, burst, tier = limitStrict, burstStrict, "strict"
		}

		identity := "ip:" + c.ClientIP()
		if userID := UserID(c); userID != 0 {
			identity = fmt.Sprintf("user:%d", userID)
		}

		key := fmt.Sprintf("%s:%s", identity, tier)
		if !getVisitor(key, limit, burst).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func isAuthPath(path string) bool {
	switch path {
	case "/api/auth/login", "/api/auth/register", "/api/auth/forgot-password", "/api/auth/reset-password":
		return true
	}
	return false
}
