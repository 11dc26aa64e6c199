package middleware

import (
	"fmt"
	"sync"
	"time"

	"estatehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one limiter per client IP for a single scope.
type rateLimiterStore struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     rate.Limit
	burst     int
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiterStore(limit int, window time.Duration) *rateLimiterStore {
	if limit < 1 {
		limit = 1
	}
	return &rateLimiterStore{
		visitors:  make(map[string]*visitor),
		every:     rate.Every(window / time.Duration(limit)),
		burst:     limit,
		idleAfter: window,
		now:       time.Now,
	}
}

// allow reports whether ip may make another request now.
func (s *rateLimiterStore) allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) > s.idleAfter {
		for key, v := range s.visitors {
			if now.Sub(v.lastSeen) > s.idleAfter {
				delete(s.visitors, key)
			}
		}
		s.lastSweep = now
	}

	v, exists := s.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.every, s.burst)}
		s.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit allows limit requests per window per client IP. scope names
// the limiter in logs and keeps separate budgets per route group.
func RateLimit(scope string, limit int, window time.Duration) gin.HandlerFunc {
	store := newRateLimiterStore(limit, window)
	message := fmt.Sprintf("Too many requests, please try again later (limit %d per %s)", limit, window)
	return func(c *gin.Context) {
		ip := ClientIP(c)
		if !store.allow(ip) {
			utils.RequestLogger(c).Warn("Rate limit exceeded", zap.String("scope", scope), zap.String("ip", ip))
			utils.RespondError(c, utils.RateLimited(message))
			return
		}
		c.Next()
	}
}
