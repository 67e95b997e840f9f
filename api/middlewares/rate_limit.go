package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor holds the rate limiter and the last time we saw this IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	maxVisitors    = 10000
	visitorIdleTTL = 3 * time.Minute
)

// visitorStore keeps one token bucket per client IP.
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    time.Duration
	burst    int
}

func newVisitorStore(every time.Duration, burst int) *visitorStore {
	return &visitorStore{
		visitors: make(map[string]*visitor),
		every:    every,
		burst:    burst,
	}
}

func (s *visitorStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		if len(s.visitors) >= maxVisitors {
			s.pruneLocked(visitorIdleTTL)
		}
		limiter := rate.NewLimiter(rate.Every(s.every), s.burst)
		s.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// pruneLocked forgets visitors idle for longer than maxIdle. s.mu must be held.
func (s *visitorStore) pruneLocked(maxIdle time.Duration) {
	for ip, v := range s.visitors {
		if time.Since(v.lastSeen) > maxIdle {
			delete(s.visitors, ip)
		}
	}
}

func (s *visitorStore) middleware(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status": http.StatusTooManyRequests,
				"error":  message,
			})
			return
		}
		c.Next()
	}
}

// RateLimitMiddleware applies a per-IP limit for general API calls: one
// request per second on average, bursts of 5.
func RateLimitMiddleware() gin.HandlerFunc {
	return newVisitorStore(time.Second, 5).middleware("Too many requests. Please slow down.")
}

// LoginRateLimitMiddleware is the stricter limit for sign-in, sign-up and
// password reset: one request every 10 seconds, bursts of 3.
func LoginRateLimitMiddleware() gin.HandlerFunc {
	return newVisitorStore(10*time.Second, 3).middleware("Too many authentication attempts. Please wait and try again.")
}
