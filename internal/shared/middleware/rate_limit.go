package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"employee-service/internal/shared/response"
)

// LimiterStore keeps one token bucket per client key and forgets keys idle
// for longer than idleTTL.
type LimiterStore struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewLimiterStore(rps float64, burst int) *LimiterStore {
	return &LimiterStore{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
	}
}

// Get returns the limiter for key, creating it on first use
func (s *LimiterStore) Get(key string) *rate.Limiter {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// Cleanup drops limiters not used within idleTTL
func (s *LimiterStore) Cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// Len reports how many keys are tracked
func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor runs Cleanup every interval until ctx is cancelled
func (s *LimiterStore) StartJanitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

// RateLimit rejects requests over the per-client-IP budget with 429
func RateLimit(store *LimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		lim := store.Get(c.ClientIP())

		if !lim.Allow() {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(lim)))
			response.TooManyRequests(c, "Rate limit exceeded")
			return
		}

		c.Next()
	}
}

func retryAfterSeconds(lim *rate.Limiter) int {
	if lim.Limit() <= 0 {
		return 1
	}
	secs := int(time.Duration(float64(time.Second) / float64(lim.Limit())).Seconds())
	if secs < 1 {
		return 1
	}
	return secs
}
