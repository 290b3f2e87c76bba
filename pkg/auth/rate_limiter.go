package auth

import (
	"sync"
	"time"
)

// SlidingWindowLimiter implements a sliding window rate limiter
type SlidingWindowLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

// NewSlidingWindowLimiter creates a limiter allowing limit requests per window
func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	limiter := &SlidingWindowLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go limiter.cleanup()
	return limiter
}

// Allow reports whether the key may make another request now
func (l *SlidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	recent := l.requests[key][:0]
	for _, t := range l.requests[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.limit {
		l.requests[key] = recent
		return false
	}

	l.requests[key] = append(recent, now)
	return true
}

// cleanup periodically drops keys with no recent requests
func (l *SlidingWindowLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for key, times := range l.requests {
			active := false
			for _, t := range times {
				if t.After(cutoff) {
					active = true
					break
				}
			}
			if !active {
				delete(l.requests, key)
			}
		}
		l.mu.Unlock()
	}
}

// IPRateLimiter rate-limits unauthenticated requests by client IP
type IPRateLimiter struct {
	limiter *SlidingWindowLimiter
}

// NewIPRateLimiter creates an IP-keyed rate limiter
func NewIPRateLimiter(limit int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{limiter: NewSlidingWindowLimiter(limit, window)}
}

// Allow reports whether the IP may make another request
func (l *IPRateLimiter) Allow(ip string) bool {
	return l.limiter.Allow("ip:" + ip)
}

// UserRateLimiter rate-limits authenticated requests by user ID
type UserRateLimiter struct {
	limiter *SlidingWindowLimiter
}

// NewUserRateLimiter creates a user-keyed rate limiter
func NewUserRateLimiter(limit int, window time.Duration) *UserRateLimiter {
	return &UserRateLimiter{limiter: NewSlidingWindowLimiter(limit, window)}
}

// Allow reports whether the user may make another request
func (l *UserRateLimiter) Allow(userID string) bool {
	return l.limiter.Allow("user:" + userID)
}
