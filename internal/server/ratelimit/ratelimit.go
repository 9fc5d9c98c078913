// Package ratelimit provides per-client request throttling using token buckets.
package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// bucket is a token bucket refilled at a steady rate. One bucket exists per
// client and endpoint combination.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// take refills the bucket for the elapsed time and consumes one token if
// available. Returns whether the request is allowed plus the remaining count
// and the time the bucket will be full again.
func (b *bucket) take() (allowed bool, remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(float64(b.capacity), b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	resetTime = now
	if b.tokens < float64(b.capacity) {
		secondsUntilFull := (float64(b.capacity) - b.tokens) / b.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, remaining, resetTime
}

// Rule sets the limit for endpoints whose path starts with PathPrefix. A
// Limit of zero exempts the endpoint entirely.
type Rule struct {
	PathPrefix string
	Limit      int
	Window     time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	Rules         []Rule
}

// LoadConfig builds the limiter configuration from environment variables.
// RATE_LIMIT_ENABLED=false disables limiting; RATE_LIMIT_DEFAULT overrides
// the per-minute default. Ranking is the expensive endpoint so it carries a
// tighter rule; health checks are exempt.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{PathPrefix: "/health", Limit: 0},
			{PathPrefix: "/match/rank", Limit: 30, Window: time.Minute},
			{PathPrefix: "/match/score", Limit: 120, Window: time.Minute},
		},
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.Enabled = strings.ToLower(v) != "false"
	}
	if v := os.Getenv("RATE_LIMIT_DEFAULT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultLimit = n
		}
	}

	return cfg
}

// Info reports rate limit state to the caller for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients.
type Limiter struct {
	config  *Config
	buckets map[string]*bucket
	mu      sync.Mutex
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	return &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}
}

// matchRule returns the first rule whose prefix matches the path, or nil.
func (l *Limiter) matchRule(path string) *Rule {
	for i := range l.config.Rules {
		if strings.HasPrefix(path, l.config.Rules[i].PathPrefix) {
			return &l.config.Rules[i]
		}
	}
	return nil
}

// Allow checks whether a request from the given client to the given path is
// within its limit, consuming one token when it is.
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	limit := l.config.DefaultLimit
	window := l.config.DefaultWindow
	if rule := l.matchRule(path); rule != nil {
		if rule.Limit <= 0 {
			return true, Info{Allowed: true}
		}
		limit = rule.Limit
		window = rule.Window
	}

	key := clientID + ":" + path

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(limit, float64(limit)/window.Seconds())
		l.buckets[key] = b
	}
	l.mu.Unlock()

	allowed, remaining, resetTime := b.take()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(time.Until(resetTime), 0)
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}
