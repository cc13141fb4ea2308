// Package ratelimit provides per-client rate limiting using a token bucket.
// Generation requests fan out into provider calls, so the API throttles
// clients before work is queued.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	Limit   int           // requests per window
	Window  time.Duration // refill window
	Burst   int           // bucket capacity; defaults to Limit
}

// LoadConfig reads rate limit settings from the environment.
// RATE_LIMIT_ENABLED defaults to true; RATE_LIMIT_PER_MINUTE defaults to 30.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled: true,
		Limit:   30,
		Window:  time.Minute,
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			cfg.Limit = limit
		}
	}
	return cfg
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter tracks one token bucket per client ID.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	capacity   float64
	refillRate float64 // tokens per second

	stop chan struct{}
}

// NewLimiter creates a limiter from config. A nil config uses the defaults
// from LoadConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{Enabled: true, Limit: 30, Window: time.Minute}
	}
	capacity := config.Burst
	if capacity <= 0 {
		capacity = config.Limit
	}
	window := config.Window
	if window <= 0 {
		window = time.Minute
	}

	l := &Limiter{
		buckets:    make(map[string]*bucket),
		config:     config,
		capacity:   float64(capacity),
		refillRate: float64(config.Limit) / window.Seconds(),
		stop:       make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow consumes one token for clientID when available.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[clientID] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(l.capacity, b.tokens+elapsed*l.refillRate)
	b.lastRefill = now
	b.lastAccess = now

	allowed := b.tokens >= 1.0
	if allowed {
		b.tokens -= 1.0
	}

	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: int(b.tokens),
		ResetTime: now.Add(time.Duration((l.capacity - b.tokens) / l.refillRate * float64(time.Second))),
	}
	if !allowed {
		info.RetryAfter = time.Duration((1.0 - b.tokens) / l.refillRate * float64(time.Second))
	}
	return allowed, info
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.dropStale(time.Hour)
		case <-l.stop:
			return
		}
	}
}

// dropStale removes buckets idle longer than maxIdle.
func (l *Limiter) dropStale(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}
