package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 3, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("client-a")
		assert.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Minute})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed, "a throttled client must not affect others")
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed)
	}
}

func TestLimiter_Refill(t *testing.T) {
	// 600 per minute refills 10 tokens per second.
	l := NewLimiter(&Config{Enabled: true, Limit: 600, Window: time.Minute, Burst: 1})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)

	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed, "bucket should refill over time")
}

func TestLimiter_DropStale(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Minute})
	defer l.Stop()

	l.Allow("client-a")
	require.Len(t, l.buckets, 1)

	l.dropStale(0)
	assert.Empty(t, l.buckets)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 120, cfg.Limit)
}
