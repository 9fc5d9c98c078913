package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsWithinLimit(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  3,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/towns")
		assert.True(t, allowed)
	}

	allowed, info := l.Allow("1.2.3.4", "/towns")
	assert.False(t, allowed)
	assert.Equal(t, 3, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})

	allowed, _ := l.Allow("1.2.3.4", "/towns")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/towns")
	require.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/towns")
	assert.True(t, allowed)
}

func TestLimiter_RuleOverridesDefault(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{PathPrefix: "/match/rank", Limit: 1, Window: time.Minute},
		},
	})

	allowed, info := l.Allow("1.2.3.4", "/match/rank")
	require.True(t, allowed)
	assert.Equal(t, 1, info.Limit)

	allowed, _ = l.Allow("1.2.3.4", "/match/rank")
	assert.False(t, allowed)
}

func TestLimiter_ExemptEndpoint(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{PathPrefix: "/health", Limit: 0},
		},
	})

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health")
		assert.True(t, allowed)
	}
}

func TestLimiter_DisabledPassesEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, DefaultLimit: 1, DefaultWindow: time.Minute})

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/towns")
		assert.True(t, allowed)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_DEFAULT", "42")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
}
