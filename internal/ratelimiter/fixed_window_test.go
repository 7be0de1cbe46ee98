package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter_AllowsUpToLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("1.2.3.4")
		assert.True(t, allowed)
	}

	allowed, retryAfter := rl.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)
}

func TestFixedWindowLimiter_PerClient(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)

	allowed, _ := rl.Allow("1.2.3.4")
	assert.True(t, allowed)

	allowed, _ = rl.Allow("1.2.3.4")
	assert.False(t, allowed)

	// a different client has its own window
	allowed, _ = rl.Allow("5.6.7.8")
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_WindowResets(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

	allowed, _ := rl.Allow("1.2.3.4")
	assert.True(t, allowed)

	allowed, _ = rl.Allow("1.2.3.4")
	assert.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _ = rl.Allow("1.2.3.4")
	assert.True(t, allowed)
}
