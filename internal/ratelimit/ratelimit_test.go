package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	l := New(Config{RequestsPerMinute: 3})

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d must pass", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"), "request over the limit must be rejected")
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(Config{RequestsPerMinute: 1})

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "second client must not be affected")
}

func TestLimiter_Remaining(t *testing.T) {
	l := New(Config{RequestsPerMinute: 5})

	assert.Equal(t, 5, l.Remaining("10.0.0.1"))
	l.Allow("10.0.0.1")
	l.Allow("10.0.0.1")
	assert.Equal(t, 3, l.Remaining("10.0.0.1"))
}

func TestLimiter_DefaultLimit(t *testing.T) {
	l := New(Config{})

	for i := 0; i < 30; i++ {
		assert.True(t, l.Allow("k"), "request %d must pass with default limit", i+1)
	}
	assert.False(t, l.Allow("k"))
	assert.Equal(t, 0, l.Remaining("k"))
}
