package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)
	defer rl.Stop()

	t.Run("First Call Allowed", func(t *testing.T) {
		ok, delay := rl.Allow("a@example.com")
		assert.True(t, ok)
		assert.Zero(t, delay)
	})

	t.Run("Second Call Delayed", func(t *testing.T) {
		ok, delay := rl.Allow("a@example.com")
		assert.False(t, ok)
		assert.Greater(t, delay, time.Duration(0))
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		ok, _ := rl.Allow("b@example.com")
		assert.True(t, ok)
	})

	t.Run("Forget Resets Key", func(t *testing.T) {
		rl.Forget("a@example.com")
		ok, _ := rl.Allow("a@example.com")
		assert.True(t, ok)
	})

	rl.Stop()
}

func TestValidatorTags(t *testing.T) {
	v := NewValidator()

	type form struct {
		Password string `json:"password" validate:"password_complexity"`
		Username string `json:"username" validate:"username"`
		Category string `json:"category" validate:"category"`
		Priority string `json:"priority" validate:"priority"`
		Region   string `json:"region" validate:"region"`
		Filter   string `json:"filter" validate:"category_filter"`
		Status   string `json:"status" validate:"status_filter"`
	}

	valid := form{Password: "Abc123", Username: "good_1", Category: "road", Priority: "high", Region: "Oran", Filter: "all", Status: "resolved"}
	assert.NoError(t, v.Struct(valid))

	invalid := form{Password: "abcdef", Username: "bad name", Category: "x", Priority: "urgent", Region: "Paris", Filter: "x", Status: "closed"}
	err := v.Struct(invalid)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "'password'")
		assert.Contains(t, err.Error(), "'region'")
	}
}
