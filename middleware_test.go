package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_Burst(t *testing.T) {
	l := newClientLimiter(60, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, l.allowAt("a", now))
	assert.True(t, l.allowAt("a", now))
	assert.False(t, l.allowAt("a", now))

	// keys are independent
	assert.True(t, l.allowAt("b", now))

	// 60 per minute refills one token a second
	assert.True(t, l.allowAt("a", now.Add(time.Second)))
	assert.False(t, l.allowAt("a", now.Add(time.Second)))
}

func TestClientLimiter_SweepsIdle(t *testing.T) {
	l := newClientLimiter(5, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		l.allowAt(fmt.Sprintf("client-%d", i), now)
	}
	assert.Equal(t, 10, l.size())

	l.allowAt("late", now.Add(11*time.Minute))
	assert.Equal(t, 1, l.size())
}
