package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgball2608/newsportal/pkg/logger"
)

func TestAllowBurstThenBlock(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 2)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// other clients keep their own bucket
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestNonPositiveSettingsAreClamped(t *testing.T) {
	l := NewInMemoryLimiter(0, time.Hour, 0)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestSweepDropsIdleKeys(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewInMemoryLimiter(1, time.Minute, 1, WithClock(clock))

	assert.True(t, l.Allow("10.0.0.1"))
	clock.Advance(5 * time.Minute)
	assert.True(t, l.Allow("10.0.0.2"))

	assert.Equal(t, 1, l.Sweep(5*time.Minute))
	assert.Equal(t, 1, l.Len())

	// the active key keeps its spent bucket
	assert.False(t, l.Allow("10.0.0.2"))
}

func TestScheduleSweep(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewInMemoryLimiter(1, time.Minute, 1, WithClock(clock))
	for i := range 10 {
		l.Allow(fmt.Sprintf("10.0.0.%d", i))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, ScheduleSweep(ctx, l, time.Second, time.Minute, clock, logger.Nop()))

	assert.Eventually(t, func() bool {
		clock.Advance(time.Second)
		return l.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
