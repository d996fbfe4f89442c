package story

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/orgball2608/newsportal/pkg/logger"
)

func newTestRegistry(clock clockwork.Clock) *Registry {
	return NewRegistry(RegistryOpts{
		Config: testConfig(),
		TTL:    time.Minute,
		Clock:  clock,
		Logger: logger.Nop(),
	})
}

func TestRegistryStartGetClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	r := newTestRegistry(clockwork.NewFakeClock())
	defer r.Shutdown()

	id, p, err := r.Start(images(2))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Same(t, p, got)

	assert.True(t, r.Close(id))
	assert.False(t, r.Close(id))
	assert.False(t, p.IsOpen())
	assert.Zero(t, r.Len())
}

func TestRegistryStartEmptyStory(t *testing.T) {
	r := newTestRegistry(clockwork.NewFakeClock())
	defer r.Shutdown()

	_, _, err := r.Start(images(0))
	assert.ErrorIs(t, err, ErrEmptyStory)
	assert.Zero(t, r.Len())
}

func TestRegistryReap(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	clock := clockwork.NewFakeClock()
	r := newTestRegistry(clock)
	defer r.Shutdown()

	closedID, closed, err := r.Start(images(1))
	require.NoError(t, err)
	closed.Close()

	idleID, _, err := r.Start(images(1))
	require.NoError(t, err)
	_, activeP, err := r.Start(images(1))
	require.NoError(t, err)
	activeP.Toggle()

	assert.Equal(t, 1, r.Reap())
	_, ok := r.Get(closedID)
	assert.False(t, ok)

	// Paused players never tick, so the clock only moves idle time forward.
	idle, _ := r.Get(idleID)
	idle.Toggle()
	clock.Advance(30 * time.Second)
	activeP.Toggle()
	activeP.Toggle()
	clock.Advance(40 * time.Second)

	assert.Equal(t, 1, r.Reap())
	_, ok = r.Get(idleID)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestScheduleReaper(t *testing.T) {
	clock := clockwork.NewFakeClock()
	r := newTestRegistry(clock)
	defer r.Shutdown()

	_, p, err := r.Start(images(1))
	require.NoError(t, err)
	p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, ScheduleReaper(ctx, r, time.Second, clock, logger.Nop()))

	assert.Eventually(t, func() bool {
		clock.Advance(time.Second)
		return r.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
