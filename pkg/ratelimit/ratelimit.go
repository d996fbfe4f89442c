package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/orgball2608/newsportal/pkg/logger"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(key string) bool
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter keeps one token bucket per key (a client address for form posts).
type InMemoryLimiter struct {
	buckets map[string]*bucket
	mu      sync.Mutex
	r       rate.Limit
	b       int
	clock   clockwork.Clock
}

type Option func(*InMemoryLimiter)

func WithClock(clock clockwork.Clock) Option {
	return func(l *InMemoryLimiter) {
		l.clock = clock
	}
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(5, time.Minute, 3) -> 5 posts a minute, burst of 3
func NewInMemoryLimiter(requests int, per time.Duration, burst int, opts ...Option) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	if burst <= 0 {
		burst = 1
	}
	l := &InMemoryLimiter{
		buckets: make(map[string]*bucket),
		r:       rate.Every(per / time.Duration(requests)),
		b:       burst,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ Limiter = (*InMemoryLimiter)(nil)

// Allow checks if key is allowed to perform an action
func (l *InMemoryLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, exists := l.buckets[key]
	if !exists {
		b = &bucket{limiter: rate.NewLimiter(l.r, l.b)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// Sweep forgets keys not seen for idle. A forgotten key starts over with a
// full bucket, so idle should be at least the refill time of a burst.
func (l *InMemoryLimiter) Sweep(idle time.Duration) int {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= idle {
			delete(l.buckets, key)
			n++
		}
	}
	return n
}

func (l *InMemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// ScheduleSweep runs l.Sweep(idle) every interval until ctx is done.
func ScheduleSweep(ctx context.Context, l *InMemoryLimiter, interval, idle time.Duration, clock clockwork.Clock, log logger.Logger) error {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	log = log.WithComponent("RateLimitSweeper")

	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			if n := l.Sweep(idle); n > 0 {
				log.Debug("Dropped idle rate limit buckets", "dropped", n, "remaining", l.Len())
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule rate limit sweep: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		if err := scheduler.Shutdown(); err != nil {
			log.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
