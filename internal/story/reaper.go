package story

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"github.com/orgball2608/newsportal/pkg/logger"
)

// ScheduleReaper runs registry.Reap every interval until ctx is done.
func ScheduleReaper(ctx context.Context, registry *Registry, interval time.Duration, clock clockwork.Clock, log logger.Logger) error {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	log = log.WithComponent("StoryReaper")

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
			if n := registry.Reap(); n > 0 {
				log.Debug("Reaper pass finished", "reaped", n, "remaining", registry.Len())
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule session reaper: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		log.Info("Stopping story session reaper")
		if err := scheduler.Shutdown(); err != nil {
			log.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
