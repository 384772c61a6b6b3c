package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// NewScheduler parses a five-field cron schedule evaluated in timezone and
// binds it to trigger. Each fired run is bounded by timeout.
func NewScheduler(trigger Trigger, schedule, timezone string, timeout time.Duration) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh timezone %q: %w", timezone, err)
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		trigger:  trigger,
		timeout:  timeout,
		schedule: schedule,
	}
	id, err := s.cron.AddFunc(schedule, s.fire)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	s.entryID = id
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info("Refresh scheduler started", "schedule", s.schedule, "next_run", s.Next())
}

// Stop halts the scheduler and returns a context done when a running job completes.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Next returns the next scheduled run time, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) fire() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if _, err := s.trigger.Run(ctx, false); err != nil {
		if errors.Is(err, ErrRunInProgress) {
			log.Warn("Skipping scheduled refresh, previous run still active")
			return
		}
		log.Error("Scheduled refresh failed", "error", err)
	}
}
