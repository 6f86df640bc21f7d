package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

// Scheduler posts the daily prompt at a fixed local hour. Post runs the same
// pipeline the /prompt command uses.
type Scheduler struct {
	Hour int
	Post func(ctx context.Context) error
}

// Run blocks until the context is cancelled, firing Post once per day at the
// configured hour. Post failures are logged and do not stop the loop.
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf("Daily prompt scheduler running, posting at %02d:00", s.Hour)
	for {
		timer := time.NewTimer(time.Until(s.next(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("Daily prompt scheduler stopped.")
			return
		case <-timer.C:
			if err := s.Post(ctx); err != nil {
				log.Printf("[Scheduler] Daily prompt post failed: %v", err)
				sentry.CaptureException(fmt.Errorf("scheduled daily prompt failed: %w", err))
			}
		}
	}
}

// next returns the next occurrence of the configured hour after now.
func (s *Scheduler) next(now time.Time) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, 0, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}
