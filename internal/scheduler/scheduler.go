// Package scheduler runs the daily trending build on a fixed UTC schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/launchdeck/launchdeck/internal/application/trending"
	"github.com/robfig/cron/v3"
)

// jobTimeout bounds a single trending build; the ranking query and the
// snapshot upsert are each a single round trip.
const jobTimeout = 2 * time.Minute

// Scheduler owns the cron loop for the daily trending build.
type Scheduler struct {
	c   *cron.Cron
	svc trending.Service
}

// New creates a scheduler that builds today's trending snapshot on the given
// cron spec, evaluated in UTC.
func New(svc trending.Service) *Scheduler {
	return &Scheduler{
		c:   cron.New(cron.WithLocation(time.UTC)),
		svc: svc,
	}
}

// Start registers the job and starts the cron loop.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.c.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.c.Start()
	slog.Info("trending scheduler started", "spec", spec)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	res, err := s.svc.Build(ctx, time.Now().UTC())
	if err != nil {
		slog.Error("scheduled trending build failed", "err", err)
		return
	}
	slog.Info("daily trending generated", "snapshot_id", res.SnapshotID, "count", res.Count)
}
