package scheduler

import (
	"context"
	"time"

	"github.com/AbdulWasayUl/go-covid-map/internal/logger"
	"github.com/go-co-op/gocron"
)

type Scheduler struct {
	Cron *gocron.Scheduler
}

func New() *Scheduler {
	return &Scheduler{
		Cron: gocron.NewScheduler(time.UTC),
	}
}

// RunOnce schedules fn to run a single time, immediately, on the scheduler's goroutine.
// The returned channel is closed once fn has returned.
func (s *Scheduler) RunOnce(ctx context.Context, name string, fn func(ctx context.Context)) (<-chan struct{}, error) {
	done := make(chan struct{})

	_, err := s.Cron.Every(1).Hour().Tag(name).LimitRunsTo(1).StartImmediately().Do(func() {
		defer close(done)
		logger.Info("--- %s started ---", name)
		defer logger.Info("--- %s finished ---", name)
		fn(ctx)
	})
	if err != nil {
		logger.Error("Failed to schedule %s: %v", name, err)
		return nil, err
	}

	s.Cron.StartAsync()
	return done, nil
}

func (s *Scheduler) Stop() {
	s.Cron.Stop()
}
