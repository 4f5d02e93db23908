package rate

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRefreshInterval = time.Hour

type Scheduler struct {
	providers       ProviderSelector
	tokens          []string
	refreshInterval time.Duration
	// -----
	sched gocron.Scheduler
}

// Start registers the refresh job. The first run happens immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if _, refreshErr := RefreshProviders(jobCtx, execID, s.providers, s.tokens); refreshErr != nil {
			logrus.Errorf("Refresh providers job %s failed: %v", execID, refreshErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(providers ProviderSelector, tokens []string, refreshInterval time.Duration) *Scheduler {
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	return &Scheduler{providers: providers, tokens: tokens, refreshInterval: refreshInterval}
}
