package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// StatsResetter wipes accumulated statistics
type StatsResetter interface {
	Reset() error
}

// Scheduler runs the periodic maintenance jobs
type Scheduler struct {
	cron     *gocron.Scheduler
	resetter StatsResetter
	logger   *zap.Logger
}

// New creates a scheduler; jobs run in UTC
func New(resetter StatsResetter, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     gocron.NewScheduler(time.UTC),
		resetter: resetter,
		logger:   logger,
	}
}

// Start registers the monthly stats reset and launches the scheduler
// in the background.
func (s *Scheduler) Start() error {
	_, err := s.cron.Every(1).Month(1).At("00:00").Do(func() {
		s.logger.Info("Running scheduled stats reset")
		if err := s.resetter.Reset(); err != nil {
			s.logger.Error("Scheduled stats reset failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	s.cron.StartAsync()
	return nil
}

// Stop waits for a running job and halts the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
