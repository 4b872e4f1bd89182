// Package scheduler runs periodic housekeeping jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"rosterbot/internal/infrastructure/logger"
)

// DefaultSpec sweeps once a minute.
const DefaultSpec = "@every 1m"

type idleExpirer interface {
	ExpireIdle(ctx context.Context, maxIdle time.Duration) (int, error)
}

// Sweeper drops conversations left idle longer than maxIdle.
type Sweeper struct {
	cron    *cron.Cron
	convs   idleExpirer
	maxIdle time.Duration
	log     *logger.Logger
}

func NewSweeper(convs idleExpirer, maxIdle time.Duration, log *logger.Logger) *Sweeper {
	return &Sweeper{
		cron:    cron.New(),
		convs:   convs,
		maxIdle: maxIdle,
		log:     log,
	}
}

// Start schedules the sweep and runs it until ctx is cancelled. A zero
// maxIdle disables sweeping.
func (s *Sweeper) Start(ctx context.Context, spec string) error {
	if s.maxIdle <= 0 {
		s.log.Info("SCHEDULER", "idle timeout disabled, sweeper not started")
		return nil
	}
	if _, err := s.cron.AddFunc(spec, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("schedule sweeper %q: %w", spec, err)
	}
	s.cron.Start()
	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
	}()
	s.log.Infof("SCHEDULER", "⏰ Sweeping conversations idle for %s (%s)", s.maxIdle, spec)
	return nil
}

// Sweep runs one expiry pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	n, err := s.convs.ExpireIdle(ctx, s.maxIdle)
	if err != nil {
		s.log.Errorf("SCHEDULER", "❌ expire idle conversations: %v", err)
		return
	}
	if n > 0 {
		s.log.Infof("SCHEDULER", "🧹 %d idle conversation(s) reset", n)
	}
}
