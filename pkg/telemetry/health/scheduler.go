package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrSelfTestPending is reported until the first scheduled run completes.
var ErrSelfTestPending = errors.New("self test has not run yet")

// SelfTestScheduler runs a check on a cron schedule and caches its outcome.
// With an empty schedule Check runs the check directly on every call.
type SelfTestScheduler struct {
	schedule string
	check    CheckFunc
	timeout  time.Duration
	logger   *slog.Logger
	onResult func(healthy bool)

	cron *cron.Cron

	mu      sync.RWMutex
	lastErr error
	lastRun time.Time
	running bool
}

// NewSelfTestScheduler creates a scheduler. onResult, if set, is called
// after each run.
func NewSelfTestScheduler(schedule string, check CheckFunc, timeout time.Duration, logger *slog.Logger, onResult func(healthy bool)) *SelfTestScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SelfTestScheduler{
		schedule: schedule,
		check:    check,
		timeout:  timeout,
		logger:   logger.With("component", "health.self_test"),
		onResult: onResult,
		cron:     cron.New(),
		lastErr:  ErrSelfTestPending,
	}
}

// Start runs the check once and then schedules it. It does nothing when the
// schedule is empty. The scheduler stops when ctx is cancelled.
func (s *SelfTestScheduler) Start(ctx context.Context) error {
	if s.schedule == "" {
		s.logger.Info("self test schedule not configured, running on each probe")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, func() { s.Run(ctx) }); err != nil {
		return fmt.Errorf("invalid self test schedule %q: %w", s.schedule, err)
	}

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	s.Run(ctx)
	s.cron.Start()
	s.logger.Info("self test scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Run executes the check now and caches the result.
func (s *SelfTestScheduler) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.check(ctx)

	s.mu.Lock()
	s.lastErr = err
	s.lastRun = time.Now()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("self test failed", "error", err)
	} else {
		s.logger.Debug("self test passed")
	}
	if s.onResult != nil {
		s.onResult(err == nil)
	}
	return err
}

// Check is a CheckFunc reporting the cached outcome, or running the check
// directly when no schedule is configured.
func (s *SelfTestScheduler) Check(ctx context.Context) error {
	if s.schedule == "" {
		return s.Run(ctx)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// LastRun returns when the check last completed, or the zero time.
func (s *SelfTestScheduler) LastRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// NextRun returns the next scheduled run, or nil if nothing is scheduled.
func (s *SelfTestScheduler) NextRun() *time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}

// Stop stops the schedule and waits for a running check to finish.
func (s *SelfTestScheduler) Stop() {
	s.mu.Lock()
	running := s.running
	s.running = false
	s.mu.Unlock()

	if running {
		<-s.cron.Stop().Done()
		s.logger.Info("self test scheduler stopped")
	}
}
