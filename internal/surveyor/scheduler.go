package surveyor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/gratia-labs/patron-ledger/internal/adapter"
	"github.com/gratia-labs/patron-ledger/internal/logger"
	"github.com/gratia-labs/patron-ledger/internal/store"
	"github.com/gratia-labs/patron-ledger/internal/store/schema"
)

// Config holds configuration for the surveyor scheduler
type Config struct {
	// Schedule is a 6-field cron expression with a seconds column,
	// e.g. "0 0 0 * * 0,3,5" for midnight on Sun/Wed/Fri
	Schedule        string
	BatchSize       int
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Scheduler regenerates the active contribution surveyor pool on a calendar
// cadence. Each fire instant is computed from the cron expression relative
// to the current time, so execution drift and missed ticks self-correct to
// the next true calendar boundary instead of replaying missed runs
type Scheduler struct {
	config   *Config
	store    store.Store
	factory  Factory
	json     adapter.JSON
	clock    adapter.Clock
	schedule cron.Schedule

	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// ParseSchedule parses a 6-field cron expression with a seconds column
func ParseSchedule(expr string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule %q: %w", expr, err)
	}
	return schedule, nil
}

// NewScheduler creates a new surveyor scheduler
func NewScheduler(
	config *Config,
	s store.Store,
	f Factory,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) (*Scheduler, error) {
	schedule, err := ParseSchedule(config.Schedule)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		config:    config,
		store:     s,
		factory:   f,
		json:      jsonAdapter,
		clock:     clock,
		schedule:  schedule,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins the scheduler's main loop. One cycle runs at startup; after
// that exactly one one-shot timer is outstanding at a time, re-armed after
// each cycle completes
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting surveyor scheduler",
		zap.String("schedule", s.config.Schedule),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	s.runCycle(ctx)

	for {
		now := s.clock.Now()
		next := s.schedule.Next(now)
		logger.InfoCtx(ctx, "Surveyor regeneration armed", zap.Time("next", next))

		if !s.sleep(ctx, next.Sub(now)) {
			logger.InfoCtx(ctx, "Surveyor scheduler stopping")
			s.cleanup()
			return nil
		}

		s.runCycle(ctx)
	}
}

// Stop gracefully stops the scheduler with timeout support
func (s *Scheduler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping surveyor scheduler")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Surveyor scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Surveyor scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// cleanup stops the worker pool and waits for in-flight tasks
func (s *Scheduler) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally
func (s *Scheduler) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}

// runCycle regenerates every active contribution template once. Template
// failures are isolated and never abort the cycle or the next re-arm
func (s *Scheduler) runCycle(ctx context.Context) {
	startTime := s.clock.Now()
	logger.InfoCtx(ctx, "Starting surveyor regeneration cycle")

	templates, err := s.store.ListActiveSurveyors(ctx, schema.SurveyorTypeContribution, s.config.BatchSize)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "failed to list surveyor templates"))
		return
	}

	if len(templates) == 0 {
		logger.InfoCtx(ctx, "No active surveyor templates to regenerate")
		return
	}

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	var created atomic.Int32
	for _, template := range templates {
		s.pool.Submit(func() {
			if s.regenerate(ctx, template) {
				created.Add(1)
			}
		})
	}

	s.pool.StopAndWait()

	logger.InfoCtx(ctx, "Surveyor regeneration cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("templates", len(templates)),
		zap.Int32("created", created.Load()),
	)
}

// regenerate validates, enumerates and recreates one template
func (s *Scheduler) regenerate(ctx context.Context, template *schema.Surveyor) bool {
	var payload TemplatePayload
	if err := s.json.Unmarshal(template.Payload, &payload); err != nil {
		logger.WarnCtx(ctx, "Skipping template with undecodable payload",
			zap.String("surveyorId", template.SurveyorID), zap.Error(err))
		return false
	}

	if err := s.factory.Validate(template.SurveyorType, &payload); err != nil {
		logger.WarnCtx(ctx, "Skipping template with invalid payload",
			zap.String("surveyorId", template.SurveyorID), zap.Error(err))
		return false
	}

	enumerated, err := s.factory.Enumerate(ctx, &payload)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("surveyorId", template.SurveyorID))
		return false
	}
	if enumerated == nil {
		logger.WarnCtx(ctx, "Skipping template with no priced currency",
			zap.String("surveyorId", template.SurveyorID))
		return false
	}

	surveyor, err := s.factory.Create(ctx, template.SurveyorType, enumerated, s.poolSize(template))
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("surveyorId", template.SurveyorID))
		return false
	}

	logger.InfoCtx(ctx, "Regenerated surveyor",
		zap.String("templateId", template.SurveyorID),
		zap.String("surveyorId", surveyor.SurveyorID))
	return true
}

// poolSize carries the template's recipient pool size forward
func (s *Scheduler) poolSize(template *schema.Surveyor) int {
	var pool []string
	if len(template.Recipients) == 0 {
		return DefaultPoolSize
	}
	if err := s.json.Unmarshal(template.Recipients, &pool); err != nil {
		return DefaultPoolSize
	}
	if len(pool) == 0 {
		return DefaultPoolSize
	}
	return len(pool)
}
