package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starfield/animation"
	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/render"
)

// SchedulerConfig holds the fixed loop parameters
type SchedulerConfig struct {
	// TickInterval is the wall-clock length of one tick; zero selects constants.TickInterval
	TickInterval time.Duration

	// MaxTicks stops Run after this many ticks; zero runs until cancelled
	MaxTicks uint64
}

// Scheduler resumes every pooled task once per tick on a single goroutine,
// evicts finished tasks, and flushes the surface once per tick
// Not safe for concurrent use: Add from other goroutines must be serialized by the caller
type Scheduler struct {
	pool    *Pool
	surface render.Surface

	tickInterval time.Duration
	maxTicks     uint64
	clock        Clock
	logger       *slog.Logger

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
}

// Option customizes a Scheduler
type Option func(*Scheduler)

// WithClock replaces the real clock, used by tests
func WithClock(c Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithLogger sets the debug logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// NewScheduler creates a scheduler drawing onto surface
func NewScheduler(cfg SchedulerConfig, surface render.Surface, opts ...Option) *Scheduler {
	tick := cfg.TickInterval
	if tick <= 0 {
		tick = constants.TickInterval
	}

	s := &Scheduler{
		pool:         NewPool(),
		surface:      surface,
		tickInterval: tick,
		maxTicks:     cfg.MaxTicks,
		clock:        NewTimeProvider(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers tasks; during a tick they are first resumed on the next one
func (s *Scheduler) Add(tasks ...animation.Task) {
	for _, t := range tasks {
		s.pool.Add(t)
	}
}

// Len returns the number of active tasks
func (s *Scheduler) Len() int {
	return s.pool.Len()
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount.Load()
}

// Tick runs one iteration: resume each task of the snapshot in order, evict the
// finished ones, flush the surface
// A task error aborts the tick before the flush; panics are not recovered
func (s *Scheduler) Tick() error {
	s.pool.freeze()
	snapshot := s.pool.Snapshot()

	var finished []animation.Task
	var err error
	for i, t := range snapshot {
		done, stepErr := t.Step(s.surface)
		if stepErr != nil {
			err = fmt.Errorf("task %d (%T) failed on tick %d: %w", i, t, s.tickCount.Load()+1, stepErr)
			break
		}
		if done {
			finished = append(finished, t)
		}
	}

	for _, t := range finished {
		s.pool.Remove(t)
	}
	s.pool.thaw()

	if err != nil {
		return err
	}

	s.surface.Flush()
	n := s.tickCount.Add(1)

	if len(finished) > 0 {
		s.logger.Debug("tasks finished", "tick", n, "finished", len(finished), "active", s.pool.Len())
	}
	return nil
}

// Run ticks until ctx is cancelled, MaxTicks is reached, or a task fails
// Each iteration waits out the remainder of TickInterval measured from its start;
// an overrunning tick starts the next one immediately
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("scheduler started", "tick", s.tickInterval, "tasks", s.pool.Len())

	for {
		if ctx.Err() != nil {
			s.logger.Info("scheduler stopped", "ticks", s.Ticks())
			return nil
		}

		start := s.clock.Now()
		if err := s.Tick(); err != nil {
			s.logger.Error("task failed", "error", err)
			return err
		}

		if s.maxTicks > 0 && s.Ticks() >= s.maxTicks {
			s.logger.Info("tick limit reached", "ticks", s.Ticks())
			return nil
		}

		wait := s.tickInterval - s.clock.Now().Sub(start)
		if wait <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
		case <-s.clock.After(wait):
		}
	}
}
