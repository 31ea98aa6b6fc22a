// SPDX-License-Identifier: MIT

package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/convergence"
	"github.com/katalvlaran/numlab/internal/metrics"
)

// Solver families used as log fields and metric labels.
const (
	FamilyRoot   = "root"
	FamilyLinear = "linear"
)

// Recorder receives one observation per run.
type Recorder interface {
	ObserveRun(family, method, status string, iterations int, d time.Duration)
	ObserveFailure(family, method, kind string)
}

// Engine validates requests, runs solvers and reports outcomes.
type Engine struct {
	log      *zap.Logger
	rec      Recorder
	defaults convergence.Criteria
	now      func() time.Time
	newID    func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithDefaults sets the tol/max_iter used when a request leaves them zero.
func WithDefaults(c convergence.Criteria) Option {
	return func(e *Engine) { e.defaults = c }
}

// WithClock replaces time.Now, for deterministic durations in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator replaces the UUID run-ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// New builds an Engine. A nil logger or recorder disables that concern.
func New(logger *zap.Logger, rec Recorder, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	e := &Engine{
		log:      logger,
		rec:      rec,
		defaults: convergence.Default(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// fail records and logs a failure, then returns it.
func (e *Engine) fail(log *zap.Logger, family, method, runID string, err error) *Failure {
	f := newFailure(runID, err)
	e.rec.ObserveFailure(family, method, string(f.Kind))
	log.Warn("solver run failed",
		zap.String("kind", string(f.Kind)),
		zap.Int("iteration", f.Iteration),
		zap.Error(err),
	)

	return f
}

// done records and logs a finished run.
func (e *Engine) done(log *zap.Logger, family, method, status string, iterations int, d time.Duration) {
	e.rec.ObserveRun(family, method, status, iterations, d)
	log.Info("solver run finished",
		zap.String("status", status),
		zap.Int("iterations", iterations),
		zap.Duration("duration", d),
	)
}
