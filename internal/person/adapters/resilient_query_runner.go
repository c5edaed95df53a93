// Package adapters decorates the person ports with resilience concerns so
// the service stays focused on resolution semantics.
package adapters

import (
	"context"
	"log/slog"

	"personlink/internal/person/metrics"
	"personlink/internal/person/ports"
	"personlink/pkg/platform/circuit"
)

// ResilientQueryRunner wraps a QueryRunner with circuit breaker tracking.
// The structured-query backend is a shared public endpoint; the breaker
// keeps a sustained outage visible (readiness, logs, metrics) instead of
// letting every request time out quietly.
//
// There is no cached fallback for query results, so the delegate is always
// attempted even while the circuit is open. Open-circuit calls double as
// half-open probes.
type ResilientQueryRunner struct {
	delegate ports.QueryRunner
	cb       *circuit.Breaker
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures the resilient runner.
type Option func(*ResilientQueryRunner)

// WithMetrics sets the metrics collector used to count circuit transitions.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *ResilientQueryRunner) {
		r.metrics = m
	}
}

// WithBreakerOptions forwards threshold options to the underlying breaker.
func WithBreakerOptions(opts ...circuit.Option) Option {
	return func(r *ResilientQueryRunner) {
		r.cb = circuit.New(r.cb.Name(), opts...)
	}
}

// NewResilientQueryRunner creates a circuit-breaker-tracked query runner.
func NewResilientQueryRunner(delegate ports.QueryRunner, logger *slog.Logger, opts ...Option) *ResilientQueryRunner {
	if delegate == nil {
		panic("adapters.NewResilientQueryRunner: delegate is required")
	}
	r := &ResilientQueryRunner{
		delegate: delegate,
		cb:       circuit.New("structured_query"),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunStructuredQuery delegates the query and feeds the outcome to the breaker.
func (r *ResilientQueryRunner) RunStructuredQuery(ctx context.Context, query string) ([]ports.Row, error) {
	rows, err := r.delegate.RunStructuredQuery(ctx, query)
	if err != nil {
		_, change := r.cb.RecordFailure()
		if change.Opened {
			if r.logger != nil {
				r.logger.ErrorContext(ctx, "circuit breaker opened",
					"circuit", r.cb.Name(),
					"error", err,
				)
			}
			if r.metrics != nil {
				r.metrics.IncrementCircuitOpened()
			}
		}
		return nil, err
	}

	_, change := r.cb.RecordSuccess()
	if change.Closed && r.logger != nil {
		r.logger.InfoContext(ctx, "circuit breaker closed",
			"circuit", r.cb.Name(),
		)
	}
	return rows, nil
}

// IsOpen reports whether the breaker is currently open. The readiness check
// uses this to flag a degraded query backend.
func (r *ResilientQueryRunner) IsOpen() bool {
	return r.cb.IsOpen()
}

var _ ports.QueryRunner = (*ResilientQueryRunner)(nil)
