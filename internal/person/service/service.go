// Package service implements the person resolution pipeline: candidate
// search with language fallback, batched enrichment, deterministic scoring,
// and the relational property reads rooted at the resolved entity.
package service

import (
	"log/slog"
	"time"

	"personlink/internal/person/metrics"
	"personlink/internal/person/ports"
	"personlink/internal/person/tracer"
)

// Config carries the fixed lexicons of the resolver. They are design
// constants in production (FromEnv fills them once at startup) but live here
// as explicit named configuration so tests can override them.
type Config struct {
	// Languages is the ordered language-hint fallback sequence for search.
	Languages []string
	// SearchLimit is the per-language result limit requested from search.
	SearchLimit int
	// CandidateCap bounds how many unique ids go into one enrichment batch.
	CandidateCap int
	// LocaleQID is the country entity whose citizenship marks locale affinity.
	LocaleQID string
}

// DefaultConfig returns the production resolver configuration.
func DefaultConfig() Config {
	return Config{
		Languages:    []string{"en", "da", "auto"},
		SearchLimit:  20,
		CandidateCap: 12,
		LocaleQID:    "Q35",
	}
}

// Scoring holds the fixed scoring weights. Not tunable at runtime; a test
// can inject a different set via WithScoring.
type Scoring struct {
	Human      float64
	Birthdate  float64
	Locale     float64
	Substring  float64
	Popularity float64
}

// DefaultScoring returns the production weights.
func DefaultScoring() Scoring {
	return Scoring{
		Human:      1000,
		Birthdate:  300,
		Locale:     80,
		Substring:  10,
		Popularity: 0.5,
	}
}

// Service resolves free-text person names to knowledge-base entities and
// reads relational properties from them. It holds no mutable state across
// requests; every resolution is independent.
type Service struct {
	searcher ports.EntitySearcher
	runner   ports.QueryRunner
	cfg      Config
	scoring  Scoring
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithMetrics sets the metrics collector for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer for the service.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithScoring overrides the scoring weights.
func WithScoring(sc Scoring) Option {
	return func(s *Service) {
		s.scoring = sc
	}
}

// New creates a new person service with required dependencies.
// Panics if required dependencies are nil - fail fast at startup.
func New(searcher ports.EntitySearcher, runner ports.QueryRunner, cfg Config, opts ...Option) *Service {
	if searcher == nil {
		panic("service.New: entity searcher is required")
	}
	if runner == nil {
		panic("service.New: query runner is required")
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = DefaultConfig().Languages
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = DefaultConfig().SearchLimit
	}
	if cfg.CandidateCap <= 0 {
		cfg.CandidateCap = DefaultConfig().CandidateCap
	}
	if cfg.LocaleQID == "" {
		cfg.LocaleQID = DefaultConfig().LocaleQID
	}

	s := &Service{
		searcher: searcher,
		runner:   runner,
		cfg:      cfg,
		scoring:  DefaultScoring(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	return s
}

func (s *Service) observeUpstream(capability string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveUpstreamLatency(capability, d)
	}
}

func (s *Service) incrementResolution(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementResolution(outcome)
	}
}

func (s *Service) incrementPropertyRead(property, outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementPropertyRead(property, outcome)
	}
}
