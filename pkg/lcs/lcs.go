// Package lcs provides a configurable LCS similarity calculator for callers
// outside this module.
package lcs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/enrich"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/baditaflorin/go_lcs_similarity/internal/warmup"
	"github.com/baditaflorin/l"
)

// Result is the outcome of a comparison.
type Result = domain.Result

// Similarity computes LCS-based similarity between an original and a copied text.
type Similarity struct {
	calculator ports.SimilarityCalculator
	logger     ports.Logger
	normalizer ports.Normalizer

	warmOnce sync.Once
	warmed   atomic.Bool
}

// Option defines a functional option for configuring Similarity.
type Option func(*similarityConfig)

type similarityConfig struct {
	MaxRowWidth  int
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	Details      bool
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithMaxRowWidth sets the ceiling, in code points, on the shorter input.
// Larger inputs report a similarity of 0 instead of exhausting memory.
func WithMaxRowWidth(width int) Option {
	return func(cfg *similarityConfig) {
		cfg.MaxRowWidth = width
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *similarityConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithPortsLogger sets a logger that already implements the module's logging interface.
func WithPortsLogger(log ports.Logger) Option {
	return func(cfg *similarityConfig) {
		cfg.Logger = log
	}
}

// WithNormalizer sets a custom normalizer applied to both texts.
func WithNormalizer(normalizer ports.Normalizer) Option {
	return func(cfg *similarityConfig) {
		cfg.Normalizer = normalizer
	}
}

// WithDefaultNormalizer compares lower-cased text without punctuation or whitespace.
func WithDefaultNormalizer() Option {
	return func(cfg *similarityConfig) {
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.DefaultNormalizerType)
	}
}

// WithDetails adds a diff summary and the edit distance to result details.
func WithDetails(enable bool) Option {
	return func(cfg *similarityConfig) {
		cfg.Details = enable
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *similarityConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) Option {
	return func(cfg *similarityConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Similarity instance.
func New(opts ...Option) (*Similarity, error) {
	defaultConfig := lcs.DefaultConfig()

	config := &similarityConfig{
		MaxRowWidth:  defaultConfig.MaxRowWidth,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewIdentityNormalizer()
	}

	var enricher ports.DetailEnricher
	if config.Details {
		enricher = enrich.NewDiffEnricher()
	}

	calculator, err := lcs.NewCalculator(lcs.SimilarityConfig{MaxRowWidth: config.MaxRowWidth}, config.Logger, config.Normalizer, enricher)
	if err != nil {
		return nil, err
	}

	s := &Similarity{
		calculator: calculator,
		logger:     config.Logger,
		normalizer: config.Normalizer,
	}

	if config.WarmUp {
		s.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return s, nil
}

// Compute compares original and copied. The result's Similarity is the LCS
// length as a percentage of the copied text's length.
func (s *Similarity) Compute(ctx context.Context, original, copied string) Result {
	return s.calculator.Compute(ctx, original, copied)
}

// Calculator exposes the underlying calculator.
func (s *Similarity) Calculator() ports.SimilarityCalculator {
	return s.calculator
}

// WarmUp runs representative comparisons so later requests see warm caches.
// Only the first call does any work; concurrent callers wait for it.
func (s *Similarity) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	ran := false
	s.warmOnce.Do(func() {
		warmupMgr := warmup.NewManager(s.logger, config)
		warmupMgr.RegisterCalculator(s.calculator)
		warmupMgr.RegisterNormalizer(s.normalizer)

		warmupMgr.WarmUp(ctx)
		s.warmed.Store(true)
		ran = true
	})
	if !ran {
		s.logger.Debug("System already warmed up, skipping")
	}
}

// Close flushes and closes the logger.
func (s *Similarity) Close() error {
	return s.logger.Close()
}
