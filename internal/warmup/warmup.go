package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/baditaflorin/go_lcs_similarity/internal/samples"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup, in runes
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
	// Seed for the sample generator
	Seed int64
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     100,
		SampleTextSize: 500,
		Duration:       5 * time.Second,
		ForceGC:        true,
		Seed:           1,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.calculators)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	gen := samples.NewGenerator(wm.config.Seed)
	// Sentences average about eight runes.
	original, similar := gen.Pair(max(1, wm.config.SampleTextSize/8))
	different := gen.Text(wm.config.SampleTextSize)

	wm.run(warmupCtx, "normalizers", len(wm.normalizers), func(ctx context.Context, j int) {
		for _, normalizer := range wm.normalizers {
			_ = normalizer.Normalize(original)
		}
	})

	wm.run(warmupCtx, "calculators", len(wm.calculators), func(ctx context.Context, j int) {
		for _, calculator := range wm.calculators {
			switch j % 3 {
			case 0:
				_ = calculator.Compute(ctx, original, original)
			case 1:
				_ = calculator.Compute(ctx, original, similar)
			default:
				_ = calculator.Compute(ctx, original, different)
			}
		}
	})

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// run executes step Iterations times on each of Concurrency goroutines.
func (wm *Manager) run(ctx context.Context, name string, count int, step func(ctx context.Context, j int)) {
	if count == 0 {
		return
	}

	wm.logger.Debug("Warming up "+name, "count", count)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				if ctx.Err() != nil {
					return
				}
				step(ctx, j)
			}
		}()
	}

	wg.Wait()
}
