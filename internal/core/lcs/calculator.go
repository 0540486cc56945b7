package lcs

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// ResultName identifies results produced by Calculator.
const ResultName = "lcs_similarity"

// SimilarityConfig holds configuration for the LCS similarity calculator.
type SimilarityConfig struct {
	// MaxRowWidth is the Guard ceiling in runes.
	MaxRowWidth int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		MaxRowWidth: DefaultMaxRowWidth,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.MaxRowWidth <= 0 {
		return errors.New("maxRowWidth must be greater than 0")
	}
	return nil
}

// Calculator implements ports.SimilarityCalculator on top of the guarded engine.
type Calculator struct {
	config     SimilarityConfig
	guard      *Guard
	logger     ports.Logger
	normalizer ports.Normalizer
	enricher   ports.DetailEnricher
}

// NewCalculator creates a new LCS similarity calculator. The enricher may be nil.
func NewCalculator(config SimilarityConfig, logger ports.Logger, normalizer ports.Normalizer, enricher ports.DetailEnricher) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}

	return &Calculator{
		config:     config,
		guard:      NewGuard(config.MaxRowWidth),
		logger:     logger,
		normalizer: normalizer,
		enricher:   enricher,
	}, nil
}

// Compute calculates how much of copied is covered by a common subsequence
// with original.
func (c *Calculator) Compute(ctx context.Context, original, copied string) domain.Result {
	details := make(map[string]interface{})

	origRunes := []rune(c.normalizer.Normalize(original))
	copyRunes := []rune(c.normalizer.Normalize(copied))
	origLen := len(origRunes)
	copyLen := len(copyRunes)

	c.logger.Debug("Starting LCS similarity computation",
		"original_length", origLen,
		"copied_length", copyLen,
	)

	if origLen == 0 || copyLen == 0 {
		c.logger.Debug("Empty input, skipping LCS",
			"original_length", origLen,
			"copied_length", copyLen,
		)
		return domain.Result{
			Name:           ResultName,
			Similarity:     0,
			OriginalLength: origLen,
			CopiedLength:   copyLen,
			Empty:          true,
			Details:        details,
		}
	}

	if c.guard.Exceeds(origRunes, copyRunes) {
		c.logger.Warn("Input exceeds LCS row ceiling, reporting no similarity",
			"max_row_width", c.guard.MaxRowWidth,
			"original_length", origLen,
			"copied_length", copyLen,
		)
		details["guarded"] = true
	}

	lcsLen, err := c.guard.SafeComputeLengthContext(ctx, origRunes, copyRunes)
	if err != nil {
		c.logger.Error("Computation cancelled", "error", err)
		details["error"] = "computation cancelled"
		return domain.Result{
			Name:           ResultName,
			Similarity:     0,
			OriginalLength: origLen,
			CopiedLength:   copyLen,
			Details:        details,
		}
	}

	similarity := Ratio(lcsLen, copyLen)
	details["lcs_length"] = lcsLen
	if c.enricher != nil {
		c.enricher.Enrich(origRunes, copyRunes, details)
	}

	c.logger.Debug("Computed LCS similarity",
		"lcs_length", lcsLen,
		"similarity", similarity,
		"details", details,
	)

	return domain.Result{
		Name:           ResultName,
		Similarity:     similarity,
		LCSLength:      lcsLen,
		OriginalLength: origLen,
		CopiedLength:   copyLen,
		Details:        details,
	}
}
