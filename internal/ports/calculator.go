package ports

import (
	"context"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for computing similarity between texts.
// The copied text is the denominator of the percentage, so argument order matters.
type SimilarityCalculator interface {
	Compute(ctx context.Context, original, copied string) domain.Result
}

// DetailEnricher adds optional diagnostic values to a result's details.
type DetailEnricher interface {
	Enrich(original, copied []rune, details map[string]interface{})
}
