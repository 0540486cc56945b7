// lcs_similarity.go
// Package lcssimilarity measures how much of one text is contained, in order,
// in another. The metric is based on the longest common subsequence (LCS) of
// the two texts' Unicode code points:
//
//	similarity = LCS(original, copied) / len(copied) * 100
//
// The copied text is always the denominator, so the metric is directional:
// SimilarityPercentage(a, b) and SimilarityPercentage(b, a) usually differ,
// while ComputeLength is symmetric.
//
// For a configurable calculator with logging, normalization and diagnostic
// details see the pkg/lcs package.
package lcssimilarity

import (
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
)

// ComputeLength returns the LCS length of a and b, counted in code points.
// Memory use is O(min(len(a), len(b))).
func ComputeLength(a, b string) int {
	return lcs.ComputeLength([]rune(a), []rune(b))
}

// SafeComputeLength is ComputeLength that never panics because the working
// rows could not be allocated. Inputs whose shorter side exceeds
// lcs.DefaultMaxRowWidth code points report 0, as does a failed allocation.
func SafeComputeLength(a, b string) int {
	return lcs.SafeComputeLength([]rune(a), []rune(b))
}

// SimilarityPercentage returns the LCS length as a percentage of copied's
// length, in [0, 100]. An empty copied text yields 0.
func SimilarityPercentage(original, copied string) float64 {
	if copied == "" {
		return 0
	}
	return lcs.Percentage([]rune(original), []rune(copied))
}
