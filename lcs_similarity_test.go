// lcs_similarity_test.go
package lcssimilarity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLength(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "Subsequence", a: "abcde", b: "ace", expected: 3},
		{name: "Repeated characters", a: "aaaa", b: "aa", expected: 2},
		{name: "Empty original", a: "", b: "abc", expected: 0},
		{name: "Empty copy", a: "abc", b: "", expected: 0},
		{name: "Identical CJK text", a: "今天天气真好！", b: "今天天气真好！", expected: 7},
		{name: "Multi-byte counted as code points", a: "中文", b: "文", expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeLength(tc.a, tc.b))
			assert.Equal(t, tc.expected, ComputeLength(tc.b, tc.a), "LCS length is symmetric")
		})
	}
}

func TestSafeComputeLength(t *testing.T) {
	assert.Equal(t, 3, SafeComputeLength("abcde", "ace"))
	assert.Equal(t, 0, SafeComputeLength("", ""))

	long := strings.Repeat("ab", 500)
	assert.Equal(t, len(long), SafeComputeLength(long, long))
}

func TestSimilarityPercentage(t *testing.T) {
	assert.InDelta(t, 75.0, SimilarityPercentage("abcd", "abxd"), 1e-9)
	assert.Equal(t, 0.0, SimilarityPercentage("abc", ""))
	assert.Equal(t, 0.0, SimilarityPercentage("", "abc"))

	// Directional metric.
	assert.InDelta(t, 100.0, SimilarityPercentage("abcde", "ace"), 1e-9)
	assert.InDelta(t, 60.0, SimilarityPercentage("ace", "abcde"), 1e-9)
}
