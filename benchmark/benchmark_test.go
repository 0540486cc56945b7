package benchmark

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/lcs"
	"github.com/baditaflorin/go_lcs_similarity/internal/samples"
	pkglcs "github.com/baditaflorin/go_lcs_similarity/pkg/lcs"
)

// generateText creates a text of the specified size by repeating a sample text
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "The quick brown fox jumps over the lazy dog. This sentence contains all letters of the English alphabet and is commonly used for testing text processing algorithms and systems."
	var sb strings.Builder
	sb.Grow(size + len(sample))

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	return sb.String()[:size]
}

// BenchmarkComputeLength measures the engine alone on growing inputs.
func BenchmarkComputeLength(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"100", 100},
		{"1K", 1000},
		{"4K", 4000},
	}

	for _, sz := range sizes {
		original := []rune(generateText(sz.size))
		similar := []rune(strings.ReplaceAll(string(original), "the", "a"))

		b.Run(sz.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = lcs.ComputeLength(original, similar)
			}
		})
	}
}

// BenchmarkComputeLengthCJK runs the engine on generated Chinese pairs.
func BenchmarkComputeLengthCJK(b *testing.B) {
	gen := samples.NewGenerator(1)
	orig, cp := gen.Pair(50)
	original, copied := []rune(orig), []rune(cp)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lcs.ComputeLength(original, copied)
	}
}

// BenchmarkGuard compares the guarded path with the bare engine.
func BenchmarkGuard(b *testing.B) {
	original := []rune(generateText(2000))
	similar := []rune(strings.ReplaceAll(string(original), "o", "0"))
	ctx := context.Background()

	b.Run("Bare", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = lcs.ComputeLength(original, similar)
		}
	})

	b.Run("Guarded", func(b *testing.B) {
		g := lcs.NewGuard(lcs.DefaultMaxRowWidth)
		for i := 0; i < b.N; i++ {
			_, _ = g.SafeComputeLengthContext(ctx, original, similar)
		}
	})

	b.Run("OverCeiling", func(b *testing.B) {
		g := lcs.NewGuard(100)
		for i := 0; i < b.N; i++ {
			_ = g.SafeComputeLength(original, similar)
		}
	})
}

// BenchmarkNormalizers compares the performance of different normalizers
func BenchmarkNormalizers(b *testing.B) {
	smallText := generateText(100)
	mediumText := generateText(10000)
	largeText := generateText(100000)

	factory := normalizer.NewNormalizerFactory()

	benchmarks := []struct {
		name     string
		normType normalizer.NormalizerType
		input    string
	}{
		{"Identity-Small", normalizer.IdentityNormalizerType, smallText},
		{"Identity-Large", normalizer.IdentityNormalizerType, largeText},
		{"Default-Small", normalizer.DefaultNormalizerType, smallText},
		{"Default-Medium", normalizer.DefaultNormalizerType, mediumText},
		{"Default-Large", normalizer.DefaultNormalizerType, largeText},
	}

	for _, bm := range benchmarks {
		norm := factory.CreateNormalizer(bm.normType)

		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(bm.input)))

			for i := 0; i < b.N; i++ {
				_ = norm.Normalize(bm.input)
			}
		})
	}
}

// BenchmarkSimilarity benchmarks the public calculator with different configurations
func BenchmarkSimilarity(b *testing.B) {
	original := generateText(3000)
	similar := strings.Replace(original, "the", "a", 10)
	different := generateText(1500)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	newSimilarity := func(b *testing.B, opts ...pkglcs.Option) *pkglcs.Similarity {
		s, err := pkglcs.New(append([]pkglcs.Option{pkglcs.WithPortsLogger(logger.NewNop())}, opts...)...)
		if err != nil {
			b.Fatal(err)
		}
		return s
	}

	b.Run("Standard", func(b *testing.B) {
		s := newSimilarity(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Compute(ctx, original, similar)
		}
	})

	b.Run("DefaultNormalizer", func(b *testing.B) {
		s := newSimilarity(b, pkglcs.WithDefaultNormalizer())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Compute(ctx, original, similar)
		}
	})

	b.Run("WithDetails", func(b *testing.B) {
		s := newSimilarity(b, pkglcs.WithDetails(true))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Compute(ctx, original, similar)
		}
	})

	b.Run("WithWarmUp", func(b *testing.B) {
		s := newSimilarity(b, pkglcs.WithWarmUp(true))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Compute(ctx, original, similar)
		}
	})

	b.Run("Different", func(b *testing.B) {
		s := newSimilarity(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Compute(ctx, original, different)
		}
	})

	b.Run("EmptyInput", func(b *testing.B) {
		s := newSimilarity(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = s.Compute(ctx, original, "")
		}
	})
}
