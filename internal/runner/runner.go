// Package runner wires loading, comparison and result recording for one
// original/copied pair.
package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// Runner performs single comparisons.
type Runner struct {
	loader     ports.TextLoader
	sink       ports.ResultSink
	calculator ports.SimilarityCalculator
	logger     ports.Logger
}

// New creates a Runner. All collaborators are required.
func New(loader ports.TextLoader, sink ports.ResultSink, calculator ports.SimilarityCalculator, logger ports.Logger) (*Runner, error) {
	if loader == nil || sink == nil || calculator == nil || logger == nil {
		return nil, errors.New("runner: loader, sink, calculator and logger are required")
	}
	return &Runner{
		loader:     loader,
		sink:       sink,
		calculator: calculator,
		logger:     logger,
	}, nil
}

// RunOnce compares the two files, appends one result line to outputPath and
// returns the similarity percentage. When either file is empty or unreadable
// an empty-file line with 0.00% is recorded and no LCS is computed.
func (r *Runner) RunOnce(ctx context.Context, originalPath, copiedPath, outputPath string) (float64, error) {
	original := r.loader.Load(ctx, originalPath)
	copied := r.loader.Load(ctx, copiedPath)

	if original == "" || copied == "" {
		r.logger.Warn("Empty input detected",
			"original", originalPath,
			"copied", copiedPath,
			"original_empty", original == "",
			"copied_empty", copied == "",
		)
		return 0, r.recordEmpty(originalPath, copiedPath, outputPath)
	}

	result := r.calculator.Compute(ctx, original, copied)
	if msg, ok := result.Details["error"]; ok {
		return 0, fmt.Errorf("compare %s and %s: %v", originalPath, copiedPath, msg)
	}
	// Normalization can leave nothing to compare.
	if result.Empty {
		r.logger.Warn("Empty input after normalization",
			"original", originalPath,
			"copied", copiedPath,
			"original_length", result.OriginalLength,
			"copied_length", result.CopiedLength,
		)
		return 0, r.recordEmpty(originalPath, copiedPath, outputPath)
	}

	if len(result.Details) > 1 {
		r.logger.Info("Comparison details",
			"original", originalPath,
			"copied", copiedPath,
			"details", result.Details,
		)
	}

	r.logger.Info("Comparison finished",
		"original", originalPath,
		"copied", copiedPath,
		"similarity", result.Similarity,
		"lcs_length", result.LCSLength,
	)

	if err := r.sink.AppendLine(outputPath, FormatResultLine(originalPath, copiedPath, result.Similarity)); err != nil {
		return 0, fmt.Errorf("record result: %w", err)
	}
	return result.Similarity, nil
}

func (r *Runner) recordEmpty(originalPath, copiedPath, outputPath string) error {
	if err := r.sink.AppendLine(outputPath, FormatEmptyLine(originalPath, copiedPath)); err != nil {
		return fmt.Errorf("record empty result: %w", err)
	}
	return nil
}

// FormatResultLine renders the line recorded for a completed comparison.
func FormatResultLine(originalPath, copiedPath string, similarity float64) string {
	return fmt.Sprintf("The similarity rate between document %s and document %s is %.2f%%",
		BaseName(originalPath), BaseName(copiedPath), similarity)
}

// FormatEmptyLine renders the line recorded when an input has no text.
func FormatEmptyLine(originalPath, copiedPath string) string {
	return fmt.Sprintf("The similarity rate between document %s and document %s is 0.00%% (empty file detected)",
		BaseName(originalPath), BaseName(copiedPath))
}

// BaseName returns the last element of path, treating both '/' and '\' as
// separators so Windows paths resolve the same on every platform.
func BaseName(path string) string {
	path = strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
