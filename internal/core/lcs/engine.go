// Package lcs implements the longest common subsequence engine and the
// similarity metric derived from it.
package lcs

import "context"

// ComputeLength returns the length of the longest common subsequence of a and b.
//
// It runs the classic dynamic programming recurrence keeping only two rows,
// each as wide as the shorter input, so memory is O(min(m,n)) and time O(m*n).
// The function is pure and total.
func ComputeLength(a, b []rune) int {
	n, _ := compute(context.Background(), a, b, makeRow)
	return n
}

// ComputeLengthContext is ComputeLength with cancellation. The context is
// checked once per row of the grid.
func ComputeLengthContext(ctx context.Context, a, b []rune) (int, error) {
	return compute(ctx, a, b, makeRow)
}

func makeRow(width int) []int {
	return make([]int, width)
}

func compute(ctx context.Context, a, b []rune, newRow func(int) []int) (int, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil
	}
	// b spans the columns and must be the shorter one.
	if len(b) > len(a) {
		a, b = b, a
	}

	width := len(b) + 1
	prev := newRow(width)
	curr := newRow(width)

	for i := 1; i <= len(a); i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		ai := a[i-1]
		curr[0] = 0
		for j := 1; j < width; j++ {
			if ai == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if curr[j-1] >= prev[j] {
				curr[j] = curr[j-1]
			} else {
				curr[j] = prev[j]
			}
		}
		prev, curr = curr, prev
	}
	return prev[width-1], nil
}
