package lcs

import (
	"context"
	"errors"
	"runtime"
	"strings"
)

// DefaultMaxRowWidth is the default ceiling on the DP row width, in runes.
// Two rows of this width take 256MiB on 64-bit platforms.
const DefaultMaxRowWidth = 1 << 24

// Guard protects the engine against inputs whose working rows cannot be
// allocated.
//
// The Go runtime aborts the process on a real out-of-memory condition, so the
// guard cannot catch it after the fact. It rejects inputs whose shorter side
// would need a row wider than MaxRowWidth, and it recovers the runtime panic a
// failed slice allocation raises. Both cases yield a length of 0. Any other
// panic is re-raised.
type Guard struct {
	MaxRowWidth int

	newRow func(int) []int
}

// NewGuard returns a Guard with the given ceiling. A non-positive ceiling
// selects DefaultMaxRowWidth.
func NewGuard(maxRowWidth int) *Guard {
	if maxRowWidth <= 0 {
		maxRowWidth = DefaultMaxRowWidth
	}
	return &Guard{MaxRowWidth: maxRowWidth, newRow: makeRow}
}

// Exceeds reports whether the inputs are over the ceiling.
func (g *Guard) Exceeds(a, b []rune) bool {
	return min(len(a), len(b))+1 > g.MaxRowWidth
}

// SafeComputeLength is ComputeLength that returns 0 instead of failing on
// oversized inputs.
func (g *Guard) SafeComputeLength(a, b []rune) int {
	n, _ := g.SafeComputeLengthContext(context.Background(), a, b)
	return n
}

// SafeComputeLengthContext is SafeComputeLength with cancellation. Only the
// context error is ever returned.
func (g *Guard) SafeComputeLengthContext(ctx context.Context, a, b []rune) (n int, err error) {
	if g.Exceeds(a, b) {
		return 0, nil
	}
	defer func() {
		if r := recover(); r != nil {
			if !isAllocFailure(r) {
				panic(r)
			}
			n, err = 0, nil
		}
	}()
	newRow := g.newRow
	if newRow == nil {
		newRow = makeRow
	}
	return compute(ctx, a, b, newRow)
}

var defaultGuard = NewGuard(DefaultMaxRowWidth)

// SafeComputeLength runs the engine behind a guard with DefaultMaxRowWidth.
func SafeComputeLength(a, b []rune) int {
	return defaultGuard.SafeComputeLength(a, b)
}

func isAllocFailure(r interface{}) bool {
	var re runtime.Error
	err, ok := r.(error)
	if !ok || !errors.As(err, &re) {
		return false
	}
	return strings.Contains(re.Error(), "makeslice")
}
