package lcs

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeComputeLength(t *testing.T) {
	assert.Equal(t, 3, SafeComputeLength([]rune("abcde"), []rune("ace")))
	assert.Equal(t, 0, SafeComputeLength(nil, []rune("ace")))
}

func TestGuardCeiling(t *testing.T) {
	g := NewGuard(4)
	assert.Equal(t, 3, g.SafeComputeLength([]rune("abc"), []rune("abcdefgh")))

	// Shorter side of four runes needs a row of five.
	assert.True(t, g.Exceeds([]rune("abcd"), []rune("abcd")))
	assert.Equal(t, 0, g.SafeComputeLength([]rune("abcd"), []rune("abcd")))

	big := []rune(strings.Repeat("x", 1000))
	assert.Equal(t, 0, g.SafeComputeLength(big, big))
}

func TestNewGuardDefault(t *testing.T) {
	assert.Equal(t, DefaultMaxRowWidth, NewGuard(0).MaxRowWidth)
	assert.Equal(t, DefaultMaxRowWidth, NewGuard(-3).MaxRowWidth)
}

func TestGuardRecoversAllocationFailure(t *testing.T) {
	g := NewGuard(DefaultMaxRowWidth)
	g.newRow = func(width int) []int {
		// Simulates a row the runtime refuses to allocate.
		width = -width
		return make([]int, width)
	}

	var n int
	require.NotPanics(t, func() {
		n = g.SafeComputeLength([]rune("abcd"), []rune("abxd"))
	})
	assert.Zero(t, n)
}

func TestGuardPropagatesOtherPanics(t *testing.T) {
	g := NewGuard(DefaultMaxRowWidth)
	g.newRow = func(width int) []int {
		panic("unexpected state")
	}
	assert.PanicsWithValue(t, "unexpected state", func() {
		g.SafeComputeLength([]rune("abcd"), []rune("abxd"))
	})

	g.newRow = func(width int) []int {
		return make([]int, 1)
	}
	assert.Panics(t, func() {
		g.SafeComputeLength([]rune("abcd"), []rune("abxd"))
	}, "index out of range is a bug, not exhaustion")
}

func TestGuardContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGuard(DefaultMaxRowWidth)
	_, err := g.SafeComputeLengthContext(ctx, []rune("abc"), []rune("abc"))
	assert.ErrorIs(t, err, context.Canceled)
}
