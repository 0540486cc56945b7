package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool(t *testing.T) {
	bp := NewBufferPool(64)
	buf := bp.Get()
	assert.Zero(t, buf.Len())
	assert.GreaterOrEqual(t, buf.Cap(), 64)

	buf.WriteString("payload")
	bp.Put(buf)

	again := bp.Get()
	assert.Zero(t, again.Len(), "buffers come back reset")
}

func TestStringBuilderPool(t *testing.T) {
	sbp := NewStringBuilderPool()
	sb := sbp.Get()
	sb.WriteString("ab")
	sb.WriteRune('我')
	assert.Equal(t, "ab我", sb.String())
	sbp.Put(sb)

	assert.Empty(t, sbp.Get().String())
}
