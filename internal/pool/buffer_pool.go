package pool

import (
	"bytes"
	"strings"
	"sync"
)

// maxPooledSize caps the capacity of buffers returned to a pool so a single
// huge file does not pin its memory for the life of the process.
const maxPooledSize = 4 << 20

// BufferPool implements a pool of bytes.Buffer for reading files
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates a new buffer pool whose buffers start with the given capacity
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, size))
			},
		},
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.pool.Get().(*bytes.Buffer)
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *bytes.Buffer) {
	if buffer.Cap() > maxPooledSize {
		return
	}
	buffer.Reset()
	bp.pool.Put(buffer)
}

// StringBuilderPool implements a pool of strings.Builder for efficient string building
type StringBuilderPool struct {
	pool sync.Pool
}

// NewStringBuilderPool creates a new strings.Builder pool
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(StringBuilder)
			},
		},
	}
}

// Get retrieves a StringBuilder from the pool or creates a new one if none are available
func (sbp *StringBuilderPool) Get() *StringBuilder {
	return sbp.pool.Get().(*StringBuilder)
}

// Put returns a StringBuilder to the pool for reuse
func (sbp *StringBuilderPool) Put(sb *StringBuilder) {
	sb.Reset()
	sbp.pool.Put(sb)
}

// StringBuilder wraps strings.Builder so it can live in a pool
type StringBuilder struct {
	builder strings.Builder
}

// Grow reserves room for n more bytes
func (sb *StringBuilder) Grow(n int) {
	sb.builder.Grow(n)
}

// WriteByte writes a single byte to the builder
func (sb *StringBuilder) WriteByte(b byte) error {
	return sb.builder.WriteByte(b)
}

// WriteRune writes a rune to the builder
func (sb *StringBuilder) WriteRune(r rune) {
	sb.builder.WriteRune(r)
}

// WriteString writes a string to the builder
func (sb *StringBuilder) WriteString(s string) {
	sb.builder.WriteString(s)
}

// String returns the accumulated string
func (sb *StringBuilder) String() string {
	return sb.builder.String()
}

// Reset resets the builder for reuse
func (sb *StringBuilder) Reset() {
	sb.builder.Reset()
}
