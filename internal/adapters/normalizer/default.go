package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_lcs_similarity/internal/pool"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

const (
	asciiKeep byte = iota
	asciiDrop
	asciiLower
)

// asciiTable holds the per-byte decision for ASCII input.
var asciiTable = func() (t [128]byte) {
	for i := range t {
		r := rune(i)
		switch {
		case unicode.IsPunct(r) || unicode.IsSpace(r):
			t[i] = asciiDrop
		case unicode.IsUpper(r):
			t[i] = asciiLower
		}
	}
	return t
}()

// DefaultNormalizer lower-cases text and drops punctuation and whitespace,
// so only the characters that carry content take part in the comparison.
type DefaultNormalizer struct {
	builders *pool.StringBuilderPool
}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{builders: pool.NewStringBuilderPool()}
}

// Normalize converts the input text to lower case and removes punctuation and spaces.
func (n *DefaultNormalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	sb := n.builders.Get()
	defer n.builders.Put(sb)

	sb.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			switch asciiTable[r] {
			case asciiKeep:
				sb.WriteByte(byte(r))
			case asciiLower:
				sb.WriteByte(byte(r) + ('a' - 'A'))
			}
			continue
		}
		if unicode.IsPunct(r) || unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// IdentityNormalizer returns text unchanged. It is the default for
// comparisons: every code point counts, whitespace and punctuation included.
type IdentityNormalizer struct{}

// NewIdentityNormalizer creates a normalizer that leaves text untouched.
func NewIdentityNormalizer() ports.Normalizer {
	return IdentityNormalizer{}
}

// Normalize returns text as is.
func (IdentityNormalizer) Normalize(text string) string {
	return text
}
