package normalizer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// Type of normalizer to create
type NormalizerType int

const (
	// IdentityNormalizerType compares raw text
	IdentityNormalizerType NormalizerType = iota
	// DefaultNormalizerType lower-cases and strips punctuation and whitespace
	DefaultNormalizerType
)

// ParseType maps a configuration name ("none" or "default") to a NormalizerType.
func ParseType(name string) (NormalizerType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "identity":
		return IdentityNormalizerType, nil
	case "default":
		return DefaultNormalizerType, nil
	}
	return IdentityNormalizerType, fmt.Errorf("unknown normalizer %q", name)
}

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case DefaultNormalizerType:
		return NewDefaultNormalizer()
	default:
		return NewIdentityNormalizer()
	}
}
