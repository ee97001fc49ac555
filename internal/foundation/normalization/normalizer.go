package normalization

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Normalizer maps loosely written strings onto a closed set of enum values.
// Keys are trimmed and Unicode case-folded, so "GitHub", " github " and "GITHUB"
// resolve to the same entry.
type Normalizer[T comparable] struct {
	validValues  map[string]T
	defaultValue T
	validKeys    []string
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	n := &Normalizer[T]{
		validValues:  make(map[string]T, len(values)),
		defaultValue: defaultValue,
	}
	for k, v := range values {
		n.validValues[Key(k)] = v
	}
	n.validKeys = slices.Sorted(maps.Keys(n.validValues))
	return n
}

// With returns a new normalizer that also accepts the extra values.
// The receiver is left untouched.
func (n *Normalizer[T]) With(extra map[string]T) *Normalizer[T] {
	merged := maps.Clone(n.validValues)
	maps.Copy(merged, extra)
	return NewNormalizer(merged, n.defaultValue)
}

// Normalize converts raw to the enum type, falling back to the default value.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.Lookup(raw); ok {
		return v
	}
	return n.defaultValue
}

// Lookup reports the enum value for raw and whether it is known.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.validValues[Key(raw)]
	return v, ok
}

// NormalizeWithError converts raw to the enum type or explains the valid options.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.validKeys)
}

// ValidKeys returns all valid normalized keys, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	return slices.Clone(n.validKeys)
}

// Key is the canonical lookup form of s. A Caser is stateful, so each call
// gets its own.
func Key(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
