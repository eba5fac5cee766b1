package comparison

import (
	"fmt"
	"strings"
)

// PairKey is the ordered pair of language identifiers under which a
// comparison is stored. Keys are always lower-case; construct them with
// NewPairKey so that lookups stay case-insensitive.
type PairKey struct {
	Source string
	Target string
}

// NewPairKey builds a key from two language identifiers, normalizing
// case and surrounding whitespace.
func NewPairKey(source, target string) PairKey {
	return PairKey{
		Source: strings.ToLower(strings.TrimSpace(source)),
		Target: strings.ToLower(strings.TrimSpace(target)),
	}
}

// ParsePairKey parses a "source-target" slug, e.g. "java-python".
func ParsePairKey(slug string) (PairKey, error) {
	parts := strings.SplitN(slug, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return PairKey{}, fmt.Errorf("invalid pair key %q: want source-target", slug)
	}
	return NewPairKey(parts[0], parts[1]), nil
}

// Reversed returns the key for the opposite direction.
func (k PairKey) Reversed() PairKey {
	return PairKey{Source: k.Target, Target: k.Source}
}

// String renders the canonical "source-target" slug.
func (k PairKey) String() string {
	return k.Source + "-" + k.Target
}
