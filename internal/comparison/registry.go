package comparison

import (
	"fmt"
	"sort"
)

// Registry is an immutable lookup table from pair keys to comparison
// records. It is built once at startup and never mutated afterwards;
// Resolve is a pure function of its inputs and the table.
type Registry struct {
	byKey     map[PairKey]*LanguageComparison
	languages []Language
	pairs     []PairKey
}

// NewRegistry builds a registry from records keyed by their canonical
// direction. It rejects duplicate keys and pairs stored in both
// directions, since the reverse view is always synthesized.
func NewRegistry(records map[PairKey]*LanguageComparison) (*Registry, error) {
	byKey := make(map[PairKey]*LanguageComparison, len(records))
	names := make(map[string]string)

	for key, rec := range records {
		if key.Source == "" || key.Target == "" {
			return nil, fmt.Errorf("invalid pair key %q", key)
		}
		if key.Source == key.Target {
			return nil, fmt.Errorf("pair %q compares a language with itself", key)
		}
		if rec == nil {
			return nil, fmt.Errorf("pair %q has no record", key)
		}
		if rec.SourceLanguage == "" || rec.TargetLanguage == "" {
			return nil, fmt.Errorf("pair %q: missing language display names", key)
		}
		if _, ok := byKey[key.Reversed()]; ok {
			return nil, fmt.Errorf("pair %q is stored in both directions", key)
		}
		byKey[key] = rec
		names[key.Source] = rec.SourceLanguage
		names[key.Target] = rec.TargetLanguage
	}

	r := &Registry{byKey: byKey}
	for id, name := range names {
		r.languages = append(r.languages, Language{ID: id, Name: name})
	}
	sort.Slice(r.languages, func(i, j int) bool { return r.languages[i].ID < r.languages[j].ID })

	for key := range byKey {
		r.pairs = append(r.pairs, key)
	}
	sort.Slice(r.pairs, func(i, j int) bool { return r.pairs[i].String() < r.pairs[j].String() })

	return r, nil
}

// Resolve maps two language identifiers (case-insensitive) to the
// comparison oriented for that order. A record stored under the requested
// direction is returned as-is; one stored under the reverse direction is
// returned as a mirrored copy with every directional field swapped. When
// neither direction exists, Resolve returns nil — absence is a normal
// outcome, not an error.
func (r *Registry) Resolve(source, target string) *LanguageComparison {
	key := NewPairKey(source, target)
	if rec, ok := r.byKey[key]; ok {
		return rec
	}
	if rec, ok := r.byKey[key.Reversed()]; ok {
		return mirror(rec)
	}
	return nil
}

// Languages returns all selectable languages, sorted by identifier.
func (r *Registry) Languages() []Language {
	out := make([]Language, len(r.languages))
	copy(out, r.languages)
	return out
}

// Pairs returns the canonical pair keys, sorted by slug.
func (r *Registry) Pairs() []PairKey {
	out := make([]PairKey, len(r.pairs))
	copy(out, r.pairs)
	return out
}

// Len returns the number of stored comparison records.
func (r *Registry) Len() int { return len(r.byKey) }
