// Package lexicon holds the proper-noun lexicon: lowercase aliases mapped to
// canonical display-cased spellings, tagged by category.
//
// A Set is built once at startup and is read-only afterwards, so concurrent
// readers need no synchronization.
package lexicon

import (
	"bytes"
	"sort"
	"strings"

	"textguard/data"
)

// Category tags a lexicon entry by the kind of proper noun it names.
type Category string

const (
	State  Category = "state"
	City   Category = "city"
	Person Category = "person"
)

// Entry is a single alias mapping.
type Entry struct {
	Alias     string   `json:"alias"` // lowercase
	Canonical string   `json:"canonical"`
	Category  Category `json:"category"`
}

// Set is an immutable lexicon. Aliases are unique per category; on
// cross-category collision, lookup resolves state before city before person.
type Set struct {
	states map[string]string
	cities map[string]string
	names  map[string]string
	keys   []string // sorted union of all aliases, for deterministic fuzzy scans
}

// New builds a Set from per-category alias→canonical maps. Nil maps are
// allowed; an entirely empty Set is valid and simply never matches.
func New(states, cities, names map[string]string) *Set {
	s := &Set{
		states: copyLower(states),
		cities: copyLower(cities),
		names:  copyLower(names),
	}
	seen := make(map[string]bool, len(s.states)+len(s.cities)+len(s.names))
	for _, m := range []map[string]string{s.states, s.cities, s.names} {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				s.keys = append(s.keys, k)
			}
		}
	}
	sort.Strings(s.keys)
	return s
}

// Default builds the seeded lexicon from the embedded CSV data.
func Default() (*Set, error) {
	states, err := Parse(bytes.NewReader(data.States))
	if err != nil {
		return nil, err
	}
	cities, err := Parse(bytes.NewReader(data.Cities))
	if err != nil {
		return nil, err
	}
	names, err := Parse(bytes.NewReader(data.Names))
	if err != nil {
		return nil, err
	}
	return New(states, cities, names), nil
}

// WithEntries returns a new Set extended with extra entries. The receiver is
// not modified.
func (s *Set) WithEntries(entries []Entry) *Set {
	states := copyLower(s.states)
	cities := copyLower(s.cities)
	names := copyLower(s.names)
	for _, e := range entries {
		if e.Alias == "" || e.Canonical == "" {
			continue
		}
		switch e.Category {
		case State:
			states[e.Alias] = e.Canonical
		case City:
			cities[e.Alias] = e.Canonical
		default:
			names[e.Alias] = e.Canonical
		}
	}
	return New(states, cities, names)
}

// Lookup resolves a lowercase alias to its canonical form and category.
func (s *Set) Lookup(alias string) (canonical string, cat Category, ok bool) {
	if c, ok := s.states[alias]; ok {
		return c, State, true
	}
	if c, ok := s.cities[alias]; ok {
		return c, City, true
	}
	if c, ok := s.names[alias]; ok {
		return c, Person, true
	}
	return "", "", false
}

// Keys returns all aliases in sorted order. Callers must not modify the
// returned slice.
func (s *Set) Keys() []string { return s.keys }

// Len reports the number of distinct aliases.
func (s *Set) Len() int { return len(s.keys) }

func copyLower(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}
