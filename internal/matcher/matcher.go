// Package matcher resolves single words against the proper-noun lexicon,
// exactly or fuzzily. Person names carry a stricter fuzzy threshold than
// places; exact hits bypass the cutoff entirely.
package matcher

import (
	"strings"

	"textguard/internal/lexicon"
)

// DefaultCutoff is the minimum similarity for accepting a fuzzy match.
const DefaultCutoff = 0.94

// personCutoff is the floor for fuzzy person-name matches; the effective
// person threshold is max(personCutoff, caller cutoff).
const personCutoff = 0.96

// Match resolves word against the lexicon. An exact case-insensitive hit
// returns immediately, irrespective of cutoff. Otherwise the single best
// fuzzy alias by Ratio is taken, scanning aliases in sorted order so ties
// resolve deterministically; a best score below cutoff is no match.
func Match(word string, lex *lexicon.Set, cutoff float64) (canonical string, cat lexicon.Category, ok bool) {
	if lex == nil || lex.Len() == 0 {
		return "", "", false
	}
	low := strings.ToLower(word)

	if canonical, cat, ok = lex.Lookup(low); ok {
		return canonical, cat, true
	}

	bestKey := ""
	bestScore := 0.0
	for _, key := range lex.Keys() {
		if s := Ratio(low, key); s > bestScore {
			bestScore = s
			bestKey = key
		}
	}
	if bestKey == "" || bestScore < cutoff {
		return "", "", false
	}

	canonical, cat, ok = lex.Lookup(bestKey)
	if !ok {
		return "", "", false
	}
	if cat == lexicon.Person {
		strict := personCutoff
		if cutoff > strict {
			strict = cutoff
		}
		if Ratio(low, bestKey) < strict {
			return "", "", false
		}
	}
	return canonical, cat, true
}
