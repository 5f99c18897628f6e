// Package normalizer runs the token stream through abbreviation expansion,
// proper-noun matching, and dictionary spell correction, recording which
// output token positions carry locked canonical proper nouns.
//
// The lock map is positional: its keys are indices into the tokenization of
// the returned corrected text, valid only for that exact string. It is handed
// to the guardrail once and then discarded.
package normalizer

import (
	"strings"
	"unicode"

	"textguard/internal/dictionary"
	"textguard/internal/lexicon"
	"textguard/internal/matcher"
	"textguard/internal/token"
)

// LockMap maps a token index in the corrected stream to the canonical
// proper-noun string that must survive downstream rewriting.
type LockMap map[int]string

// Stats counts what the normalizer saw and matched, for the diagnostic
// surface.
type Stats struct {
	LexiconHits int `json:"lexicon_hits"`
	AlphaTokens int `json:"alpha_tokens"`
}

// Normalizer holds the read-only resources for a correction pass. Safe for
// concurrent use.
type Normalizer struct {
	Lexicon *lexicon.Set           // may be nil or empty: degrades to dictionary-only
	Dict    *dictionary.Dictionary // required
	Cutoff  float64                // fuzzy lexicon cutoff; zero means matcher.DefaultCutoff
}

// Normalize lowercases text, expands abbreviations, corrects each word token
// through the lexicon (locking hits) or the dictionary (unknown words take
// the suggested correction, keeping a leading capital if the original had
// one), joins the result, and applies light post-edits for known model
// quirks. Non-word tokens pass through unchanged.
func (n *Normalizer) Normalize(text string) (string, LockMap, Stats) {
	cutoff := n.Cutoff
	if cutoff == 0 {
		cutoff = matcher.DefaultCutoff
	}

	toks := token.Tokenize(expandAbbrev(text))
	out := make([]string, 0, len(toks))
	locks := LockMap{}
	var stats Stats

	for idx, t := range toks {
		if t.Kind != token.Word {
			out = append(out, t.Value)
			continue
		}
		stats.AlphaTokens++

		if canonical, _, ok := matcher.Match(t.Value, n.Lexicon, cutoff); ok {
			out = append(out, canonical)
			locks[idx] = canonical
			stats.LexiconHits++
			continue
		}

		low := strings.ToLower(t.Value)
		if !n.Dict.IsKnown(low) && isAlpha(t.Value) {
			if cand, ok := n.Dict.Suggest(low); ok {
				if startsUpper(t.Value) {
					cand = capitalize(cand)
				}
				out = append(out, cand)
				continue
			}
		}
		out = append(out, t.Value)
	}

	return lightPostEdits(token.JoinValues(out)), locks, stats
}

// expandAbbrev lowercases text and replaces abbreviation word tokens with
// their expansions, then rejoins so multi-word expansions re-tokenize
// naturally downstream.
func expandAbbrev(text string) string {
	toks := token.Tokenize(strings.ToLower(text))
	vals := make([]string, len(toks))
	for i, t := range toks {
		if t.Kind == token.Word {
			if exp, ok := abbrev[t.Value]; ok {
				vals[i] = exp
				continue
			}
		}
		vals[i] = t.Value
	}
	return token.JoinValues(vals)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return unicode.IsUpper(r)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
