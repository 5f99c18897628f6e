// Package dictionary implements the single-word spelling corrector backed by
// a word-frequency dictionary.
//
// Suggest generates candidates at edit distance 1, then 2, and ranks known
// candidates by corpus frequency, breaking ties with a keyboard-weighted edit
// cost so physically plausible typos win.
package dictionary

import (
	"sort"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Dictionary is a read-only word-frequency vocabulary. Safe for concurrent
// use once built.
type Dictionary struct {
	freq map[string]int64
}

// NewFromEntries builds a Dictionary from word→frequency pairs. Words are
// lowercased; duplicate words keep the higher count.
func NewFromEntries(entries map[string]int64) *Dictionary {
	d := &Dictionary{freq: make(map[string]int64, len(entries))}
	for w, c := range entries {
		lw := strings.ToLower(w)
		if c > d.freq[lw] {
			d.freq[lw] = c
		}
	}
	return d
}

// Len reports the vocabulary size.
func (d *Dictionary) Len() int { return len(d.freq) }

// IsKnown reports whether the lowercase form of word is in the vocabulary.
func (d *Dictionary) IsKnown(word string) bool {
	_, ok := d.freq[strings.ToLower(word)]
	return ok
}

// Suggest returns the best correction for an unknown word, or ok=false when
// no known word lies within edit distance 2. Known words suggest themselves.
func (d *Dictionary) Suggest(word string) (string, bool) {
	low := strings.ToLower(word)
	if d.IsKnown(low) {
		return low, true
	}
	ones := edits1(low)
	if best, ok := d.pick(low, ones); ok {
		return best, true
	}
	twos := make(map[string]bool)
	for e := range ones {
		for e2 := range edits1(e) {
			twos[e2] = true
		}
	}
	return d.pick(low, twos)
}

// pick selects the best known candidate: highest frequency first, then lowest
// keyboard-weighted edit cost from the original, then lexicographic order so
// the result is deterministic.
func (d *Dictionary) pick(orig string, candidates map[string]bool) (string, bool) {
	known := make([]string, 0, 4)
	for c := range candidates {
		if _, ok := d.freq[c]; ok {
			known = append(known, c)
		}
	}
	if len(known) == 0 {
		return "", false
	}
	sort.Slice(known, func(i, j int) bool {
		fi, fj := d.freq[known[i]], d.freq[known[j]]
		if fi != fj {
			return fi > fj
		}
		ci, cj := weightedCost(orig, known[i]), weightedCost(orig, known[j])
		if ci != cj {
			return ci < cj
		}
		return known[i] < known[j]
	})
	return known[0], true
}

// edits1 returns every string one delete, transpose, replace, or insert away.
func edits1(word string) map[string]bool {
	out := make(map[string]bool, len(word)*54)
	r := []rune(word)
	for i := 0; i <= len(r); i++ {
		left := string(r[:i])
		if i < len(r) {
			out[left+string(r[i+1:])] = true // delete
		}
		if i+1 < len(r) {
			out[left+string(r[i+1])+string(r[i])+string(r[i+2:])] = true // transpose
		}
		for _, c := range alphabet {
			if i < len(r) {
				out[left+string(c)+string(r[i+1:])] = true // replace
			}
			out[left+string(c)+string(r[i:])] = true // insert
		}
	}
	return out
}
