// Package guard re-inserts locked canonical proper nouns into the grammar
// rewriter's output.
//
// The rewriter receives the locked text but may reorder, merge, split, or
// paraphrase tokens, including the proper nouns the lock map protects. Guard
// walks both token streams in lockstep and re-asserts the canonical spelling
// wherever a locked source position lines up with a word in the target.
//
// This is a positional heuristic, not a true sequence alignment: if the
// rewriter inserts or deletes tokens before a locked position, the relative
// offsets shift and a lock can silently miss or land on the wrong word. The
// rewriter's edits are typically small and local, so the approximation is
// accepted and never surfaced as a failure.
package guard

import (
	"strings"

	"textguard/internal/token"
)

// Guard restores canonical proper-noun tokens from locks (token indices in
// lockedText's tokenization) into rewrittenText. When either stream runs
// out, the rest of the target is appended verbatim. Adjacent duplicate words
// are removed twice, since one removal can expose a new adjacent pair.
func Guard(lockedText, rewrittenText string, locks map[int]string) string {
	if len(locks) == 0 {
		// nothing to re-insert; the dedup post-pass still applies
		return DedupAdjacent(rewrittenText)
	}

	src := token.Tokenize(lockedText)
	tgt := token.Tokenize(rewrittenText)

	out := make([]string, 0, len(tgt))
	i, j := 0, 0
	for i < len(src) && j < len(tgt) {
		if canon, ok := locks[i]; ok && src[i].IsWord() && tgt[j].IsWord() {
			// the rewriter kept a word near this position; trust the lock's
			// spelling over whatever the model emitted
			out = append(out, canon)
			i++
			j++
			continue
		}
		out = append(out, tgt[j].Value)
		i++
		j++
	}
	for ; j < len(tgt); j++ {
		out = append(out, tgt[j].Value)
	}

	text := DedupAdjacent(token.JoinValues(out))
	return DedupAdjacent(text)
}

// DedupAdjacent removes immediately adjacent word tokens that are
// case-insensitively identical, then rejoins. Non-word tokens break
// adjacency and are never removed.
func DedupAdjacent(text string) string {
	toks := token.Tokenize(text)
	kept := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if len(kept) > 0 {
			prev := kept[len(kept)-1]
			if t.IsWord() && prev.IsWord() && strings.EqualFold(t.Value, prev.Value) {
				continue
			}
		}
		kept = append(kept, t)
	}
	return token.Join(kept)
}
