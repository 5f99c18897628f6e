package normalizer

import "regexp"

// Deterministic fixes for quirks the rewriter model is known to produce.
var (
	// The model often drops the preposition in "I am from <Place>"; after the
	// lexicon pass, capitalized words here are locked proper nouns.
	iAmProperRe = regexp.MustCompile(`\b(I|i)\s+am\s+([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)\b`)

	spaceBeforeCommaRe = regexp.MustCompile(`\s+,`)
	commaNoSpaceRe     = regexp.MustCompile(`,([A-Za-z])`)
	homeLotRe          = regexp.MustCompile(`(?i)\bhome lot\b`)
)

func lightPostEdits(text string) string {
	t := iAmProperRe.ReplaceAllString(text, "${1} am from ${2}")
	t = spaceBeforeCommaRe.ReplaceAllString(t, ",")
	t = commaNoSpaceRe.ReplaceAllString(t, ", ${1}")
	t = homeLotRe.ReplaceAllString(t, "home a lot")
	return t
}
