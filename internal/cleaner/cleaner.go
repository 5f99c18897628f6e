// Package cleaner performs conservative unicode punctuation and whitespace
// cleanup on raw input before any correction runs. It never lowercases or
// alters words.
package cleaner

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// punctReplacer maps curly quotes and unicode dashes to their ASCII
// equivalents and non-breaking spaces to plain spaces. Hyphen-minus is kept
// so the tokenizer's [A-Za-z\-'] word rule still applies.
var punctReplacer = strings.NewReplacer(
	" ", " ",
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
	"‘", "'", "’", "'", "‚", "'", "‛", "'",
	"–", "-", "—", "-", "―", "-",
)

var (
	trailingSpaceRe = regexp.MustCompile(`\s+\n`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
	spaceRunRe      = regexp.MustCompile(`[ \t]+`)

	repeatDotRe      = regexp.MustCompile(`\.{2,}`)
	repeatBangRe     = regexp.MustCompile(`!{2,}`)
	repeatQuestionRe = regexp.MustCompile(`\?{2,}`)
	repeatCommaRe    = regexp.MustCompile(`,{2,}`)

	spaceBeforePunctRe   = regexp.MustCompile(`\s+([,.;:!?])`)
	spaceBeforeCloseRe   = regexp.MustCompile(`\s+([)\]}])`)
	punctBeforeLetterRe  = regexp.MustCompile(`([,;:!?])([A-Za-z])`)
	dashSpacingRe        = regexp.MustCompile(`\s*-\s*`)
	hyphenCollapseRe     = regexp.MustCompile(`\b\s*-\s*\b`)
	whitespaceCollapseRe = regexp.MustCompile(`\s+`)
)

// Clean trims and collapses whitespace, normalizes curly quotes and dashes to
// ASCII, tidies spacing around punctuation without breaking hyphenated words,
// and collapses repeated punctuation. Returns "" for empty input.
func Clean(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return ""
	}
	t = norm.NFC.String(t)
	t = punctReplacer.Replace(t)
	t = trailingSpaceRe.ReplaceAllString(t, "\n")
	t = blankLinesRe.ReplaceAllString(t, "\n\n")
	t = spaceRunRe.ReplaceAllString(t, " ")
	t = collapseRepeatedPunct(t)
	t = fixSpacesAroundPunct(t)
	return t
}

func collapseRepeatedPunct(t string) string {
	t = repeatDotRe.ReplaceAllString(t, ".")
	t = repeatBangRe.ReplaceAllString(t, "!")
	t = repeatQuestionRe.ReplaceAllString(t, "?")
	t = repeatCommaRe.ReplaceAllString(t, ",")
	return t
}

func fixSpacesAroundPunct(t string) string {
	t = spaceBeforePunctRe.ReplaceAllString(t, "$1")
	t = spaceBeforeCloseRe.ReplaceAllString(t, "$1")
	// space after sentence punctuation, but leave 3.14-style numbers alone
	t = punctBeforeLetterRe.ReplaceAllString(t, "$1 $2")
	// space out every dash, then collapse back where both sides are word
	// characters so hyphenated words survive
	t = dashSpacingRe.ReplaceAllString(t, " - ")
	t = hyphenCollapseRe.ReplaceAllString(t, "-")
	t = whitespaceCollapseRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}
