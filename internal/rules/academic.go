// Package rules applies small context-sensitive rewrites that the grammar
// model tends to miss in Indian-English chat text.
package rules

import (
	"regexp"
	"strings"
)

// academicKeywords indicate contexts where "studying" is the intended verb.
var academicKeywords = []string{
	"college", "university", "school", "institute", "campus", "degree",
	"btech", "b.tech", "mtech", "m.tech", "bsc", "msc", "phd", "semester",
}

// hostelClues suggest the writer really is talking about residence; if any
// is present, "staying" is kept.
var hostelClues = []string{
	"hostel", "dorm", "dormitory", "pg", "paying guest", "stay at",
	"staying at", "room", "flat", "apartment", "rent",
}

var (
	iAmStayInRe = regexp.MustCompile(`(?i)\bi am stay(?:ing)? in\b`)
	stayInRe    = regexp.MustCompile(`(?i)\bstay(?:ing)? in\b`)
	iAmStayAtRe = regexp.MustCompile(`(?i)\bi am stay(?:ing)? at\b`)
	stayAtRe    = regexp.MustCompile(`(?i)\bstay(?:ing)? at\b`)
)

// PreferStudying rewrites "stay(ing) in/at" to "study(ing) in/at" when an
// academic keyword is present and no residence clue is. Conservatively
// scoped: any hostel clue suppresses the rewrite for the whole text.
func PreferStudying(text string) string {
	low := strings.ToLower(text)

	hasAcademic := containsAny(low, academicKeywords)
	hasHostel := containsAny(low, hostelClues)
	if !hasAcademic || hasHostel {
		return text
	}

	t := iAmStayInRe.ReplaceAllString(text, "i am studying in")
	t = stayInRe.ReplaceAllString(t, "studying in")
	t = iAmStayAtRe.ReplaceAllString(t, "i am studying at")
	t = stayAtRe.ReplaceAllString(t, "studying at")
	return t
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
