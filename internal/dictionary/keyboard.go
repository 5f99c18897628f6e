package dictionary

import (
	"math"
	"unicode"
)

var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var keyPos = func() map[rune][2]int {
	m := make(map[rune][2]int)
	for r, row := range keyboardRows {
		for c, ch := range row {
			m[ch] = [2]int{r, c}
		}
	}
	return m
}()

func keyDistance(a, b rune) float64 {
	pa, oka := keyPos[unicode.ToLower(a)]
	pb, okb := keyPos[unicode.ToLower(b)]
	if !oka || !okb {
		return 2.5
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

// substitution costs tuned for chat-text typos
const (
	transposeCost  = 0.6
	insDelCost     = 0.9
	nearKeySubCost = 0.6
)

// frequently confused letter pairs in informal English spelling
var specialSubs = map[[2]rune]float64{
	{'i', 'y'}: 0.3, {'y', 'i'}: 0.3,
	{'c', 'k'}: 0.4, {'k', 'c'}: 0.4,
	{'s', 'z'}: 0.4, {'z', 's'}: 0.4,
	{'a', 'e'}: 0.5, {'e', 'a'}: 0.5,
}

func substitutionCost(a, b rune) float64 {
	a, b = unicode.ToLower(a), unicode.ToLower(b)
	if v, ok := specialSubs[[2]rune{a, b}]; ok {
		return v
	}
	d := keyDistance(a, b)
	switch {
	case d <= 1.0:
		return nearKeySubCost
	case d <= 1.5:
		return 0.8
	case d <= 2.2:
		return 1.2
	}
	return 1.8
}

// weightedCost is a weighted Damerau-Levenshtein distance where substitutions
// between physically close keys are cheap and adjacent transpositions cost a
// flat transposeCost.
func weightedCost(a, b string) float64 {
	if isOneAdjacentSwap(a, b) {
		return transposeCost
	}
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return float64(lb) * insDelCost
	}
	if lb == 0 {
		return float64(la) * insDelCost
	}
	prev := make([]float64, lb+1)
	curr := make([]float64, lb+1)
	for j := 1; j <= lb; j++ {
		prev[j] = float64(j) * insDelCost
	}
	for i := 1; i <= la; i++ {
		curr[0] = float64(i) * insDelCost
		for j := 1; j <= lb; j++ {
			var sub float64
			if ra[i-1] != rb[j-1] {
				sub = substitutionCost(ra[i-1], rb[j-1])
			}
			best := math.Min(prev[j]+insDelCost, math.Min(curr[j-1]+insDelCost, prev[j-1]+sub))
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				best = math.Min(best, prev[j-2]+transposeCost)
			}
			curr[j] = best
		}
		copy(prev, curr)
	}
	return prev[lb]
}

// isOneAdjacentSwap reports whether b is exactly a with one pair of adjacent
// letters swapped.
func isOneAdjacentSwap(a, b string) bool {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) || len(ra) < 2 {
		return false
	}
	diff := -1
	for i := 0; i < len(ra); i++ {
		if ra[i] != rb[i] {
			diff = i
			break
		}
	}
	if diff == -1 || diff+1 >= len(ra) {
		return false
	}
	if ra[diff] != rb[diff+1] || ra[diff+1] != rb[diff] {
		return false
	}
	for j := diff + 2; j < len(ra); j++ {
		if ra[j] != rb[j] {
			return false
		}
	}
	return true
}
