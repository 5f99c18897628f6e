package matcher

// Ratio returns the Ratcliff/Obershelp similarity of two strings in [0, 1]:
// twice the number of matching characters over the total length, where
// matches are counted over recursively located longest common substrings.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingTotal(ra, rb)) / float64(total)
}

func matchingTotal(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	i, j, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return matchingTotal(a[:i], b[:j]) + size + matchingTotal(a[i+size:], b[j+size:])
}

// longestMatch finds the longest common contiguous substring, preferring the
// earliest position on ties. Rolling single-row DP, same shape as the edit
// distance in the dictionary package.
func longestMatch(a, b []rune) (ai, bj, size int) {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > size {
					size = curr[j]
					ai = i - size
					bj = j - size
				}
			} else {
				curr[j] = 0
			}
		}
		copy(prev, curr)
	}
	return ai, bj, size
}
