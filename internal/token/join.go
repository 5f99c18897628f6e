package token

import "strings"

// Join reassembles a token sequence into a human-readable string.
//
// Word and number tokens are separated from the previous token by a single
// space, except after an opening bracket, which binds tightly. Punctuation
// attaches to the preceding token with no space; sentence punctuation then
// gets its space from the following word token.
//
// Join is the inverse-compatible counterpart of Tokenize: for any string s
// that is already clean, Join(Tokenize(s)) == s, and a second round trip is
// always a fixed point.
func Join(tokens []Token) string {
	var b strings.Builder
	var prev Token
	for i, t := range tokens {
		switch t.Kind {
		case Word, Number:
			if i > 0 && !opensGroup(prev) {
				b.WriteByte(' ')
			}
			b.WriteString(t.Value)
		default:
			b.WriteString(t.Value)
		}
		prev = t
	}
	return b.String()
}

// JoinValues tokenizes nothing: it joins pre-split literal values using the
// same spacing rules as Join.
func JoinValues(values []string) string {
	tokens := make([]Token, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		tokens = append(tokens, Token{Value: v, Kind: classify(v)})
	}
	return Join(tokens)
}
