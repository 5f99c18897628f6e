// Package token splits raw text into word, number, and punctuation tokens
// and reassembles token sequences into readable strings.
//
// Every component of the correction pipeline shares this exact tokenization;
// lock maps recorded by the normalizer are positional, so any divergence in
// splitting rules between call sites silently breaks the guardrail.
package token

import "regexp"

// Kind classifies a token.
type Kind int

const (
	Word   Kind = iota // alphabetic run, may contain internal hyphens and apostrophes
	Number             // contiguous digit run
	Punct              // any other single non-whitespace character
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punct:
		return "Punct"
	}
	return "Kind(?)"
}

// Token is an atomic unit of text. Its position is its index in the
// sequence it was produced in; sequences are never mutated in place.
type Token struct {
	Value string
	Kind  Kind
}

// IsWord reports whether the token is word-class.
func (t Token) IsWord() bool { return t.Kind == Word }

var tokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z\-']*|[0-9]+|[^\p{L}\p{N}_\s]`)

// Tokenize splits text into an ordered token sequence. Whitespace separates
// tokens and is never emitted. The empty string yields an empty sequence.
// The same input always yields the same sequence.
func Tokenize(text string) []Token {
	raw := tokenRe.FindAllString(text, -1)
	if len(raw) == 0 {
		return nil
	}
	tokens := make([]Token, len(raw))
	for i, v := range raw {
		tokens[i] = Token{Value: v, Kind: classify(v)}
	}
	return tokens
}

func classify(v string) Kind {
	c := v[0]
	switch {
	case c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z':
		return Word
	case c >= '0' && c <= '9':
		return Number
	}
	return Punct
}

// Values returns the literal strings of a token sequence.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func opensGroup(t Token) bool {
	if t.Kind != Punct {
		return false
	}
	switch t.Value {
	case "(", "[", "{":
		return true
	}
	return false
}
