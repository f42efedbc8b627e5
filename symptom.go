package symcheck

import (
	"sort"
	"strings"
	"unicode"
)

// Token is a canonical symptom identifier: lowercase words joined by single
// underscores, with no whitespace and no leading or trailing separators.
type Token string

// Normalize converts raw symptom text into a Token.
// It lowercases and trims the input and replaces every run of whitespace,
// hyphens and underscores with a single underscore. Empty input yields an
// empty Token, which callers treat as invalid.
func Normalize(raw string) Token {
	var sb strings.Builder
	sb.Grow(len(raw))
	pending := false

	for _, r := range raw {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			pending = true
			continue
		}
		if pending && sb.Len() > 0 {
			sb.WriteByte('_')
		}
		pending = false
		sb.WriteRune(unicode.ToLower(r))
	}

	return Token(sb.String())
}

// TokenSet is an unordered set of tokens.
type TokenSet map[Token]struct{}

// NewTokenSet returns a set containing the given tokens.
func NewTokenSet(tokens ...Token) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Add inserts t into the set.
func (s TokenSet) Add(t Token) {
	s[t] = struct{}{}
}

// AddAll inserts every token of other into the set.
func (s TokenSet) AddAll(other TokenSet) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Has reports whether t is in the set.
func (s TokenSet) Has(t Token) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of tokens in the set.
func (s TokenSet) Len() int {
	return len(s)
}

// Sorted returns the tokens in lexical order.
func (s TokenSet) Sorted() []Token {
	out := make([]Token, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Vocabulary is the immutable set of tokens known from reference data.
type Vocabulary struct {
	tokens TokenSet
}

// NewVocabulary returns a vocabulary of the given tokens.
// Empty tokens are ignored.
func NewVocabulary(tokens ...Token) *Vocabulary {
	v := &Vocabulary{tokens: make(TokenSet, len(tokens))}
	for _, t := range tokens {
		if t != "" {
			v.tokens.Add(t)
		}
	}
	return v
}

// Has reports whether t is a known token. A nil vocabulary knows nothing.
func (v *Vocabulary) Has(t Token) bool {
	if v == nil {
		return false
	}
	return v.tokens.Has(t)
}

// Len returns the number of known tokens.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return v.tokens.Len()
}

// Tokens returns all known tokens in lexical order.
func (v *Vocabulary) Tokens() []Token {
	if v == nil {
		return nil
	}
	return v.tokens.Sorted()
}
