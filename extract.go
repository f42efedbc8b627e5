package symcheck

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxNGram is the longest word sequence tried against the vocabulary.
const maxNGram = 4

var (
	connectorWords   = regexp.MustCompile(`(?i)\b(and|with|having|plus)\b`)
	phraseSeparators = regexp.MustCompile(`[,;\n]+`)
	slashReplacer    = strings.NewReplacer("/", ",", "|", ",")
)

// Extract returns the vocabulary tokens mentioned in free text.
//
// Connector words ("and", "with", "having", "plus") and the characters / and |
// act as phrase separators alongside commas, semicolons and line breaks.
// Phrases containing spaces are scanned for word n-grams of length 4 down to
// 2; every n-gram found in the vocabulary is kept, overlapping ones included.
// When no n-gram of a phrase matches, its single words are tried instead.
// Tokens outside the vocabulary are never returned.
func Extract(text string, vocab *Vocabulary) TokenSet {
	result := make(TokenSet)

	t := strings.TrimSpace(strings.ToLower(norm.NFKC.String(text)))
	if t == "" {
		return result
	}
	t = connectorWords.ReplaceAllString(t, ",")
	t = slashReplacer.Replace(t)

	raw := []string{t}
	if strings.ContainsAny(t, ",;\n") {
		raw = phraseSeparators.Split(t, -1)
	}

	var phrases []string
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			phrases = append(phrases, p)
		}
	}

	add := func(phrase string) bool {
		tok := Normalize(phrase)
		if tok == "" || !vocab.Has(tok) {
			return false
		}
		result.Add(tok)
		return true
	}

	for _, phrase := range phrases {
		if !strings.Contains(phrase, " ") {
			add(phrase)
			continue
		}

		words := strings.Fields(phrase)
		if !addNGrams(words, add) {
			for _, w := range words {
				add(w)
			}
		}
	}

	// Free text with no delimiters and no multi-word hit: accept single words.
	if result.Len() == 0 && len(phrases) == 1 {
		for _, w := range strings.Fields(phrases[0]) {
			add(w)
		}
	}

	return result
}

// addNGrams tries every contiguous n-gram of words, longest first and left to
// right, and reports whether any was accepted.
func addNGrams(words []string, add func(string) bool) bool {
	matched := false
	for n := min(maxNGram, len(words)); n >= 2; n-- {
		for i := 0; i+n <= len(words); i++ {
			if add(strings.Join(words[i:i+n], " ")) {
				matched = true
			}
		}
	}
	return matched
}
