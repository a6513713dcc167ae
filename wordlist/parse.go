// Package wordlist prepares raw user input for the placement engine.
package wordlist

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Parse turns free text into the clean word slice the engine expects.
//
// Tokens are split on whitespace, commas and semicolons, then each is
// normalized via Normalize. Duplicates keep their first occurrence only.
// Fewer distinct words than Options.MinWords yields ErrTooFewWords.
func Parse(raw string, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tokens := strings.FieldsFunc(raw, isSeparator)
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		w, err := Normalize(tok)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	words = lo.Uniq(words)

	if len(words) < o.MinWords {
		return nil, fmt.Errorf("%w: got %d, need at least %d",
			ErrTooFewWords, len(words), o.MinWords)
	}
	return words, nil
}

// Normalize folds one token to plain lowercase a-z.
//
// The fold decomposes the token (NFD), strips combining marks and
// recomposes (NFC), so "café" and "naïve" become "cafe" and "naive".
// Anything left outside a-z after lowercasing fails with ErrInvalidWord
// naming the original token.
func Normalize(token string) (string, error) {
	folded, _, err := transform.String(marklessFold(), token)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, token)
	}
	w := strings.ToLower(folded)
	if w == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidWord)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidWord, token)
		}
	}
	return w, nil
}

// marklessFold builds the diacritic-stripping transformer. Chains carry
// internal buffers, so each call gets a fresh one.
func marklessFold() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// isSeparator reports whether r splits two tokens.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}
