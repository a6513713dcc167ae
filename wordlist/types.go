// Package wordlist prepares raw user input for the placement engine.
package wordlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWord is returned when a token still holds non-letter bytes
	// after diacritic folding and lowercasing.
	ErrInvalidWord = errors.New("wordlist: invalid word")

	// ErrTooFewWords is returned when fewer distinct words survive parsing
	// than the configured minimum.
	ErrTooFewWords = errors.New("wordlist: too few words")

	// ErrBadOption is returned when an Option carries an invalid value.
	ErrBadOption = errors.New("wordlist: invalid option supplied")
)

// DefaultMinWords is the smallest word count Parse accepts by default.
// One word never crosses anything, so two is the floor of a real puzzle.
const DefaultMinWords = 2

// Option adjusts Options for a single Parse call.
type Option func(*Options)

// Options collects the tunables of Parse.
type Options struct {
	// MinWords is the least number of distinct words Parse must yield.
	MinWords int

	// err records the first invalid option; surfaced by Parse.
	err error
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{MinWords: DefaultMinWords}
}

// WithMinWords overrides the minimum distinct-word count. Zero disables
// the check. Negative values record ErrBadOption.
func WithMinWords(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinWords=%d (must be >= 0)", ErrBadOption, n)
			return
		}
		o.MinWords = n
	}
}
