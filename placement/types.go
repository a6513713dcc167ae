// Package placement provides tunable options and error definitions
// for crossword layout generation.
package placement

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Marjona6/crossword-generator/puzzle"
)

// Sentinel errors for Generate.
var (
	// ErrNoWords is returned when the input word list is empty.
	ErrNoWords = errors.New("placement: no words provided")

	// ErrBadOption is returned when an invalid Option is supplied.
	ErrBadOption = errors.New("placement: invalid option supplied")
)

// DefaultRetryBudget is the per-word attempt multiplier: a run of N
// remaining words aborts after N×DefaultRetryBudget placement attempts.
const DefaultRetryBudget = 100

// Option configures Generate via functional arguments.
// An invalid Option (for example a non-positive retry budget) is recorded
// internally and surfaced as ErrBadOption when Generate is invoked.
type Option func(*Options)

// Options holds the tunable parameters of one generation run.
type Options struct {
	// RetryBudget multiplies the remaining word count into the total
	// attempt cap that stops a run once nothing more can be placed.
	RetryBudget int

	// Rows and Cols fix the working grid size. Zero means "use the
	// sizing heuristic" (2×longest word + word count per side).
	Rows, Cols int

	// Clues supplies clue text for the assembled puzzle.
	// Nil falls back to puzzle.PlaceholderClues.
	Clues puzzle.ClueProvider

	// Logger receives placement tracing at Debug level.
	Logger zerolog.Logger

	// Shuffle enables seeded reordering of equal-score candidates.
	Shuffle bool
	// Seed drives the shuffle; same seed, same layout.
	Seed uint64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - RetryBudget 100
//   - heuristic grid sizing (Rows == Cols == 0)
//   - placeholder clues
//   - no-op logger
//   - no shuffling (fully deterministic output).
func DefaultOptions() Options {
	return Options{
		RetryBudget: DefaultRetryBudget,
		Logger:      zerolog.Nop(),
	}
}

// WithRetryBudget sets the per-word attempt multiplier.
//
//	perWord > 0: cap attempts at remaining×perWord
//	perWord <= 0: invalid option → ErrBadOption
func WithRetryBudget(perWord int) Option {
	return func(o *Options) {
		if perWord < 1 {
			o.err = fmt.Errorf("%w: retry budget must be positive (%d)", ErrBadOption, perWord)
			return
		}
		o.RetryBudget = perWord
	}
}

// WithGridSize fixes the working grid dimensions instead of the sizing
// heuristic. Trimming still shrinks the final grid to its letters.
//
//	rows, cols >= 1: use exactly that grid
//	anything else: invalid option → ErrBadOption
func WithGridSize(rows, cols int) Option {
	return func(o *Options) {
		if rows < 1 || cols < 1 {
			o.err = fmt.Errorf("%w: grid size must be at least 1x1 (%dx%d)", ErrBadOption, rows, cols)
			return
		}
		o.Rows, o.Cols = rows, cols
	}
}

// WithClueProvider sets the clue source used during puzzle assembly.
func WithClueProvider(p puzzle.ClueProvider) Option {
	return func(o *Options) {
		if p != nil {
			o.Clues = p
		}
	}
}

// WithLogger attaches a logger for placement tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSeed enables seeded shuffling among equal-score candidate positions,
// trading the default idempotent output for seed-deterministic variety.
// Two runs with the same words and seed still produce identical puzzles.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Shuffle = true
		o.Seed = seed
	}
}
