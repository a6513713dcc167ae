// Package batch runs several independent puzzle generations and keeps
// the best layout.
package batch

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Marjona6/crossword-generator/placement"
)

// ErrBadOption is returned by Best when an Option carries an invalid value.
var ErrBadOption = errors.New("batch: invalid option supplied")

// DefaultRuns is the number of generations Best races by default.
const DefaultRuns = 8

// Option adjusts Options for a single Best call.
type Option func(*Options)

// Options collects the tunables of Best.
type Options struct {
	// Runs is the number of independent generations. Must be >= 1.
	Runs int

	// Parallelism caps how many generations run at once. Must be >= 1.
	Parallelism int

	// Seed is the master seed; each run derives its own stream from it.
	Seed uint64

	// Place is forwarded to every placement.Generate call. The per-run
	// seed is applied after these, so it wins over any seed given here.
	Place []placement.Option

	// err records the first invalid option; surfaced by Best.
	err error
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Runs:        DefaultRuns,
		Parallelism: runtime.NumCPU(),
	}
}

// WithRuns sets how many generations to race. Values below 1 record
// ErrBadOption.
func WithRuns(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Runs=%d (must be >= 1)", ErrBadOption, n)
			return
		}
		o.Runs = n
	}
}

// WithParallelism caps concurrent generations. Values below 1 record
// ErrBadOption.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Parallelism=%d (must be >= 1)", ErrBadOption, n)
			return
		}
		o.Parallelism = n
	}
}

// WithSeed sets the master seed the per-run seeds derive from.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPlacementOptions forwards options to every underlying Generate call.
func WithPlacementOptions(opts ...placement.Option) Option {
	return func(o *Options) { o.Place = append(o.Place, opts...) }
}
