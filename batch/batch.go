// Package batch runs several independent puzzle generations and keeps
// the best layout.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Marjona6/crossword-generator/placement"
	"github.com/Marjona6/crossword-generator/puzzle"
)

// goldenGamma is the splitmix64 increment; striding the master seed by it
// gives well-separated per-run streams.
const goldenGamma = 0x9E3779B97F4A7C15

// Best races Options.Runs generations of words and returns the winner.
//
// Each run gets a fresh engine and its own seed derived from the master
// seed, so runs differ only in how equal-score placement ties are broken.
// The winner has the most placed words, then the highest fill ratio, then
// the smallest grid area; remaining ties go to the lowest run index. The
// context cancels runs that have not started; a run in flight finishes.
func Best(ctx context.Context, words []string, opts ...Option) (*puzzle.Puzzle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(words) == 0 {
		return nil, placement.ErrNoWords
	}

	results := make([]*puzzle.Puzzle, o.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
	for i := 0; i < o.Runs; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runOpts := make([]placement.Option, 0, len(o.Place)+1)
			runOpts = append(runOpts, o.Place...)
			runOpts = append(runOpts, placement.WithSeed(runSeed(o.Seed, i)))
			p, err := placement.Generate(words, runOpts...)
			if err != nil {
				return fmt.Errorf("batch: run %d: %w", i, err)
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := 0
	for i := 1; i < len(results); i++ {
		if better(results[i], results[best]) {
			best = i
		}
	}
	return results[best], nil
}

// runSeed derives the seed for run i from the master seed.
func runSeed(master uint64, i int) uint64 {
	return master + uint64(i)*goldenGamma
}

// better reports whether a strictly beats b, so index order settles ties.
func better(a, b *puzzle.Puzzle) bool {
	if a.Stats.TotalWords != b.Stats.TotalWords {
		return a.Stats.TotalWords > b.Stats.TotalWords
	}
	if a.Stats.FillRatio != b.Stats.FillRatio {
		return a.Stats.FillRatio > b.Stats.FillRatio
	}
	return a.Stats.TotalCells < b.Stats.TotalCells
}
