// Package placement implements greedy crossword layout generation with
// scored candidate search, adjacency validation and retry requeueing.
package placement

import (
	"encoding/binary"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/Marjona6/crossword-generator/grid"
	"github.com/Marjona6/crossword-generator/puzzle"
)

// engine holds the mutable state of one generation run. A fresh engine is
// built per Generate call; nothing is shared across runs.
type engine struct {
	opts     Options
	log      zerolog.Logger
	grid     *grid.Grid
	words    []puzzle.PlacedWord
	unplaced []string
	rng      *frand.RNG
}

// Generate places words onto a fresh grid and assembles the result.
// The only input it rejects is an empty list (ErrNoWords); words the
// heuristic cannot connect within the retry budget are dropped into
// Puzzle.Unplaced, which is an expected outcome, not an error.
// Runs single-threaded to completion. Without WithSeed the same words
// always yield the identical puzzle.
func Generate(words []string, opts ...Option) (*puzzle.Puzzle, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ordered := orderWords(words)
	rows, cols := o.Rows, o.Cols
	if rows == 0 || cols == 0 {
		rows, cols = heuristicSize(ordered)
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	e := &engine{opts: o, log: o.Logger, grid: g}
	if o.Shuffle {
		e.rng = newRNG(o.Seed)
	}
	e.log.Debug().
		Strs("order", ordered).
		Int("rows", rows).
		Int("cols", cols).
		Msg("generation started")

	e.run(ordered)
	e.trim()
	return puzzle.Assemble(e.grid, e.words, e.unplaced, o.Clues), nil
}

// heuristicSize picks a square working grid generously sized for the word
// list: twice the longest word plus one cell per word on each side.
// Trimming removes the slack afterwards.
func heuristicSize(words []string) (rows, cols int) {
	longest := 0
	for _, w := range words {
		if len(w) > longest {
			longest = len(w)
		}
	}
	side := 2*longest + len(words)
	return side, side
}

// newRNG builds a seeded generator for candidate shuffling.
func newRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// run seeds the board, then works the remaining words as a FIFO queue:
// place or requeue at the back, until the queue empties or attempts reach
// remaining×RetryBudget. Queue leftovers become the unplaced list.
func (e *engine) run(ordered []string) {
	queue := e.seed(ordered)
	budget := len(queue) * e.opts.RetryBudget
	attempts := 0
	for len(queue) > 0 && attempts < budget {
		attempts++
		word := queue[0]
		queue = queue[1:]
		if e.place(word) {
			continue
		}
		queue = append(queue, word)
	}
	if len(queue) > 0 {
		e.log.Debug().
			Int("attempts", attempts).
			Strs("unplaced", queue).
			Msg("retry budget exhausted")
	}
	e.unplaced = append(e.unplaced, queue...)
}

// seed commits the first ordered word unconditionally at the grid's center
// row, horizontally, column-centered. It has nothing to intersect yet, so
// no validation applies. A word wider than the grid cannot seed and is
// dropped; the next word takes its place. Returns the remaining queue.
func (e *engine) seed(ordered []string) []string {
	for i, w := range ordered {
		col := (e.grid.Cols() - len(w)) / 2
		if col < 0 {
			e.unplaced = append(e.unplaced, w)
			continue
		}
		e.commit(w, e.grid.Rows()/2, col, puzzle.Horizontal)
		return ordered[i+1:]
	}
	return nil
}

// place searches the grid for valid positions of word and tries them
// best-first. Each try is re-validated against live grid state immediately
// before commit; the first that still passes wins.
func (e *engine) place(word string) bool {
	cands := e.candidates(word)
	e.rank(cands)
	for _, c := range cands {
		info, ok := e.validate(word, c.row, c.col, c.orientation)
		if !ok || !info.connected() {
			continue
		}
		e.commit(word, c.row, c.col, c.orientation)
		return true
	}
	e.log.Debug().Str("word", word).Int("candidates", len(cands)).Msg("no position committed, requeued")
	return false
}

// commit writes the word's letters onto the grid and records the placement
// with the next sequence number.
func (e *engine) commit(word string, row, col int, dir puzzle.Orientation) {
	placed := puzzle.PlacedWord{
		Text:        word,
		Row:         row,
		Col:         col,
		Orientation: dir,
		Number:      len(e.words) + 1,
	}
	for i := 0; i < len(word); i++ {
		r, c := placed.CellAt(i)
		e.grid.Set(r, c, rune(word[i]))
	}
	e.words = append(e.words, placed)
	e.log.Debug().
		Str("word", word).
		Int("row", row).
		Int("col", col).
		Stringer("orientation", dir).
		Int("number", placed.Number).
		Msg("word placed")
}

// trim replaces the working grid with the bounding box of its letters and
// re-bases every placed word's coordinates to the new origin. A grid with
// no letters at all is left as-is.
func (e *engine) trim() {
	box, ok := e.grid.Bounds()
	if !ok {
		return
	}
	sub, err := e.grid.SubGrid(box)
	if err != nil {
		// Bounds always yields an in-range box; SubGrid cannot fail here.
		return
	}
	e.grid = sub
	for i := range e.words {
		e.words[i].Row -= box.MinRow
		e.words[i].Col -= box.MinCol
	}
	e.log.Debug().Int("rows", sub.Rows()).Int("cols", sub.Cols()).Msg("trimmed to bounding box")
}
