package puzzle

import (
	"fmt"

	"github.com/Marjona6/crossword-generator/grid"
)

// Verify checks the structural invariants of an assembled puzzle:
//
//  1. Every placed word lies within the grid bounds.
//  2. The grid re-derived from the placed-word list matches the stored grid
//     exactly: no conflicting letters, no stray cells in either direction.
//  3. Sequence numbers run 1..N in list (commit) order.
//  4. The placed words interlock into one connected group: every word is
//     reachable from the first through shared letter cells (single/zero-word
//     layouts are trivially connected).
//
// It returns nil when all invariants hold, otherwise the first violated
// sentinel error wrapped with positional context.
// Complexity: O(total letters + rows×cols).
func (p *Puzzle) Verify() error {
	if p.Grid == nil {
		if len(p.Words) == 0 {
			return nil
		}
		return fmt.Errorf("%w: %d words but no grid", ErrGridMismatch, len(p.Words))
	}

	if err := p.verifyBoundsAndLetters(); err != nil {
		return err
	}
	if err := p.verifyNumbering(); err != nil {
		return err
	}
	return p.verifyConnected()
}

// verifyBoundsAndLetters re-derives the letter grid from the word list and
// compares it against the stored grid in both directions.
func (p *Puzzle) verifyBoundsAndLetters() error {
	derived, err := grid.New(p.Grid.Rows(), p.Grid.Cols())
	if err != nil {
		return err
	}
	for _, w := range p.Words {
		if !p.Grid.InBounds(w.Row, w.Col) || !p.Grid.InBounds(w.EndRow(), w.EndCol()) {
			return fmt.Errorf("%w: %q at (%d,%d) %s", ErrWordOutOfBounds, w.Text, w.Row, w.Col, w.Orientation)
		}
		for i, letter := range w.Text {
			r, c := w.CellAt(i)
			if have := derived.At(r, c); have != grid.Empty && have != letter {
				return fmt.Errorf("%w: cell (%d,%d) holds both %q and %q", ErrGridMismatch, r, c, have, letter)
			}
			derived.Set(r, c, letter)
		}
	}
	for r := 0; r < p.Grid.Rows(); r++ {
		for c := 0; c < p.Grid.Cols(); c++ {
			if p.Grid.At(r, c) != derived.At(r, c) {
				return fmt.Errorf("%w: cell (%d,%d) stored %q, derived %q",
					ErrGridMismatch, r, c, p.Grid.At(r, c), derived.At(r, c))
			}
		}
	}
	return nil
}

// verifyNumbering checks the single shared counter: 1..N in commit order.
func (p *Puzzle) verifyNumbering() error {
	for i, w := range p.Words {
		if w.Number != i+1 {
			return fmt.Errorf("%w: word %q has number %d at position %d", ErrBadNumbering, w.Text, w.Number, i)
		}
	}
	return nil
}

// verifyConnected runs a breadth-first search over the word-crossing graph:
// two words are linked when they share a letter cell. All words must be
// reachable from the first; a word no chain of crossings reaches is an
// island.
func (p *Puzzle) verifyConnected() error {
	if len(p.Words) < 2 {
		return nil
	}

	// Index every letter cell by owning word.
	type cell struct{ r, c int }
	owners := make(map[cell][]int)
	for wi, w := range p.Words {
		for i := range w.Text {
			r, c := w.CellAt(i)
			owners[cell{r, c}] = append(owners[cell{r, c}], wi)
		}
	}

	seen := make([]bool, len(p.Words))
	queue := []int{0}
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		w := p.Words[queue[qi]]
		for i := range w.Text {
			r, c := w.CellAt(i)
			for _, other := range owners[cell{r, c}] {
				if !seen[other] {
					seen[other] = true
					queue = append(queue, other)
				}
			}
		}
	}
	for wi, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: %q crosses no other word", ErrDisconnected, p.Words[wi].Text)
		}
	}
	return nil
}
