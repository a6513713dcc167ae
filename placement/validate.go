package placement

import (
	"github.com/Marjona6/crossword-generator/grid"
	"github.com/Marjona6/crossword-generator/puzzle"
)

// placeInfo captures what validation learned about one candidate position.
type placeInfo struct {
	// intersections counts cells where the word's letter matches a letter
	// already on the board.
	intersections int
	// biasSum accumulates middleBias over those crossing letters.
	biasSum float64
}

// connected reports whether the position truly crosses the existing layout.
// Every non-seed word must cross at least once; touching without a shared
// letter does not connect (two words side by side are not interlocked).
func (pi placeInfo) connected() bool {
	return pi.intersections > 0
}

// validate runs the fit test and the adjacency rule for word at
// (row, col, dir) against current grid state. It returns ok == false when
// the position is out of bounds, conflicts with a board letter, or would
// create an accidental side-by-side run.
//
// Per letter cell:
//   - a filled cell must hold the word's own letter and counts as a true
//     intersection;
//   - an empty cell with a filled perpendicular neighbor is allowed only
//     when a completed run of at least two letters ends exactly at that
//     neighbor, scanned away from the cell. A lone filled neighbor means
//     another word running alongside, and placing here would glue the two
//     together.
func (e *engine) validate(word string, row, col int, dir puzzle.Orientation) (placeInfo, bool) {
	var info placeInfo
	length := len(word)
	endRow, endCol := row, col+length-1
	if dir == puzzle.Vertical {
		endRow, endCol = row+length-1, col
	}
	if !e.grid.InBounds(row, col) || !e.grid.InBounds(endRow, endCol) {
		return info, false
	}

	for i := 0; i < length; i++ {
		rr, cc := row, col+i
		if dir == puzzle.Vertical {
			rr, cc = row+i, col
		}
		cur := e.grid.At(rr, cc)
		if cur != grid.Empty {
			if cur != rune(word[i]) {
				return info, false
			}
			info.intersections++
			info.biasSum += middleBias(i, length)
		} else if !e.perpendicularClear(rr, cc, dir) {
			return info, false
		}
	}
	return info, true
}

// perpendicularClear inspects the two neighbors of an empty candidate cell
// across the word's direction (above/below for horizontal, left/right for
// vertical). A filled neighbor is acceptable only when the contiguous run
// through it, walked away from the candidate cell, holds at least two
// letters: a completed crossing word ending at that neighbor.
func (e *engine) perpendicularClear(row, col int, dir puzzle.Orientation) bool {
	dr, dc := 1, 0
	if dir == puzzle.Vertical {
		dr, dc = 0, 1
	}
	for _, sign := range [2]int{-1, 1} {
		nr, nc := row+sign*dr, col+sign*dc
		if !e.grid.InBounds(nr, nc) || e.grid.At(nr, nc) == grid.Empty {
			continue
		}
		if e.runLength(nr, nc, sign*dr, sign*dc) < 2 {
			return false
		}
	}
	return true
}

// runLength counts contiguous filled cells starting at (row, col) and
// stepping by (dr, dc) until an empty cell or the grid edge.
func (e *engine) runLength(row, col, dr, dc int) int {
	n := 0
	for e.grid.InBounds(row, col) && e.grid.At(row, col) != grid.Empty {
		n++
		row += dr
		col += dc
	}
	return n
}
