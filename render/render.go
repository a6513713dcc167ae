// Package render turns a finished puzzle into terminal text and JSON.
package render

import (
	"fmt"
	"strings"

	"github.com/Marjona6/crossword-generator/grid"
	"github.com/Marjona6/crossword-generator/puzzle"
)

// emptyCell is the terminal placeholder for cells no word letter occupies.
// Distinct from the '.' the grid's own debug String uses, so rendered
// output is recognizable at a glance.
const emptyCell = '·'

// GridString draws the letter grid one row per line, empty cells as a
// middle dot. A nil puzzle or grid renders as "".
func GridString(p *puzzle.Puzzle) string {
	if p == nil || p.Grid == nil {
		return ""
	}
	cells := p.Grid.Cells()
	var sb strings.Builder
	for r, row := range cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == grid.Empty {
				sb.WriteRune(emptyCell)
			} else {
				sb.WriteRune(c)
			}
		}
	}
	return sb.String()
}

// CluesString lists the across and down entries, one per line, with their
// display numbers. Sections appear even when empty.
func CluesString(p *puzzle.Puzzle) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Across:")
	for _, e := range p.Across {
		fmt.Fprintf(&sb, "\n%3d. %s: %s", e.Number, e.Word, e.Clue)
	}
	sb.WriteString("\n\nDown:")
	for _, e := range p.Down {
		fmt.Fprintf(&sb, "\n%3d. %s: %s", e.Number, e.Word, e.Clue)
	}
	return sb.String()
}

// StatsString summarizes the layout in three lines: word counts, grid
// shape and fill, word-length distribution.
func StatsString(p *puzzle.Puzzle) string {
	if p == nil {
		return ""
	}
	s := p.Stats
	var sb strings.Builder
	fmt.Fprintf(&sb, "Words: %d (%d across, %d down)\n",
		s.TotalWords, s.AcrossWords, s.DownWords)
	fmt.Fprintf(&sb, "Grid: %dx%d, %d cells, %d filled (%.1f%%)\n",
		s.Rows, s.Cols, s.TotalCells, s.FilledCells, s.FillRatio*100)
	fmt.Fprintf(&sb, "Word length: mean %.2f, stddev %.2f",
		s.MeanWordLength, s.WordLengthStdDev)
	return sb.String()
}

// Text composes the full terminal view: grid, clue listings, statistics,
// and the unplaced words when any were dropped. The result ends with a
// single newline.
func Text(p *puzzle.Puzzle) string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	if g := GridString(p); g != "" {
		parts = append(parts, g)
	}
	parts = append(parts, CluesString(p), StatsString(p))
	if len(p.Unplaced) > 0 {
		parts = append(parts, "Unplaced: "+strings.Join(p.Unplaced, ", "))
	}
	return strings.Join(parts, "\n\n") + "\n"
}
