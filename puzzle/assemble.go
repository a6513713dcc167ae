package puzzle

import (
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/Marjona6/crossword-generator/grid"
)

// Assemble builds the read-only Puzzle from a finished layout: the trimmed
// grid, the placed words in commit order, and the words that never fit.
// A nil clue provider falls back to PlaceholderClues.
// Complexity: O(W log W + rows×cols) for W placed words.
func Assemble(g *grid.Grid, words []PlacedWord, unplaced []string, clues ClueProvider) *Puzzle {
	if clues == nil {
		clues = PlaceholderClues{}
	}

	across := lo.Filter(words, func(w PlacedWord, _ int) bool { return w.Orientation == Horizontal })
	down := lo.Filter(words, func(w PlacedWord, _ int) bool { return w.Orientation == Vertical })

	p := &Puzzle{
		Grid:     g,
		Words:    append([]PlacedWord(nil), words...),
		Across:   entries(across, clues),
		Down:     entries(down, clues),
		Unplaced: append([]string(nil), unplaced...),
	}
	p.Stats = statistics(g, p.Words, across, down)
	return p
}

// entries converts one orientation's words into listing rows ordered by
// display number.
func entries(words []PlacedWord, clues ClueProvider) []Entry {
	out := lo.Map(words, func(w PlacedWord, _ int) Entry {
		return Entry{
			Number: w.Number,
			Word:   w.Text,
			Clue:   clues.Clue(w.Text),
			Row:    w.Row,
			Col:    w.Col,
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// statistics computes the summary block over the final trimmed grid.
func statistics(g *grid.Grid, all, across, down []PlacedWord) Statistics {
	s := Statistics{
		TotalWords:  len(all),
		AcrossWords: len(across),
		DownWords:   len(down),
	}
	if g != nil {
		s.Rows = g.Rows()
		s.Cols = g.Cols()
		s.TotalCells = g.CellCount()
		s.FilledCells = g.FilledCount()
		if s.TotalCells > 0 {
			s.FillRatio = float64(s.FilledCells) / float64(s.TotalCells)
		}
	}
	if len(all) > 0 {
		lengths := lo.Map(all, func(w PlacedWord, _ int) float64 { return float64(w.Len()) })
		s.MeanWordLength = stat.Mean(lengths, nil)
		if len(lengths) > 1 {
			s.WordLengthStdDev = stat.StdDev(lengths, nil)
		}
	}
	return s
}
