package placement

import (
	"sort"

	"github.com/Marjona6/crossword-generator/puzzle"
)

// candidate is one valid position found by the search scan, carrying the
// score it was ranked with.
type candidate struct {
	row, col    int
	orientation puzzle.Orientation
	score       float64
}

// positionScore favors many crossings, and crossings near the word's middle
// over crossings at its ends.
func positionScore(info placeInfo) float64 {
	return 10*float64(info.intersections) + 100*info.biasSum
}

// candidates scans the full grid for every (row, col, orientation) where
// word fits, validates and connects, and returns them unranked.
// Complexity: O(R×C×L) for an R×C grid and word length L.
func (e *engine) candidates(word string) []candidate {
	var out []candidate
	for _, dir := range [2]puzzle.Orientation{puzzle.Horizontal, puzzle.Vertical} {
		maxRow, maxCol := e.grid.Rows()-1, e.grid.Cols()-len(word)
		if dir == puzzle.Vertical {
			maxRow, maxCol = e.grid.Rows()-len(word), e.grid.Cols()-1
		}
		for row := 0; row <= maxRow; row++ {
			for col := 0; col <= maxCol; col++ {
				info, ok := e.validate(word, row, col, dir)
				if !ok || !info.connected() {
					continue
				}
				out = append(out, candidate{
					row:         row,
					col:         col,
					orientation: dir,
					score:       positionScore(info),
				})
			}
		}
	}
	return out
}

// rank orders candidates best-first: descending score, then row, then
// column, then horizontal before vertical. The tie-break keeps runs
// deterministic. With shuffling enabled, equal-score runs are then
// reordered by the seeded generator.
func (e *engine) rank(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.row != b.row {
			return a.row < b.row
		}
		if a.col != b.col {
			return a.col < b.col
		}
		return a.orientation < b.orientation
	})
	if e.rng == nil {
		return
	}
	start := 0
	for i := 1; i <= len(cands); i++ {
		if i < len(cands) && cands[i].score == cands[start].score {
			continue
		}
		run := cands[start:i]
		e.rng.Shuffle(len(run), func(a, b int) { run[a], run[b] = run[b], run[a] })
		start = i
	}
}
