package placement

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Marjona6/crossword-generator/grid"
	"github.com/Marjona6/crossword-generator/puzzle"
)

// newTestEngine builds an engine over an empty rows×cols grid.
func newTestEngine(t *testing.T, rows, cols int) *engine {
	t.Helper()
	g, err := grid.New(rows, cols)
	if err != nil {
		t.Fatalf("grid.New(%d, %d) failed: %v", rows, cols, err)
	}
	return &engine{opts: DefaultOptions(), log: zerolog.Nop(), grid: g}
}

////////////////////////////////////////////////////////////////////////////////
// validate
////////////////////////////////////////////////////////////////////////////////

// TestValidate_TrueCrossing accepts a vertical word crossing a horizontal
// one on a shared letter and reports the crossing with its middle bias.
//
// Board (7×7, "cat" at row 3, candidate drawn in):
//
//	. . . c . . .      candidate "car" down at (2,3),
//	. . c a t . .      crossing the 'a' of "cat"
//	. . . r . . .
func TestValidate_TrueCrossing(t *testing.T) {
	e := newTestEngine(t, 7, 7)
	e.commit("cat", 3, 2, puzzle.Horizontal)

	info, ok := e.validate("car", 2, 3, puzzle.Vertical)
	if !ok {
		t.Fatal("validate rejected a clean crossing")
	}
	if info.intersections != 1 {
		t.Errorf("intersections = %d; want 1", info.intersections)
	}
	if math.Abs(info.biasSum-1.0) > scoreEps {
		t.Errorf("biasSum = %v; want 1.0 (crossing letter mid-word)", info.biasSum)
	}
	if !info.connected() {
		t.Error("connected() = false; want true")
	}
}

// TestValidate_LetterConflict rejects a position whose letters disagree
// with the board.
func TestValidate_LetterConflict(t *testing.T) {
	e := newTestEngine(t, 7, 7)
	e.commit("cat", 3, 2, puzzle.Horizontal)

	if _, ok := e.validate("dog", 3, 2, puzzle.Horizontal); ok {
		t.Error("validate accepted conflicting letters")
	}
}

// TestValidate_ParallelTouchRejected rejects a word laid flush alongside
// an existing one: each empty cell sees a filled perpendicular neighbor
// that terminates no completed word.
func TestValidate_ParallelTouchRejected(t *testing.T) {
	e := newTestEngine(t, 7, 7)
	e.commit("cat", 3, 2, puzzle.Horizontal)

	if _, ok := e.validate("dog", 4, 2, puzzle.Horizontal); ok {
		t.Error("validate accepted a flush parallel run")
	}
}

// TestValidate_CompletedRunAccepted allows an empty cell under the end of
// a completed vertical word, but the position still fails the connection
// gate without a true crossing of its own.
//
// Board (candidate drawn in):
//
//	. . . c . . .
//	. . c a t . .      candidate "toe" across at (5,2): the 'o' sits
//	. . . r . . .      directly below "car", a completed 3-letter run
//	. . t o e . .
func TestValidate_CompletedRunAccepted(t *testing.T) {
	e := newTestEngine(t, 7, 7)
	e.commit("cat", 3, 2, puzzle.Horizontal)
	e.commit("car", 2, 3, puzzle.Vertical)

	info, ok := e.validate("toe", 5, 2, puzzle.Horizontal)
	if !ok {
		t.Fatal("validate rejected a cell below a completed word")
	}
	if info.intersections != 0 {
		t.Errorf("intersections = %d; want 0", info.intersections)
	}
	if info.connected() {
		t.Error("connected() = true for a position with no crossing; want false")
	}
}

// TestValidate_LoneNeighborRejected: the same shape with only a single
// letter above the candidate cell is an accidental adjacency, not a
// completed word, and must be rejected.
func TestValidate_LoneNeighborRejected(t *testing.T) {
	e := newTestEngine(t, 7, 7)
	e.commit("cat", 3, 2, puzzle.Horizontal)

	// "toe" one row below "cat": every letter sits under a lone letter.
	if _, ok := e.validate("toe", 4, 2, puzzle.Horizontal); ok {
		t.Error("validate accepted a cell under a lone letter")
	}
}

// TestValidate_OutOfBounds rejects spans leaving the grid.
func TestValidate_OutOfBounds(t *testing.T) {
	e := newTestEngine(t, 7, 7)
	if _, ok := e.validate("dog", 5, 2, puzzle.Vertical); ok {
		t.Error("validate accepted a span past the last row")
	}
	if _, ok := e.validate("dog", 0, 5, puzzle.Horizontal); ok {
		t.Error("validate accepted a span past the last column")
	}
	if _, ok := e.validate("dog", -1, 0, puzzle.Horizontal); ok {
		t.Error("validate accepted a negative row")
	}
}

// TestValidate_ColinearOverlay: a word written over matching letters of a
// same-direction word is a valid fit with every letter crossing. The fit
// test only cares about cell agreement.
func TestValidate_ColinearOverlay(t *testing.T) {
	e := newTestEngine(t, 7, 7)
	e.commit("cart", 3, 1, puzzle.Horizontal)

	info, ok := e.validate("art", 3, 2, puzzle.Horizontal)
	if !ok {
		t.Fatal("validate rejected a colinear overlay on matching letters")
	}
	if info.intersections != 3 {
		t.Errorf("intersections = %d; want 3", info.intersections)
	}
}

////////////////////////////////////////////////////////////////////////////////
// seed
////////////////////////////////////////////////////////////////////////////////

// TestSeed_CenterPlacement commits the first word horizontally at the
// center row, column-centered, with sequence number 1.
func TestSeed_CenterPlacement(t *testing.T) {
	e := newTestEngine(t, 5, 7)
	rest := e.seed([]string{"hi", "yo"})

	if len(rest) != 1 || rest[0] != "yo" {
		t.Fatalf("seed returned queue %v; want [yo]", rest)
	}
	if len(e.words) != 1 {
		t.Fatalf("seed committed %d words; want 1", len(e.words))
	}
	w := e.words[0]
	if w.Row != 2 || w.Col != 2 || w.Orientation != puzzle.Horizontal || w.Number != 1 {
		t.Errorf("seed placed %+v; want row 2, col 2, across, number 1", w)
	}
	if e.grid.At(2, 2) != 'h' || e.grid.At(2, 3) != 'i' {
		t.Errorf("grid letters = %q%q; want hi", e.grid.At(2, 2), e.grid.At(2, 3))
	}
}

// TestSeed_TooWideWordFallsThrough drops a word wider than the grid and
// seeds the next one instead.
func TestSeed_TooWideWordFallsThrough(t *testing.T) {
	e := newTestEngine(t, 3, 3)
	rest := e.seed([]string{"abcdefgh", "ab"})

	if len(rest) != 0 {
		t.Fatalf("seed returned queue %v; want empty", rest)
	}
	if len(e.unplaced) != 1 || e.unplaced[0] != "abcdefgh" {
		t.Errorf("unplaced = %v; want [abcdefgh]", e.unplaced)
	}
	if len(e.words) != 1 || e.words[0].Text != "ab" {
		t.Fatalf("seeded words = %+v; want just ab", e.words)
	}
	if e.words[0].Row != 1 || e.words[0].Col != 0 {
		t.Errorf("ab seeded at (%d,%d); want (1,0)", e.words[0].Row, e.words[0].Col)
	}
}

////////////////////////////////////////////////////////////////////////////////
// sizing and ranking
////////////////////////////////////////////////////////////////////////////////

// TestHeuristicSize doubles the longest word and adds one cell per word.
func TestHeuristicSize(t *testing.T) {
	rows, cols := heuristicSize([]string{"cat", "car", "art"})
	if rows != 9 || cols != 9 {
		t.Errorf("heuristicSize = %d×%d; want 9×9", rows, cols)
	}
}

// TestRank_Deterministic orders equal scores by row, column, then
// horizontal before vertical.
func TestRank_Deterministic(t *testing.T) {
	e := newTestEngine(t, 3, 3)
	cands := []candidate{
		{row: 1, col: 0, orientation: puzzle.Vertical, score: 10},
		{row: 0, col: 1, orientation: puzzle.Vertical, score: 10},
		{row: 0, col: 1, orientation: puzzle.Horizontal, score: 10},
		{row: 0, col: 0, orientation: puzzle.Horizontal, score: 110},
	}
	e.rank(cands)

	want := []candidate{
		{row: 0, col: 0, orientation: puzzle.Horizontal, score: 110},
		{row: 0, col: 1, orientation: puzzle.Horizontal, score: 10},
		{row: 0, col: 1, orientation: puzzle.Vertical, score: 10},
		{row: 1, col: 0, orientation: puzzle.Vertical, score: 10},
	}
	for i := range want {
		if cands[i] != want[i] {
			t.Errorf("rank[%d] = %+v; want %+v", i, cands[i], want[i])
		}
	}
}

// TestRank_SeededShuffleIsRepeatable: the same seed reorders equal-score
// runs identically across fresh engines.
func TestRank_SeededShuffleIsRepeatable(t *testing.T) {
	build := func() []candidate {
		return []candidate{
			{row: 0, col: 0, orientation: puzzle.Horizontal, score: 10},
			{row: 0, col: 1, orientation: puzzle.Horizontal, score: 10},
			{row: 0, col: 2, orientation: puzzle.Horizontal, score: 10},
			{row: 1, col: 0, orientation: puzzle.Horizontal, score: 5},
			{row: 1, col: 1, orientation: puzzle.Horizontal, score: 5},
		}
	}

	a, b := build(), build()
	ea, eb := newTestEngine(t, 3, 3), newTestEngine(t, 3, 3)
	ea.rng, eb.rng = newRNG(42), newRNG(42)
	ea.rank(a)
	eb.rank(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded rank diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
	}

	// Shuffling must stay within score groups: the two 5s remain last.
	for _, c := range a[:3] {
		if c.score != 10 {
			t.Fatalf("score group broken: %+v in top run", c)
		}
	}
}
