package grid

import (
	"errors"
	"strings"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates rows or cols below 1 at construction.
	ErrBadDimensions = errors.New("grid: rows and cols must be at least 1")

	// ErrBadBox indicates a sub-grid box that does not fit inside the grid.
	ErrBadBox = errors.New("grid: box exceeds grid bounds")

	// ErrRaggedRows indicates FromStrings rows of unequal length.
	ErrRaggedRows = errors.New("grid: diagram rows differ in length")
)

// Empty is the sentinel value of a cell no word letter occupies.
const Empty rune = 0

// emptyDisplay is how Empty cells render in String output.
const emptyDisplay = '.'

// Grid is a fixed-size rectangular letter matrix. Dimensions are set once at
// construction; cells are mutated only through Set.
type Grid struct {
	rows, cols int
	cells      [][]rune
}

// New constructs a rows×cols Grid with every cell Empty.
// Returns ErrBadDimensions if either dimension is below 1.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// CellCount returns rows×cols.
// Complexity: O(1).
func (g *Grid) CellCount() int { return g.rows * g.cols }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the letter at (row, col), or Empty for an unoccupied cell.
// Callers must establish InBounds(row, col) first; out-of-range coordinates
// panic via the underlying slice access.
// Complexity: O(1).
func (g *Grid) At(row, col int) rune {
	return g.cells[row][col]
}

// Set writes r into (row, col). Same in-bounds contract as At.
// Complexity: O(1).
func (g *Grid) Set(row, col int, r rune) {
	g.cells[row][col] = r
}

// FilledCount returns the number of cells not equal to Empty.
// Complexity: O(rows×cols).
func (g *Grid) FilledCount() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// Cells returns a deep copy of the cell matrix, so callers cannot mutate
// grid state through the result.
// Complexity: O(rows×cols).
func (g *Grid) Cells() [][]rune {
	out := make([][]rune, g.rows)
	for r := range out {
		out[r] = make([]rune, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// Clone returns an independent copy of the grid.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: g.Cells()}
}

// String renders the grid one row per line, Empty cells as dots.
// Intended for debugging and terminal display.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Empty {
				sb.WriteRune(emptyDisplay)
			} else {
				sb.WriteRune(g.cells[r][c])
			}
		}
		if r < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
