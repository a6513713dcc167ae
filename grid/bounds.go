package grid

// Box is an inclusive rectangle of grid coordinates.
type Box struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Rows returns the number of rows the box spans.
func (b Box) Rows() int { return b.MaxRow - b.MinRow + 1 }

// Cols returns the number of columns the box spans.
func (b Box) Cols() int { return b.MaxCol - b.MinCol + 1 }

// Bounds returns the bounding box of all non-empty cells.
// The second return is false when every cell is Empty, in which case the
// box value is meaningless.
// Complexity: O(rows×cols).
func (g *Grid) Bounds() (Box, bool) {
	b := Box{MinRow: g.rows, MinCol: g.cols, MaxRow: -1, MaxCol: -1}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Empty {
				continue
			}
			if r < b.MinRow {
				b.MinRow = r
			}
			if r > b.MaxRow {
				b.MaxRow = r
			}
			if c < b.MinCol {
				b.MinCol = c
			}
			if c > b.MaxCol {
				b.MaxCol = c
			}
		}
	}
	if b.MaxRow < 0 {
		return Box{}, false
	}
	return b, true
}

// SubGrid materializes a new Grid holding exactly the cells of b, with the
// box origin re-based to (0, 0). The receiver is left untouched.
// Returns ErrBadBox if b does not fit inside the grid.
// Complexity: O(area of b).
func (g *Grid) SubGrid(b Box) (*Grid, error) {
	if b.MinRow < 0 || b.MinCol < 0 || b.MaxRow >= g.rows || b.MaxCol >= g.cols ||
		b.MinRow > b.MaxRow || b.MinCol > b.MaxCol {
		return nil, ErrBadBox
	}
	sub, err := New(b.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	for r := b.MinRow; r <= b.MaxRow; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			sub.cells[r-b.MinRow][c-b.MinCol] = g.cells[r][c]
		}
	}
	return sub, nil
}
