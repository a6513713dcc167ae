package grid

import "fmt"

// FromStrings builds a grid from one string per row, the inverse of
// String. Dots read as Empty ('.' as in String output, '·' as in rendered
// output); every other rune lands in its cell unchanged. Rows must be
// non-empty and of equal rune length.
// Complexity: O(rows×cols).
func FromStrings(rows []string) (*Grid, error) {
	if len(rows) == 0 || len([]rune(rows[0])) == 0 {
		return nil, ErrBadDimensions
	}
	g, err := New(len(rows), len([]rune(rows[0])))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrRaggedRows, r, len(runes), g.cols)
		}
		for c, ch := range runes {
			if ch == emptyDisplay || ch == '·' {
				continue
			}
			g.cells[r][c] = ch
		}
	}
	return g, nil
}
