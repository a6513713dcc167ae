package puzzle

import (
	"errors"
	"fmt"

	"github.com/Marjona6/crossword-generator/grid"
)

// Sentinel errors reported by Verify.
var (
	// ErrGridMismatch indicates the stored grid disagrees with the grid
	// re-derived from the placed-word list.
	ErrGridMismatch = errors.New("puzzle: grid disagrees with placed words")

	// ErrWordOutOfBounds indicates a placed word exceeds the grid bounds.
	ErrWordOutOfBounds = errors.New("puzzle: placed word exceeds grid bounds")

	// ErrBadNumbering indicates sequence numbers are not 1..N in list order.
	ErrBadNumbering = errors.New("puzzle: sequence numbers are not 1..N in commit order")

	// ErrDisconnected indicates a placed word shares or neighbors no cell of
	// any other placed word.
	ErrDisconnected = errors.New("puzzle: placed words do not form a single connected group")
)

// Orientation is the direction a word runs on the grid.
type Orientation int

const (
	// Horizontal words run left to right ("across").
	Horizontal Orientation = iota
	// Vertical words run top to bottom ("down").
	Vertical
)

// String returns "across" or "down".
func (o Orientation) String() string {
	if o == Vertical {
		return "down"
	}
	return "across"
}

// MarshalText encodes the orientation as "across" or "down".
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes "across" or "down".
func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "across":
		*o = Horizontal
	case "down":
		*o = Vertical
	default:
		return fmt.Errorf("puzzle: unknown orientation %q", text)
	}
	return nil
}

// PlacedWord records one committed placement. Number is assigned in commit
// order starting at 1, from a single counter shared across both orientations.
// A PlacedWord never changes after commit, except that trimming shifts
// Row/Col when the grid is re-based to its bounding box.
type PlacedWord struct {
	Text        string      `json:"text"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	Orientation Orientation `json:"orientation"`
	Number      int         `json:"number"`
}

// Len returns the word length in letters.
func (w PlacedWord) Len() int { return len(w.Text) }

// EndRow returns the row of the word's last letter.
func (w PlacedWord) EndRow() int {
	if w.Orientation == Vertical {
		return w.Row + w.Len() - 1
	}
	return w.Row
}

// EndCol returns the column of the word's last letter.
func (w PlacedWord) EndCol() int {
	if w.Orientation == Horizontal {
		return w.Col + w.Len() - 1
	}
	return w.Col
}

// CellAt returns the grid coordinate of letter index i.
func (w PlacedWord) CellAt(i int) (row, col int) {
	if w.Orientation == Vertical {
		return w.Row + i, w.Col
	}
	return w.Row, w.Col + i
}

// Entry is one row of the across or down listing. Number is the display
// number, equal to the word's placement sequence number.
type Entry struct {
	Number int    `json:"number"`
	Word   string `json:"word"`
	Clue   string `json:"clue"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Statistics summarizes a finished layout. Cell counts refer to the final
// trimmed grid.
type Statistics struct {
	TotalWords  int `json:"total_words"`
	AcrossWords int `json:"across_words"`
	DownWords   int `json:"down_words"`
	Rows        int `json:"rows"`
	Cols        int `json:"cols"`
	TotalCells  int `json:"total_cells"`
	FilledCells int `json:"filled_cells"`

	// FillRatio is FilledCells over TotalCells, 0 for an empty grid.
	FillRatio float64 `json:"fill_ratio"`
	// MeanWordLength and WordLengthStdDev describe the placed words.
	MeanWordLength   float64 `json:"mean_word_length"`
	WordLengthStdDev float64 `json:"word_length_stddev"`
}

// Puzzle is the assembled output of one generation run: the trimmed grid,
// every placed word in commit order, the across/down listings, statistics,
// and any words dropped when the retry budget ran out. Collaborators treat
// it as read-only.
type Puzzle struct {
	Grid     *grid.Grid   `json:"-"`
	Words    []PlacedWord `json:"words"`
	Across   []Entry      `json:"across"`
	Down     []Entry      `json:"down"`
	Stats    Statistics   `json:"stats"`
	Unplaced []string     `json:"unplaced,omitempty"`
}
