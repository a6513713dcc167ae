// Package render turns a finished puzzle into terminal text and JSON.
package render

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/Marjona6/crossword-generator/puzzle"
)

// ErrNilPuzzle is returned by WriteJSON when handed a nil puzzle.
var ErrNilPuzzle = errors.New("render: nil puzzle")

// jsonPuzzle wraps Puzzle for serialization, flattening the grid to one
// string per row so consumers never see the internal matrix type.
type jsonPuzzle struct {
	Grid []string `json:"grid"`
	*puzzle.Puzzle
}

// WriteJSON streams p to w as indented JSON. Grid rows use '.' for empty
// cells, matching the grid's own String form; everything else follows the
// puzzle's JSON tags. The output ends with a newline.
func WriteJSON(w io.Writer, p *puzzle.Puzzle) error {
	if p == nil {
		return ErrNilPuzzle
	}
	doc := jsonPuzzle{Puzzle: p}
	if p.Grid != nil {
		doc.Grid = strings.Split(p.Grid.String(), "\n")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
