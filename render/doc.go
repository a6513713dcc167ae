// Package render turns a finished puzzle into terminal text and JSON.
//
// What:
//
//   - GridString draws the letter grid with a middle dot for empty cells.
//   - CluesString lists the across and down entries with display numbers.
//   - StatsString summarizes the layout in three lines.
//   - Text composes the three blocks plus any unplaced words.
//   - WriteJSON streams the puzzle as indented JSON, with the grid
//     flattened to one string per row ('.' for empty cells).
//
// Why:
//
//   - The engine produces pure data; everything about showing it belongs
//     out here. All functions read only the puzzle's public fields, so
//     alternative presentations need nothing beyond the same surface.
//
// Errors:
//
//   - ErrNilPuzzle: WriteJSON was handed a nil puzzle. The string
//     functions render nil as "" instead, which keeps them chainable
//     in format strings.
package render
