// Package puzzle defines the output side of crossword generation: placed
// words, across/down listings, statistics, clue strategies, and the
// assembled Puzzle consumed by presentation layers.
//
// What:
//
//   - PlacedWord records one committed placement: text, start cell,
//     orientation, and a sequence number shared across both orientations.
//   - Entry is one row of the across or down listing, carrying the display
//     number (= sequence number), the word, its clue, and its start cell.
//   - Statistics summarizes the finished layout: word counts per direction,
//     grid dimensions, cell totals, fill ratio, word-length distribution.
//   - Puzzle bundles the trimmed grid with all of the above. It is built once
//     per generation and read-only to collaborators.
//   - ClueProvider is the pluggable clue strategy: PlaceholderClues emits the
//     default "A N-letter word" text, StaticClues overlays user-supplied
//     clues keyed by word text, and clue files load from YAML.
//
// Why:
//
//   - The placement engine decides where words go; everything a renderer,
//     exporter, or statistics display needs afterwards lives here, so those
//     collaborators never touch engine internals.
//
// Verification:
//
//   - Verify re-derives the letter grid from the placed-word list and
//     confirms exact agreement with the stored grid, checks sequence
//     numbering, and checks that the words form one connected group: the
//     structural invariants every generated puzzle must satisfy.
//
// Errors:
//
//   - ErrGridMismatch: stored grid disagrees with the placed-word list.
//   - ErrWordOutOfBounds: a placed word leaves the grid.
//   - ErrBadNumbering: sequence numbers are not 1..N in list order.
//   - ErrDisconnected: a placed word has no contact with the others.
package puzzle
