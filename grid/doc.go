// Package grid provides the bounds-checked letter matrix underneath a
// crossword layout: a fixed-size rectangle of cells, each holding a single
// letter or the Empty sentinel.
//
// What:
//
//   - Grid wraps a rows×cols rune matrix created once and never resized.
//   - Bounds-checked reads/writes via InBounds, At, and Set.
//   - Geometry helpers: FilledCount, Bounds (bounding box of non-empty
//     cells), and SubGrid (a fresh grid holding exactly one box).
//
// Why:
//
//   - Word placement needs cheap positional queries and letter compare/commit
//     primitives with a hard in-bounds contract.
//   - Post-placement trimming needs the bounding box of the filled region and
//     a way to re-materialize it as a new, smaller grid.
//
// Contract:
//
//   - At and Set must only be called on coordinates for which InBounds
//     reported true. Violations panic: an out-of-bounds access is a
//     programming error in the caller, never a recoverable condition.
//   - No word-level logic lives here; the grid knows letters, not words.
//
// Complexity:
//
//   - InBounds, At, Set:    O(1).
//   - FilledCount, Bounds:  O(rows×cols).
//   - SubGrid, Clone:       O(area copied).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below 1 at construction.
//   - ErrBadBox: a sub-grid box that does not fit inside the grid.
package grid
