// Package placement turns a word list into an interlocking crossword layout.
//
// What:
//
//   - Generate orders the input words, seeds the first onto a fresh grid and
//     then greedily commits the rest, best position first, under a bounded
//     retry budget.
//   - Candidate positions must fit the grid, agree with every letter already
//     on the board and pass an adjacency rule that forbids accidental
//     side-by-side runs.
//   - The finished grid is trimmed to the bounding box of its letters and
//     assembled into a read-only puzzle.Puzzle.
//
// Why:
//
//   - Crossword layout is NP-hard in general; a greedy heuristic with retry
//     requeueing places most everyday word lists in milliseconds and degrades
//     gracefully by dropping words it cannot connect.
//
// Algorithm:
//
//   - Ordering: each word is scored by summing, per letter, the letter's
//     English frequency weighted by how close it sits to the word's middle.
//     Mid-word common letters create two-sided crossing opportunities, so
//     high scorers go first. Ties break by descending length, then input order.
//   - Seeding: the first ordered word lands horizontally at the center row,
//     column-centered, with no validation. It has nothing to intersect yet.
//   - Search: every (row, col, orientation) triple is tested; survivors are
//     ranked by 10×intersections + 100×(middle-bias sum over crossing
//     letters) and re-validated against live grid state just before commit.
//   - Requeue: a word with no committable position moves to the back of the
//     queue. Work stops when the queue empties or total attempts reach
//     remaining×RetryBudget; leftovers are reported as Unplaced, not errors.
//
// Complexity:
//
//   - One placement attempt: O(R×C×L) over an R×C grid and word length L.
//   - Whole run: bounded by remaining×RetryBudget attempts.
//
// Options:
//
//   - WithRetryBudget: per-word attempt multiplier (default 100).
//   - WithGridSize: fixed working grid instead of the sizing heuristic.
//   - WithClueProvider: clue source for the assembled puzzle.
//   - WithLogger: zerolog tracing of ordering, commits and exhaustion.
//   - WithSeed: seeded shuffling among equal-score positions; without it the
//     output is fully deterministic for a given input.
//
// Errors:
//
//   - ErrNoWords: Generate called with an empty word list.
//   - ErrBadOption: an option carried an invalid value.
package placement
