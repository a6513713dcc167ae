// Package batch runs several independent puzzle generations and keeps
// the best layout.
//
// What:
//
//   - Best launches K seeded runs of placement.Generate on fresh engines,
//     bounded by a concurrency limit, and picks the winner: most words
//     placed, then highest fill ratio, then smallest grid area, then
//     lowest run index.
//
// Why:
//
//   - A single greedy pass can strand words that a different tie-break
//     order would have placed. Each run shuffles only among equal-score
//     candidates, so every run is still a valid greedy layout; racing a
//     handful and keeping the densest one is cheap because engines share
//     no state.
//
// Determinism:
//
//   - Per-run seeds derive from the master seed and the run index, and
//     the winner is chosen by comparing finished results in index order,
//     so the outcome does not depend on goroutine scheduling.
//
// Errors:
//
//   - ErrBadOption: an option carried an invalid value.
//   - Run errors (for example placement.ErrNoWords) surface unchanged.
package batch
