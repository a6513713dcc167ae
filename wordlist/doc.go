// Package wordlist prepares raw user input for the placement engine.
//
// What:
//
//   - Parse splits free text on whitespace, commas and semicolons, folds
//     each token to plain lowercase a-z (diacritics stripped), rejects
//     anything else, and deduplicates preserving first-seen order.
//   - Normalize exposes the single-token fold.
//   - Sample hands out deterministic starter words from a built-in bank.
//
// Why:
//
//   - The engine trusts its input (lowercase, deduplicated, non-empty);
//     this package is the gate that earns that trust. Keeping it separate
//     keeps the engine free of text-encoding concerns.
//
// Errors:
//
//   - ErrInvalidWord: a token holds anything beyond letters after folding.
//   - ErrTooFewWords: fewer distinct words than the configured minimum
//     (default 2, the smallest meaningful puzzle).
//   - ErrBadOption: an option carried an invalid value.
package wordlist
