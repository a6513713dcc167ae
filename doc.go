// Package crossword generates crossword puzzle layouts: give it words,
// get back an interlocked grid with across/down listings, clue numbering
// and statistics.
//
// 🚀 What does it do?
//
//	A small, deterministic layout engine plus the plumbing around it:
//		• Placement: frequency-ordered greedy search with retry requeueing
//		• Validation: letter-match intersections, perpendicular run checks
//		• Trimming: final grid cut to the bounding box of placed letters
//		• Assembly: across/down entries, clue text, display numbers, stats
//		• Batch: race seeded runs in parallel, keep the densest layout
//		• Wordlist: parsing, Unicode folding, strict a-z validation
//		• Render: terminal text and JSON views of the finished puzzle
//
// ✨ Why this library?
//
//   - Deterministic by default – same words in, same layout out; seeding
//     is opt-in and reproducible
//   - Honest about failure – words that cannot interlock end up in an
//     Unplaced list instead of vanishing
//   - Pure library core – no files, no network, no globals; the CLI and
//     collaborators live at the edges
//
// The packages, bottom up:
//
//	grid/      — rectangular letter matrix, bounds, sub-grid extraction
//	puzzle/    — Puzzle/PlacedWord/Entry types, clue providers, Verify
//	placement/ — the generation engine (ordering, search, scoring, trim)
//	wordlist/  — input parsing, normalization, sample word bank
//	batch/     — parallel best-of-N generation
//	render/    — text and JSON presentation
//	cmd/xwgen  — command line front end with an interactive shell
//
// Quick ASCII example, generated from the words cat, car and art:
//
//	· c ·
//	c a t
//	· r ·
//	· t ·
//
// Minimal usage:
//
//	p, err := placement.Generate([]string{"cat", "car", "art"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(render.Text(p))
package crossword
