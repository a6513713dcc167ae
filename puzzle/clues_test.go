package puzzle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marjona6/crossword-generator/puzzle"
)

func TestPlaceholderClues(t *testing.T) {
	p := puzzle.PlaceholderClues{}
	assert.Equal(t, "A 3-letter word", p.Clue("cat"))
	assert.Equal(t, "A 7-letter word", p.Clue("example"))
	assert.Equal(t, "A 1-letter word", p.Clue("a"))
}

func TestStaticClues_OverlayAndFallback(t *testing.T) {
	s := puzzle.NewStaticClues(map[string]string{
		"CAT": "Feline friend",
		"art": "  Hangs in a gallery  ",
		"dog": "", // blank overrides are dropped
	})

	assert.Equal(t, "Feline friend", s.Clue("cat"), "keys are lowercased")
	assert.Equal(t, "Hangs in a gallery", s.Clue("ART"), "lookups are case-insensitive")
	assert.Equal(t, "A 3-letter word", s.Clue("dog"), "blank override falls back")
	assert.Equal(t, "A 5-letter word", s.Clue("horse"))
	assert.Equal(t, 2, s.Len())
}

func TestStaticClues_Set(t *testing.T) {
	s := puzzle.NewStaticClues(nil)
	s.Set("Cat", "Purrs")
	assert.Equal(t, "Purrs", s.Clue("cat"))

	s.Set("cat", "  ")
	assert.Equal(t, "A 3-letter word", s.Clue("cat"), "blank Set removes the override")
	assert.Equal(t, 0, s.Len())
}

func TestStaticClues_NilReceiverFallsBack(t *testing.T) {
	var s *puzzle.StaticClues
	assert.Equal(t, "A 3-letter word", s.Clue("cat"), "nil provider behaves as empty")
	assert.Equal(t, "A 5-letter word", s.Clue("horse"))
}

func TestParseClues(t *testing.T) {
	s, err := puzzle.ParseClues([]byte("cat: Feline friend\nart: Gallery hanging\n"))
	require.NoError(t, err)
	assert.Equal(t, "Feline friend", s.Clue("cat"))
	assert.Equal(t, "Gallery hanging", s.Clue("art"))

	_, err = puzzle.ParseClues([]byte("cat: [not\n  a: scalar"))
	assert.Error(t, err)
}

func TestLoadClueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clues.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cat: Feline friend\n"), 0o644))

	s, err := puzzle.LoadClueFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Feline friend", s.Clue("cat"))

	_, err = puzzle.LoadClueFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOrientation_Text(t *testing.T) {
	assert.Equal(t, "across", puzzle.Horizontal.String())
	assert.Equal(t, "down", puzzle.Vertical.String())

	b, err := puzzle.Vertical.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "down", string(b))

	var o puzzle.Orientation
	require.NoError(t, o.UnmarshalText([]byte("down")))
	assert.Equal(t, puzzle.Vertical, o)
	require.NoError(t, o.UnmarshalText([]byte("across")))
	assert.Equal(t, puzzle.Horizontal, o)
	assert.Error(t, o.UnmarshalText([]byte("diagonal")))
}
