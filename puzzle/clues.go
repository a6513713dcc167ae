package puzzle

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClueProvider supplies clue text for a word. Implementations must be
// deterministic: the same word always yields the same clue within one
// assembly pass.
type ClueProvider interface {
	Clue(word string) string
}

// PlaceholderClues is the default provider: "A N-letter word".
type PlaceholderClues struct{}

// Clue returns the placeholder text for word.
func (PlaceholderClues) Clue(word string) string {
	return fmt.Sprintf("A %d-letter word", len(word))
}

// StaticClues overlays user-supplied clue text, keyed by word, over a
// fallback provider. Lookup keys are lowercased to match normalized words.
type StaticClues struct {
	clues    map[string]string
	fallback ClueProvider
}

// NewStaticClues builds a provider from word→clue pairs. Keys are lowercased;
// empty clue text falls through to the placeholder.
func NewStaticClues(clues map[string]string) *StaticClues {
	m := make(map[string]string, len(clues))
	for w, c := range clues {
		if c = strings.TrimSpace(c); c != "" {
			m[strings.ToLower(w)] = c
		}
	}
	return &StaticClues{clues: m, fallback: PlaceholderClues{}}
}

// Clue returns the supplied text for word, or the fallback clue. A nil
// receiver holds no overrides and always falls back.
func (s *StaticClues) Clue(word string) string {
	if s == nil {
		return PlaceholderClues{}.Clue(word)
	}
	if c, ok := s.clues[strings.ToLower(word)]; ok {
		return c
	}
	return s.fallback.Clue(word)
}

// Set adds or replaces the clue for word. An empty clue removes the override.
func (s *StaticClues) Set(word, clue string) {
	word = strings.ToLower(word)
	if clue = strings.TrimSpace(clue); clue == "" {
		delete(s.clues, word)
		return
	}
	s.clues[word] = clue
}

// Len returns the number of overrides held.
func (s *StaticClues) Len() int { return len(s.clues) }

// ParseClues decodes a YAML document of word→clue pairs:
//
//	cat: Feline friend
//	art: Hangs in a gallery
func ParseClues(data []byte) (*StaticClues, error) {
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("puzzle: parsing clue file: %w", err)
	}
	return NewStaticClues(m), nil
}

// LoadClueFile reads a YAML clue file from disk.
func LoadClueFile(path string) (*StaticClues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: reading clue file: %w", err)
	}
	return ParseClues(data)
}
