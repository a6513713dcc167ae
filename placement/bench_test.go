package placement_test

import (
	"fmt"
	"testing"

	"lukechampine.com/frand"

	"github.com/Marjona6/crossword-generator/placement"
)

// randomWords builds n distinct pseudo-random lowercase words of length
// 3 to 8 from a fixed seed, so runs stay comparable.
func randomWords(n int) []string {
	var key [32]byte
	key[0] = 7
	rng := frand.NewCustom(key[:], 1024, 12)

	words := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(words) < n {
		letters := make([]byte, 3+rng.Intn(6))
		for i := range letters {
			letters[i] = byte('a' + rng.Intn(26))
		}
		w := string(letters)
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	return words
}

// BenchmarkGenerate_Classic measures a small everyday word list.
func BenchmarkGenerate_Classic(b *testing.B) {
	words := []string{"stream", "master", "eraser", "stone", "reset", "tamer", "smart", "trams"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = placement.Generate(words)
	}
}

// BenchmarkGenerate_RandomCorpus scales the word count; random words cross
// rarely, so this also exercises the requeue and budget paths.
func BenchmarkGenerate_RandomCorpus(b *testing.B) {
	for _, n := range []int{10, 25, 50} {
		words := randomWords(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = placement.Generate(words, placement.WithRetryBudget(10))
			}
		})
	}
}

// BenchmarkGenerate_SeededShuffle measures the overhead of seeded
// candidate shuffling against the deterministic default.
func BenchmarkGenerate_SeededShuffle(b *testing.B) {
	words := randomWords(20)

	b.Run("Deterministic", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = placement.Generate(words, placement.WithRetryBudget(10))
		}
	})
	b.Run("Seeded", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = placement.Generate(words, placement.WithRetryBudget(10), placement.WithSeed(uint64(i)))
		}
	})
}
