// Package wordlist prepares raw user input for the placement engine.
package wordlist

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// sampleBank holds the built-in starter vocabulary. Everyday words with
// common letters, so sampled sets tend to interlock well.
var sampleBank = []string{
	"apple", "stream", "house", "stone", "plane",
	"train", "smart", "earth", "heart", "water",
	"tiger", "lemon", "grape", "bread", "cloud",
	"river", "sound", "light", "night", "dream",
	"green", "table", "chair", "music", "dance",
	"paper", "phone", "ocean", "storm", "field",
	"mouse", "horse", "snake", "eagle", "plant",
	"sugar", "spice", "candy", "berry", "melon",
}

// Sample returns n distinct words drawn from the built-in bank, shuffled
// deterministically by seed. The same (n, seed) pair always yields the
// same slice. Requests beyond the bank size are clamped; n <= 0 yields nil.
func Sample(n int, seed uint64) []string {
	if n <= 0 {
		return nil
	}
	bank := make([]string, len(sampleBank))
	copy(bank, sampleBank)

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	rng := frand.NewCustom(key[:], 1024, 12)
	rng.Shuffle(len(bank), func(i, j int) { bank[i], bank[j] = bank[j], bank[i] })

	if n > len(bank) {
		n = len(bank)
	}
	return bank[:n]
}

// BankSize reports how many words the built-in bank holds.
func BankSize() int { return len(sampleBank) }
