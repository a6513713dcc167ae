package placement

import (
	"math"
	"sort"
)

// letterFrequency holds standard English single-letter frequencies in
// percent, indexed by letter minus 'a'.
var letterFrequency = [26]float64{
	8.167,  // a
	1.492,  // b
	2.782,  // c
	4.253,  // d
	12.702, // e
	2.228,  // f
	2.015,  // g
	6.094,  // h
	6.966,  // i
	0.153,  // j
	0.772,  // k
	4.025,  // l
	2.406,  // m
	6.749,  // n
	7.507,  // o
	1.929,  // p
	0.095,  // q
	5.987,  // r
	6.327,  // s
	9.056,  // t
	2.758,  // u
	0.978,  // v
	2.360,  // w
	0.150,  // x
	1.974,  // y
	0.074,  // z
}

// middleBias weights letter index i of a length-L word: 1.0 at the exact
// middle, falling linearly to 0.0 at either end. A single-letter word is
// all middle.
func middleBias(i, length int) float64 {
	if length <= 1 {
		return 1.0
	}
	return 1.0 - math.Abs(2.0*float64(i)/float64(length-1)-1.0)
}

// wordScore sums frequency×middleBias over the word's letters. Words rich
// in common letters near their middle score highest, since mid-word letters
// expose crossing opportunities on both sides. Bytes outside 'a'..'z'
// contribute nothing.
func wordScore(w string) float64 {
	s := 0.0
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			continue
		}
		s += letterFrequency[c-'a'] * middleBias(i, len(w))
	}
	return s
}

// orderWords returns the input sorted for placement: descending wordScore,
// ties by descending length, remaining ties by first-seen order. The input
// slice is not modified.
func orderWords(words []string) []string {
	ordered := make([]string, len(words))
	copy(ordered, words)
	scores := make(map[string]float64, len(ordered))
	for _, w := range ordered {
		scores[w] = wordScore(w)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := scores[ordered[i]], scores[ordered[j]]
		if si != sj {
			return si > sj
		}
		return len(ordered[i]) > len(ordered[j])
	})
	return ordered
}
