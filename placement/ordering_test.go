package placement

import (
	"math"
	"reflect"
	"testing"
)

const scoreEps = 1e-9

////////////////////////////////////////////////////////////////////////////////
// middleBias
////////////////////////////////////////////////////////////////////////////////

// TestMiddleBias_Profile checks the linear ramp: 0.0 at both ends, 1.0 at
// the exact middle, symmetric in between. A single letter is all middle.
func TestMiddleBias_Profile(t *testing.T) {
	cases := []struct {
		name   string
		i, len int
		want   float64
	}{
		{"single letter", 0, 1, 1.0},
		{"first of three", 0, 3, 0.0},
		{"middle of three", 1, 3, 1.0},
		{"last of three", 2, 3, 0.0},
		{"second of five", 1, 5, 0.5},
		{"middle of five", 2, 5, 1.0},
		{"fourth of five", 3, 5, 0.5},
		{"both ends of two", 0, 2, 0.0},
		{"other end of two", 1, 2, 0.0},
	}
	for _, tc := range cases {
		if got := middleBias(tc.i, tc.len); math.Abs(got-tc.want) > scoreEps {
			t.Errorf("%s: middleBias(%d, %d) = %v; want %v", tc.name, tc.i, tc.len, got, tc.want)
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
// wordScore
////////////////////////////////////////////////////////////////////////////////

// TestWordScore_HandComputed pins a few scores against hand calculations
// using the frequency table directly.
func TestWordScore_HandComputed(t *testing.T) {
	cases := []struct {
		word string
		want float64
	}{
		// End letters weigh zero, so only 'a' in the middle counts.
		{"cat", letterFrequency['a'-'a']},
		// Two-letter words have no middle at all.
		{"to", 0.0},
		// A single letter is its own middle.
		{"e", letterFrequency['e'-'a']},
		// Five letters: full weight at index 2, half at 1 and 3.
		{"house", 0.5*letterFrequency['o'-'a'] + letterFrequency['u'-'a'] + 0.5*letterFrequency['s'-'a']},
	}
	for _, tc := range cases {
		if got := wordScore(tc.word); math.Abs(got-tc.want) > scoreEps {
			t.Errorf("wordScore(%q) = %v; want %v", tc.word, got, tc.want)
		}
	}
}

// TestWordScore_IgnoresNonLetters confirms bytes outside 'a'..'z' simply
// contribute nothing instead of indexing out of the table.
func TestWordScore_IgnoresNonLetters(t *testing.T) {
	if got := wordScore("c-t"); math.Abs(got) > scoreEps {
		t.Errorf("wordScore(%q) = %v; want 0", "c-t", got)
	}
}

////////////////////////////////////////////////////////////////////////////////
// orderWords
////////////////////////////////////////////////////////////////////////////////

// TestOrderWords_ScoreDescending sorts by descending score; "art" carries
// only 'r' in the middle and must come last.
func TestOrderWords_ScoreDescending(t *testing.T) {
	got := orderWords([]string{"art", "cat", "car"})
	want := []string{"cat", "car", "art"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("orderWords = %v; want %v", got, want)
	}
}

// TestOrderWords_TieByLength breaks equal scores by descending length:
// "aba" and "b" both score exactly freq(b).
func TestOrderWords_TieByLength(t *testing.T) {
	got := orderWords([]string{"b", "aba"})
	want := []string{"aba", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("orderWords = %v; want %v", got, want)
	}
}

// TestOrderWords_TieByInputOrder keeps first-seen order for full ties:
// every two-letter word scores zero.
func TestOrderWords_TieByInputOrder(t *testing.T) {
	got := orderWords([]string{"to", "of", "in"})
	want := []string{"to", "of", "in"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("orderWords = %v; want %v", got, want)
	}
}

// TestOrderWords_InputUntouched confirms the caller's slice is not
// reordered in place.
func TestOrderWords_InputUntouched(t *testing.T) {
	in := []string{"art", "cat"}
	_ = orderWords(in)
	if !reflect.DeepEqual(in, []string{"art", "cat"}) {
		t.Errorf("input slice mutated: %v", in)
	}
}
