// Package phonetics splits phoneme sequences around their stressed vowel.
package phonetics

import (
	"slices"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
)

// StressSet is the set of phoneme symbols that denote a stressed vowel.
type StressSet map[string]struct{}

// NewStressSet builds a StressSet from symbols.
func NewStressSet(symbols ...string) StressSet {
	set := make(StressSet, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

// DefaultStressSymbols are the stressed vowels produced by the Russian
// grapheme-to-phoneme converter; the "l" variants are the palatalized ones.
var DefaultStressSymbols = []string{
	"U0", "O0", "A0", "E0", "Y0", "I0",
	"U0l", "O0l", "A0l", "E0l", "Y0l", "I0l",
}

// DefaultStressSet returns a StressSet of DefaultStressSymbols.
func DefaultStressSet() StressSet {
	return NewStressSet(DefaultStressSymbols...)
}

// Contains reports whether symbol is a stressed vowel.
func (s StressSet) Contains(symbol string) bool {
	_, ok := s[symbol]
	return ok
}

// Signature is a phoneme sequence split around its stressed vowel.
// Both sides start with the stressed phoneme: Left grows towards the start of
// the word, Right towards its end.
type Signature struct {
	Left  []string
	Right []string
}

// StressIndex returns the position of the first stressed phoneme.
func StressIndex(phonemes []string, stressed StressSet) (int, error) {
	for i, p := range phonemes {
		if stressed.Contains(p) {
			return i, nil
		}
	}
	return -1, internalErrors.NewNoStressPhonemeError(phonemes)
}

// Split computes the left and right signatures of phonemes.
// The returned slices never share memory with phonemes.
func Split(phonemes []string, stressed StressSet) (Signature, error) {
	idx, err := StressIndex(phonemes, stressed)
	if err != nil {
		return Signature{}, err
	}

	left := slices.Clone(phonemes[:idx+1])
	slices.Reverse(left)
	right := slices.Clone(phonemes[idx:])

	return Signature{Left: left, Right: right}, nil
}
