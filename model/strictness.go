package model

import "fmt"

// Pair holds one value per signature side: Left for the phonemes before the
// stress (read backwards), Right for the phonemes from the stress onwards.
type Pair struct {
	Left  int `json:"left" yaml:"left"`
	Right int `json:"right" yaml:"right"`
}

// Strictness is a rhyme matching level: the exact phoneme matches required on
// each side of the stress and the divergent steps allowed on each side.
type Strictness struct {
	MinMatches Pair `json:"min_matches" yaml:"min_matches"`
	MaxSkips   Pair `json:"max_skips" yaml:"max_skips"`
}

func (s Strictness) String() string {
	return fmt.Sprintf("matches=(%d,%d) skips=(%d,%d)",
		s.MinMatches.Left, s.MinMatches.Right, s.MaxSkips.Left, s.MaxSkips.Right)
}

// DefaultStrictness returns the reference levels from strictest to loosest.
func DefaultStrictness() []Strictness {
	return []Strictness{
		{MinMatches: Pair{4, 4}, MaxSkips: Pair{1, 0}},
		{MinMatches: Pair{4, 4}, MaxSkips: Pair{0, 1}},
		{MinMatches: Pair{4, 3}, MaxSkips: Pair{1, 0}},
		{MinMatches: Pair{4, 3}, MaxSkips: Pair{0, 1}},
		{MinMatches: Pair{3, 4}, MaxSkips: Pair{1, 0}},
		{MinMatches: Pair{3, 4}, MaxSkips: Pair{0, 1}},
		{MinMatches: Pair{3, 3}, MaxSkips: Pair{0, 0}},
		{MinMatches: Pair{2, 2}, MaxSkips: Pair{0, 0}},
	}
}

// Assignment is a successfully filled rhyme scheme.
type Assignment struct {
	Scheme     []string   `json:"scheme"`
	Words      []Word     `json:"words"`
	Strictness Strictness `json:"strictness"` // Level of the attempt that succeeded
	Attempts   int        `json:"attempts"`   // Attempts spent, including the successful one
}
