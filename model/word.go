package model

import (
	"slices"

	"github.com/gcbaptista/go-rhyme-engine/internal/stress"
)

// Word is a stress-marked orthographic form together with its root morphemes.
// Identity is defined by Form alone: two Words with the same Form are the same
// word for matching and deduplication, whatever roots they were recorded with.
type Word struct {
	Form  string   `json:"form"`  // Stress-marked form, e.g. "ко+шка"
	Roots []string `json:"roots"` // Root morphemes, sorted and deduplicated
}

// NewWord normalizes form and builds a Word. It fails when the form carries
// no stress marker and none can be inferred.
func NewWord(form string, roots []string) (Word, error) {
	normalized, err := stress.Normalize(form)
	if err != nil {
		return Word{}, err
	}
	return Word{Form: normalized, Roots: normalizeRoots(roots)}, nil
}

// Key returns the identity key of the word.
func (w Word) Key() string {
	return w.Form
}

// Equal reports whether both words have the same form.
func (w Word) Equal(other Word) bool {
	return w.Form == other.Form
}

// String returns the unmarked form.
func (w Word) String() string {
	return stress.Strip(w.Form)
}

// RootSet returns the roots of the word as a set.
func (w Word) RootSet() RootSet {
	set := make(RootSet, len(w.Roots))
	set.AddAll(w.Roots)
	return set
}

// SharesRoot reports whether any root of w is in roots.
func (w Word) SharesRoot(roots RootSet) bool {
	for _, r := range w.Roots {
		if _, ok := roots[r]; ok {
			return true
		}
	}
	return false
}

func normalizeRoots(roots []string) []string {
	out := make([]string, 0, len(roots))
	for _, r := range roots {
		if r != "" {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// RootSet is a set of root morphemes.
type RootSet map[string]struct{}

// Add inserts a root.
func (s RootSet) Add(root string) {
	s[root] = struct{}{}
}

// AddAll inserts every root.
func (s RootSet) AddAll(roots []string) {
	for _, r := range roots {
		s[r] = struct{}{}
	}
}

// Intersects reports whether both sets share a root.
func (s RootSet) Intersects(other RootSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for r := range small {
		if _, ok := large[r]; ok {
			return true
		}
	}
	return false
}
