package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
)

func TestNewWord(t *testing.T) {
	w, err := NewWord("ко\u0301шка", []string{"кош", "", "кош", "ка"})
	require.NoError(t, err)

	assert.Equal(t, "ко+шка", w.Form)
	assert.Equal(t, []string{"ка", "кош"}, w.Roots)
	assert.Equal(t, "кошка", w.String())
	assert.Equal(t, "ко+шка", w.Key())
}

func TestNewWord_NotStressed(t *testing.T) {
	_, err := NewWord("кошка", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrNotStressed))
}

func TestWord_IdentityIgnoresRoots(t *testing.T) {
	a := Word{Form: "ко+т", Roots: []string{"кот"}}
	b := Word{Form: "ко+т", Roots: []string{"other"}}
	c := Word{Form: "ки+т", Roots: []string{"кот"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	set := map[string]Word{}
	for _, w := range []Word{a, b, c} {
		set[w.Key()] = w
	}
	assert.Len(t, set, 2)
}

func TestWord_SharesRoot(t *testing.T) {
	w := Word{Form: "ко+т", Roots: []string{"кот"}}

	assert.True(t, w.SharesRoot(RootSet{"кот": {}}))
	assert.False(t, w.SharesRoot(RootSet{"кит": {}}))
	assert.False(t, Word{Form: "а+"}.SharesRoot(RootSet{"кот": {}}))
}

func TestRootSet_Intersects(t *testing.T) {
	a := RootSet{}
	a.AddAll([]string{"x", "y"})
	b := RootSet{}
	b.Add("y")

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
	assert.False(t, a.Intersects(RootSet{"z": {}}))
	assert.False(t, a.Intersects(RootSet{}))
}

func TestDefaultStrictness(t *testing.T) {
	levels := DefaultStrictness()
	require.Len(t, levels, 8)

	assert.Equal(t, Strictness{MinMatches: Pair{4, 4}, MaxSkips: Pair{1, 0}}, levels[0])
	assert.Equal(t, Strictness{MinMatches: Pair{2, 2}, MaxSkips: Pair{0, 0}}, levels[7])
	for _, s := range levels {
		assert.LessOrEqual(t, s.MaxSkips.Left, 1)
		assert.LessOrEqual(t, s.MaxSkips.Right, 1)
	}
}
