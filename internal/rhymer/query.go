package rhymer

import (
	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/internal/phonetics"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

// FindRhymes returns the corpus words matching word on both sides of the
// stress at strictness s, minus those sharing a root with word.
//
// Results come in right trie traversal order with one entry per form.
func (wi *WordIndex) FindRhymes(word model.Word, s model.Strictness) ([]model.Word, error) {
	ids, err := wi.rhymeIDs(word, s)
	if err != nil {
		return nil, err
	}

	roots := word.RootSet()
	rhymes := make([]model.Word, 0, len(ids))
	for _, id := range ids {
		candidate, _ := wi.words.Get(id)
		if candidate.SharesRoot(roots) {
			continue
		}
		rhymes = append(rhymes, candidate)
	}
	return rhymes, nil
}

// rhymeIDs intersects both trie searches. The result depends only on the form
// and the strictness, so it is what gets cached.
func (wi *WordIndex) rhymeIDs(word model.Word, s model.Strictness) ([]uint32, error) {
	key := cacheKey{form: word.Form, strictness: s}
	if wi.cache != nil {
		if ids, ok := wi.cache.Get(key); ok {
			return ids, nil
		}
	}

	phonemes, err := wi.phonemesOf(word)
	if err != nil {
		return nil, err
	}
	sig, err := phonetics.Split(phonemes, wi.stressed)
	if err != nil {
		return nil, err
	}

	leftMatches := make(map[uint32]struct{})
	for id := range wi.left.Search(sig.Left, s.MinMatches.Left, s.MaxSkips.Left) {
		leftMatches[wi.canonical(id)] = struct{}{}
	}

	seen := make(map[uint32]struct{})
	var ids []uint32
	for id := range wi.right.Search(sig.Right, s.MinMatches.Right, s.MaxSkips.Right) {
		c := wi.canonical(id)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := leftMatches[c]; ok {
			ids = append(ids, id)
		}
	}

	if wi.cache != nil {
		wi.cache.Add(key, ids)
	}
	return ids, nil
}

// canonical maps an entry to the first entry recorded with the same form.
func (wi *WordIndex) canonical(id uint32) uint32 {
	w, _ := wi.words.Get(id)
	if first, ok := wi.words.Lookup(w.Form); ok {
		return first
	}
	return id
}

func (wi *WordIndex) phonemesOf(word model.Word) ([]string, error) {
	if id, ok := wi.words.Lookup(word.Form); ok {
		phonemes, _ := wi.words.PhonemesOf(id)
		return phonemes, nil
	}
	if wi.phonemizer == nil {
		return nil, internalErrors.NewUnknownWordError(word.Form)
	}
	return wi.phonemizer.Phonemes(word.Form)
}

// SuggestRhymes returns what could rhyme with the last word of context: the
// union of its rhymes over every strictness level, without words sharing a
// root with any context word or sharing the last word's part of speech.
func (wi *WordIndex) SuggestRhymes(context []model.Word) ([]model.Word, error) {
	if len(context) == 0 {
		return []model.Word{}, nil
	}

	last := context[len(context)-1]
	lastTag := wi.tag(last)
	seenRoots := make(model.RootSet)
	for _, w := range context {
		seenRoots.AddAll(w.Roots)
	}

	seen := make(map[string]struct{})
	suggestions := []model.Word{}
	for _, s := range wi.settings.Strictness {
		rhymes, err := wi.FindRhymes(last, s)
		if err != nil {
			return nil, err
		}
		for _, candidate := range rhymes {
			if _, dup := seen[candidate.Form]; dup {
				continue
			}
			seen[candidate.Form] = struct{}{}
			if candidate.SharesRoot(seenRoots) || wi.tag(candidate) == lastTag {
				continue
			}
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions, nil
}
