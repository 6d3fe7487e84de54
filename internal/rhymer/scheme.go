package rhymer

import (
	"context"
	"slices"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

// AssignScheme fills scheme with words so that equal labels rhyme, no two
// positions share a root and rhyming neighbours differ in part of speech.
//
// Attempt i runs TryAssignOnce at strictness level i modulo the number of
// configured levels, so repeated attempts both re-draw the random anchors and
// relax the matching. maxAttempts <= 0 uses the configured default.
func (wi *WordIndex) AssignScheme(ctx context.Context, scheme []string, maxAttempts int) (*model.Assignment, error) {
	if len(scheme) == 0 {
		return &model.Assignment{Scheme: []string{}, Words: []model.Word{}}, nil
	}
	if wi.words.Len() == 0 {
		return nil, internalErrors.ErrEmptyCorpus
	}
	if maxAttempts <= 0 {
		maxAttempts = wi.settings.MaxAttempts
	}

	levels := wi.settings.Strictness
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s := levels[attempt%len(levels)]
		words, ok, err := wi.TryAssignOnce(scheme, s)
		if err != nil {
			return nil, err
		}
		if ok {
			wi.logger.Debug("Rhyme scheme assigned",
				"scheme", scheme,
				"attempts", attempt+1,
				"strictness", s.String())
			return &model.Assignment{
				Scheme:     slices.Clone(scheme),
				Words:      words,
				Strictness: s,
				Attempts:   attempt + 1,
			}, nil
		}
	}

	return nil, internalErrors.NewSchemeUnsatisfiedError(scheme, maxAttempts)
}

// TryAssignOnce makes a single assignment attempt at strictness s.
//
// The first occurrence of a label gets a random corpus word; later
// occurrences take the first rhyme of the label's latest word that shares no
// root with anything picked so far and has a different part of speech. ok is
// false when some position cannot be filled; there is no backtracking.
func (wi *WordIndex) TryAssignOnce(scheme []string, s model.Strictness) ([]model.Word, bool, error) {
	n := wi.words.Len()
	if n == 0 {
		return nil, false, internalErrors.ErrEmptyCorpus
	}

	stacks := make(map[string][]model.Word)
	seenRoots := make(model.RootSet)

	for _, label := range scheme {
		stack := stacks[label]

		if len(stack) == 0 {
			word, _ := wi.words.Get(uint32(wi.intn(n)))
			if word.SharesRoot(seenRoots) {
				return nil, false, nil
			}
			stacks[label] = append(stack, word)
			seenRoots.AddAll(word.Roots)
			continue
		}

		anchor := stack[len(stack)-1]
		anchorTag := wi.tag(anchor)
		rhymes, err := wi.FindRhymes(anchor, s)
		if err != nil {
			return nil, false, err
		}

		found := false
		for _, candidate := range rhymes {
			if candidate.SharesRoot(seenRoots) || wi.tag(candidate) == anchorTag {
				continue
			}
			stacks[label] = append(stack, candidate)
			seenRoots.AddAll(candidate.Roots)
			found = true
			break
		}
		if !found {
			return nil, false, nil
		}
	}

	// Each position takes the top of its label's stack.
	words := make([]model.Word, len(scheme))
	for i, label := range scheme {
		stack := stacks[label]
		words[i] = stack[len(stack)-1]
		stacks[label] = stack[:len(stack)-1]
	}
	return words, true, nil
}
