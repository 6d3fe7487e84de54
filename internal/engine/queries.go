package engine

import (
	"context"
	"errors"
	"time"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/model"
	"github.com/gcbaptista/go-rhyme-engine/services"
)

// FindRhymes returns the rhymes of form. A nil strictness selects the loosest
// level of the index settings.
func (e *Engine) FindRhymes(form string, strictness *model.Strictness) (*services.RhymeResult, error) {
	idx, err := e.current()
	if err != nil {
		return nil, err
	}
	start := time.Now()

	word, err := idx.ParseWord(form)
	if err != nil {
		return nil, err
	}

	var s model.Strictness
	if strictness != nil {
		s = *strictness
	} else {
		levels := idx.Settings().Strictness
		s = levels[len(levels)-1]
	}

	rhymes, err := idx.FindRhymes(word, s)
	if err != nil {
		return nil, err
	}

	return &services.RhymeResult{
		Word:       word,
		Strictness: s,
		Rhymes:     rhymes,
		Total:      len(rhymes),
		Took:       time.Since(start).Milliseconds(),
	}, nil
}

// AssignScheme fills a rhyme scheme from the live index.
func (e *Engine) AssignScheme(ctx context.Context, scheme []string, maxAttempts int) (*model.Assignment, error) {
	idx, err := e.current()
	if err != nil {
		return nil, err
	}

	assignment, err := idx.AssignScheme(ctx, scheme, maxAttempts)
	switch {
	case err == nil:
		if len(scheme) > 0 {
			e.metrics.ObserveScheme(assignment.Attempts, true)
		}
	case errors.Is(err, internalErrors.ErrSchemeUnsatisfied):
		e.metrics.ObserveScheme(0, false)
	}
	return assignment, err
}

// SuggestRhymes suggests what could follow the given forms.
func (e *Engine) SuggestRhymes(forms []string) (*services.SuggestionResult, error) {
	idx, err := e.current()
	if err != nil {
		return nil, err
	}
	start := time.Now()

	words := make([]model.Word, 0, len(forms))
	for _, form := range forms {
		w, err := idx.ParseWord(form)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	suggestions, err := idx.SuggestRhymes(words)
	if err != nil {
		return nil, err
	}

	return &services.SuggestionResult{
		Context:     words,
		Suggestions: suggestions,
		Total:       len(suggestions),
		Took:        time.Since(start).Milliseconds(),
	}, nil
}
