package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcbaptista/go-rhyme-engine/model"
)

func fields(result *ValidationResult) []string {
	out := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateWordForm(t *testing.T) {
	tests := []struct {
		name  string
		form  string
		valid bool
	}{
		{"valid", "ко+шка", true},
		{"empty", "", false},
		{"padded", " ко+шка", false},
		{"two words", "ко+шка до+м", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateWordForm("word", tt.form)
			assert.Equal(t, tt.valid, !result.HasErrors())
		})
	}
}

func TestValidateRhymeRequest(t *testing.T) {
	assert.False(t, ValidateRhymeRequest(&RhymeRequest{Word: "ca+t"}).HasErrors())

	result := ValidateRhymeRequest(&RhymeRequest{Word: "ca+t", MaxSkips: &model.Pair{}})
	assert.Equal(t, []string{"strictness"}, fields(result))

	result = ValidateRhymeRequest(&RhymeRequest{
		Word:       "ca+t",
		MinMatches: &model.Pair{Left: -1, Right: 2},
		MaxSkips:   &model.Pair{Left: 0, Right: -3},
	})
	assert.Equal(t, []string{"min_matches.left", "max_skips.right"}, fields(result))

	req := &RhymeRequest{Word: "ca+t", MinMatches: &model.Pair{Left: 1, Right: 2}, MaxSkips: &model.Pair{}}
	assert.False(t, ValidateRhymeRequest(req).HasErrors())
	assert.Equal(t, &model.Strictness{MinMatches: model.Pair{Left: 1, Right: 2}}, req.Strictness())
}

func TestValidateSchemeRequest(t *testing.T) {
	assert.False(t, ValidateSchemeRequest(&SchemeRequest{Scheme: []string{"A", "B"}}).HasErrors())

	assert.Equal(t, []string{"scheme"}, fields(ValidateSchemeRequest(&SchemeRequest{})))
	assert.Equal(t, []string{"scheme[1]", "max_attempts"},
		fields(ValidateSchemeRequest(&SchemeRequest{Scheme: []string{"A", " "}, MaxAttempts: -1})))

	long := strings.Split(strings.Repeat("A", maxSchemeLength+1), "")
	assert.Equal(t, []string{"scheme"}, fields(ValidateSchemeRequest(&SchemeRequest{Scheme: long})))
}

func TestValidateSuggestRequest(t *testing.T) {
	assert.False(t, ValidateSuggestRequest(&SuggestRequest{}).HasErrors())
	assert.Equal(t, []string{"context[1]"},
		fields(ValidateSuggestRequest(&SuggestRequest{Context: []string{"ca+t", ""}})))
}

func TestValidateTrainRequest(t *testing.T) {
	assert.False(t, ValidateTrainRequest(&TrainRequest{CorpusPath: "corpus.jsonl"}).HasErrors())
	assert.Equal(t, []string{"corpus_path"}, fields(ValidateTrainRequest(&TrainRequest{CorpusPath: "  "})))
}
