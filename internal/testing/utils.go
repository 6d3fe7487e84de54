// Package testing provides fixtures and helpers for tests that need a trained
// rhyme engine.
package testing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-rhyme-engine/config"
	"github.com/gcbaptista/go-rhyme-engine/internal/engine"
	"github.com/gcbaptista/go-rhyme-engine/internal/logging"
	"github.com/gcbaptista/go-rhyme-engine/internal/postag"
	"github.com/gcbaptista/go-rhyme-engine/internal/rhymer"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

// Corpus is a small JSON-lines corpus of two rhyme groups with four words each.
// Latin letters carry no implicit stress, so every form is explicitly marked.
const Corpus = `{"word": "ca+t", "roots": ["cat"], "phonemes": ["k", "a", "t"]}
{"word": "ha+t", "roots": ["hat"], "phonemes": ["h", "a", "t"]}
{"word": "ma+t", "roots": ["mat"], "phonemes": ["m", "a", "t"]}
{"word": "sa+t", "roots": ["sat"], "phonemes": ["s", "a", "t"]}
{"word": "do+g", "roots": ["dog"], "phonemes": ["d", "o", "g"]}
{"word": "fro+g", "roots": ["frog"], "phonemes": ["f", "r", "o", "g"]}
{"word": "lo+g", "roots": ["log"], "phonemes": ["l", "o", "g"]}
{"word": "ho+g", "roots": ["hog"], "phonemes": ["h", "o", "g"]}
`

// CorpusSize is the number of records in Corpus.
const CorpusSize = 8

// Tags assigns alternating parts of speech inside each rhyme group.
var Tags = map[string]string{
	"cat": "NOUN", "hat": "VERB", "mat": "NOUN", "sat": "VERB",
	"dog": "NOUN", "frog": "VERB", "log": "NOUN", "hog": "VERB",
}

// LooseRight matches one phoneme before the stress and two from it, without skips.
var LooseRight = model.Strictness{MinMatches: model.Pair{Left: 1, Right: 2}}

// Tagger tags words from Tags.
func Tagger() postag.Tagger {
	return postag.Func(func(word string) string { return Tags[word] })
}

// Config returns an application config rooted in a temporary directory.
func Config(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		Data: config.DataConfig{Dir: t.TempDir(), IndexFile: "rhymer.gob"},
		Jobs: config.JobsConfig{MaxWorkers: 1},
		Log:  config.LogConfig{Level: "error", Format: "text"},
		Rhymer: config.RhymerSettings{
			Strictness:     []model.Strictness{LooseRight},
			MaxAttempts:    20,
			StressPhonemes: []string{"a", "o", "e", "i", "u"},
		},
	}
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// WriteCorpus writes Corpus to a temporary file and returns the path.
func WriteCorpus(t *testing.T) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "corpus.jsonl", Corpus)
}

// CreateTestEngine creates an untrained engine that is closed when the test ends.
func CreateTestEngine(t *testing.T, cfg config.AppConfig) *engine.Engine {
	t.Helper()
	eng := engine.NewEngine(cfg,
		engine.WithLogger(logging.Discard()),
		engine.WithIndexOptions(rhymer.WithTagger(Tagger())),
	)
	t.Cleanup(eng.Close)
	return eng
}

// CreateTrainedEngine creates an engine trained on Corpus.
func CreateTrainedEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng := CreateTestEngine(t, Config(t))
	stats, err := eng.Train(context.Background(), WriteCorpus(t), "", nil)
	require.NoError(t, err)
	require.Equal(t, CorpusSize, stats.Indexed)
	return eng
}
