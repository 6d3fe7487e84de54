package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-rhyme-engine/config"
	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/internal/logging"
	"github.com/gcbaptista/go-rhyme-engine/internal/postag"
	"github.com/gcbaptista/go-rhyme-engine/internal/rhymer"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

const testCorpus = `{"word": "ca+t", "roots": ["cat"], "phonemes": ["k", "a", "t"]}
{"word": "ha+t", "roots": ["hat"], "phonemes": ["h", "a", "t"]}
{"word": "ma+t", "roots": ["mat"], "phonemes": ["m", "a", "t"]}
{"word": "sa+t", "roots": ["sat"], "phonemes": ["s", "a", "t"]}
{"word": "do+g", "roots": ["dog"], "phonemes": ["d", "o", "g"]}
{"word": "fro+g", "roots": ["frog"], "phonemes": ["f", "r", "o", "g"]}
{"word": "lo+g", "roots": ["log"], "phonemes": ["l", "o", "g"]}
{"word": "ho+g", "roots": ["hog"], "phonemes": ["h", "o", "g"]}
`

var testTags = map[string]string{
	"cat": "NOUN", "hat": "VERB", "mat": "NOUN", "sat": "VERB",
	"dog": "NOUN", "frog": "VERB", "log": "NOUN", "hog": "VERB",
}

var looseRight = model.Strictness{MinMatches: model.Pair{Left: 1, Right: 2}}

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		Data: config.DataConfig{Dir: t.TempDir(), IndexFile: "rhymer.gob"},
		Jobs: config.JobsConfig{MaxWorkers: 1},
		Rhymer: config.RhymerSettings{
			Strictness:     []model.Strictness{looseRight},
			MaxAttempts:    20,
			StressPhonemes: []string{"a", "o", "e", "i", "u"},
		},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestEngine(t *testing.T, cfg config.AppConfig) *Engine {
	t.Helper()
	tagger := postag.Func(func(word string) string { return testTags[word] })
	e := NewEngine(cfg,
		WithLogger(logging.Discard()),
		WithIndexOptions(rhymer.WithTagger(tagger)),
	)
	t.Cleanup(e.Close)
	return e
}

func TestEngine_NotReadyWithoutIndex(t *testing.T) {
	e := newTestEngine(t, testConfig(t))

	assert.False(t, e.Stats().Ready)

	_, err := e.FindRhymes("ca+t", nil)
	assert.ErrorIs(t, err, internalErrors.ErrIndexNotReady)
	_, err = e.AssignScheme(context.Background(), []string{"A"}, 1)
	assert.ErrorIs(t, err, internalErrors.ErrIndexNotReady)
	_, err = e.SuggestRhymes([]string{"ca+t"})
	assert.ErrorIs(t, err, internalErrors.ErrIndexNotReady)
}

func TestEngine_TrainPersistAndReload(t *testing.T) {
	cfg := testConfig(t)
	corpusPath := writeFile(t, t.TempDir(), "corpus.jsonl", testCorpus)

	e := newTestEngine(t, cfg)
	stats, err := e.Train(context.Background(), corpusPath, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Indexed)

	engineStats := e.Stats()
	assert.True(t, engineStats.Ready)
	assert.Equal(t, 8, engineStats.Index.Words)
	assert.FileExists(t, e.IndexPath())

	result, err := e.FindRhymes("ca+t", nil)
	require.NoError(t, err)
	assert.Equal(t, looseRight, result.Strictness)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, []string{"cat"}, result.Word.Roots)

	reloaded := newTestEngine(t, cfg)
	require.True(t, reloaded.Stats().Ready, "a new engine loads the persisted index")
	again, err := reloaded.FindRhymes("ca+t", &looseRight)
	require.NoError(t, err)
	assert.Equal(t, result.Rhymes, again.Rhymes)
}

func TestEngine_TrainWithAllowList(t *testing.T) {
	dir := t.TempDir()
	corpusPath := writeFile(t, dir, "corpus.jsonl", testCorpus)
	allowPath := writeFile(t, dir, "allowed.txt", "cat\nhat\n")

	e := newTestEngine(t, testConfig(t))
	stats, err := e.Train(context.Background(), corpusPath, allowPath, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Indexed)
	assert.Equal(t, 6, stats.Skipped)
}

func TestEngine_FailedTrainingKeepsLiveIndex(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.jsonl", testCorpus)
	bad := writeFile(t, dir, "bad.jsonl", testCorpus+`{"word": "stone", "phonemes": ["s", "t", "o", "n"]}`+"\n")

	e := newTestEngine(t, testConfig(t))
	_, err := e.Train(context.Background(), good, "", nil)
	require.NoError(t, err)

	_, err = e.Train(context.Background(), bad, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, internalErrors.ErrNotStressed)

	assert.Equal(t, 8, e.Stats().Index.Words)
}

func TestEngine_TrainCancelled(t *testing.T) {
	corpusPath := writeFile(t, t.TempDir(), "corpus.jsonl", testCorpus)
	e := newTestEngine(t, testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Train(ctx, corpusPath, "", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, e.Stats().Ready)
}

func TestEngine_TrainAsync(t *testing.T) {
	corpusPath := writeFile(t, t.TempDir(), "corpus.jsonl", testCorpus)
	e := newTestEngine(t, testConfig(t))

	jobID, err := e.TrainAsync(corpusPath, "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		job, err := e.GetJob(jobID)
		return err == nil && job.Status == model.JobStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	job, err := e.GetJob(jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobTypeTrain, job.Type)
	assert.Equal(t, corpusPath, job.Metadata["corpus_path"])
	require.NotNil(t, job.Progress)
	assert.Equal(t, 8, job.Progress.Current)
	assert.True(t, strings.HasPrefix(job.Progress.Message, "Indexed 8 words"))

	assert.True(t, e.Stats().Ready)
	assert.Len(t, e.ListJobs(nil), 1)
	assert.Equal(t, int64(1), e.GetJobMetrics().JobsCompleted)
}

func TestEngine_TrainAsyncValidation(t *testing.T) {
	e := newTestEngine(t, testConfig(t))

	_, err := e.TrainAsync("", "")
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)

	_, err = e.TrainAsync(filepath.Join(t.TempDir(), "missing.jsonl"), "")
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)

	corpusPath := writeFile(t, t.TempDir(), "corpus.jsonl", testCorpus)
	_, err = e.TrainAsync(corpusPath, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)

	assert.Empty(t, e.ListJobs(nil))
}

func TestEngine_ReloadAsync(t *testing.T) {
	cfg := testConfig(t)
	e := newTestEngine(t, cfg)

	jobID, err := e.ReloadAsync()
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		job, err := e.GetJob(jobID)
		return err == nil && job.Status == model.JobStatusFailed
	}, 5*time.Second, 10*time.Millisecond, "reloading without a persisted index fails")

	corpusPath := writeFile(t, t.TempDir(), "corpus.jsonl", testCorpus)
	trainer := newTestEngine(t, cfg)
	_, err = trainer.Train(context.Background(), corpusPath, "", nil)
	require.NoError(t, err)

	jobID, err = e.ReloadAsync()
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		job, err := e.GetJob(jobID)
		return err == nil && job.Status == model.JobStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, e.Stats().Ready)
}

func TestEngine_AssignSchemeAndSuggest(t *testing.T) {
	corpusPath := writeFile(t, t.TempDir(), "corpus.jsonl", testCorpus)
	e := newTestEngine(t, testConfig(t))
	_, err := e.Train(context.Background(), corpusPath, "", nil)
	require.NoError(t, err)

	assignment, err := e.AssignScheme(context.Background(), []string{"A", "B", "A", "B"}, 0)
	require.NoError(t, err)
	assert.Len(t, assignment.Words, 4)

	suggestions, err := e.SuggestRhymes([]string{"do+g", "ca+t"})
	require.NoError(t, err)
	assert.Len(t, suggestions.Context, 2)
	assert.Equal(t, 2, suggestions.Total)

	_, err = e.SuggestRhymes([]string{"a-b"})
	assert.ErrorIs(t, err, internalErrors.ErrHyphenated)
}
