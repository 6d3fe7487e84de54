package rhymer

import (
	"iter"
	"time"

	"github.com/gcbaptista/go-rhyme-engine/index"
	"github.com/gcbaptista/go-rhyme-engine/internal/corpus"
	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/internal/phonetics"
	"github.com/gcbaptista/go-rhyme-engine/internal/stress"
	"github.com/gcbaptista/go-rhyme-engine/model"
	"github.com/gcbaptista/go-rhyme-engine/store"
)

const progressEvery = 1000

// TrainOptions tunes a training pass.
type TrainOptions struct {
	// Allowed restricts training to the listed unmarked forms. An empty list
	// allows every word.
	Allowed corpus.AllowList
	// Progress, when set, is called every thousand records and once at the end.
	Progress func(indexed, skipped int)
}

// TrainStats summarizes a training pass.
type TrainStats struct {
	Indexed  int           `json:"indexed"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration"`
}

// Train indexes every record in one sequential pass. The first bad record
// aborts the pass and leaves the index untrained and empty.
func (wi *WordIndex) Train(records iter.Seq2[model.CorpusRecord, error], opts TrainOptions) (TrainStats, error) {
	if wi.trained {
		return TrainStats{}, internalErrors.ErrAlreadyTrained
	}

	start := time.Now()
	words := store.NewWordStore()
	left := index.NewTrie[uint32]()
	right := index.NewTrie[uint32]()

	var stats TrainStats
	line := 0
	report := func() {
		if opts.Progress != nil {
			opts.Progress(stats.Indexed, stats.Skipped)
		}
	}

	for record, err := range records {
		line++
		if err != nil {
			return TrainStats{}, err
		}

		if opts.Allowed.Len() > 0 && !opts.Allowed.Contains(stress.Strip(record.Word)) {
			stats.Skipped++
			continue
		}

		word, err := model.NewWord(record.Word, record.Roots)
		if err != nil {
			return TrainStats{}, internalErrors.NewRecordError(line, err)
		}
		sig, err := phonetics.Split(record.Phonemes, wi.stressed)
		if err != nil {
			return TrainStats{}, internalErrors.NewRecordError(line, err)
		}

		id := words.Add(word, record.Phonemes)
		if err := left.Insert(sig.Left, id); err != nil {
			return TrainStats{}, internalErrors.NewRecordError(line, err)
		}
		if err := right.Insert(sig.Right, id); err != nil {
			return TrainStats{}, internalErrors.NewRecordError(line, err)
		}

		stats.Indexed++
		if (stats.Indexed+stats.Skipped)%progressEvery == 0 {
			report()
		}
	}
	report()

	wi.words, wi.left, wi.right = words, left, right
	wi.trained = true
	if wi.cache != nil {
		wi.cache.Purge()
	}

	stats.Duration = time.Since(start)
	wi.logger.Info("Rhyme index trained",
		"indexed", stats.Indexed,
		"skipped", stats.Skipped,
		"left_nodes", left.NodeCount(),
		"right_nodes", right.NodeCount(),
		"duration", stats.Duration)

	return stats, nil
}
