package engine

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/gcbaptista/go-rhyme-engine/internal/corpus"
	"github.com/gcbaptista/go-rhyme-engine/internal/rhymer"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

// Train builds a new index from the corpus at corpusPath, optionally limited
// to the words of the allow-list at allowListPath, persists it and makes it
// the live index. Queries keep using the previous index until the swap.
func (e *Engine) Train(ctx context.Context, corpusPath, allowListPath string, progress func(indexed, skipped int)) (rhymer.TrainStats, error) {
	e.trainMu.Lock()
	defer e.trainMu.Unlock()

	start := time.Now()
	stats, err := e.train(ctx, corpusPath, allowListPath, progress)
	e.metrics.ObserveTraining(time.Since(start), stats.Indexed, err)
	return stats, err
}

func (e *Engine) train(ctx context.Context, corpusPath, allowListPath string, progress func(indexed, skipped int)) (rhymer.TrainStats, error) {
	idx, err := rhymer.New(e.cfg.Rhymer, e.indexOpts...)
	if err != nil {
		return rhymer.TrainStats{}, err
	}

	opts := rhymer.TrainOptions{Progress: progress}
	if allowListPath != "" {
		allowed, err := corpus.OpenAllowList(allowListPath)
		if err != nil {
			return rhymer.TrainStats{}, err
		}
		opts.Allowed = allowed
	}

	e.logger.Info("Training rhyme index", "corpus", corpusPath, "allow_list", allowListPath)
	stats, err := idx.Train(withContext(ctx, corpus.OpenRecords(corpusPath)), opts)
	if err != nil {
		return rhymer.TrainStats{}, fmt.Errorf("failed to train from %s: %w", corpusPath, err)
	}

	if err := e.persistIndex(idx); err != nil {
		return rhymer.TrainStats{}, err
	}
	e.swap(idx)
	return stats, nil
}

// Reload replaces the live index with the persisted one.
func (e *Engine) Reload() error {
	e.trainMu.Lock()
	defer e.trainMu.Unlock()

	idx, err := e.loadIndex()
	if err != nil {
		return err
	}
	e.swap(idx)
	e.logger.Info("Rhyme index loaded", "path", e.IndexPath(), "words", idx.Len())
	return nil
}

// withContext stops records once ctx is done, reporting ctx.Err() as the last
// record error.
func withContext(ctx context.Context, records iter.Seq2[model.CorpusRecord, error]) iter.Seq2[model.CorpusRecord, error] {
	return func(yield func(model.CorpusRecord, error) bool) {
		for record, err := range records {
			if ctxErr := ctx.Err(); ctxErr != nil {
				yield(model.CorpusRecord{}, ctxErr)
				return
			}
			if !yield(record, err) {
				return
			}
		}
	}
}
