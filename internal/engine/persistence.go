package engine

import (
	"fmt"

	"github.com/gcbaptista/go-rhyme-engine/internal/persistence"
	"github.com/gcbaptista/go-rhyme-engine/internal/rhymer"
)

// loadIndex reads the persisted index and attaches the engine collaborators.
func (e *Engine) loadIndex() (*rhymer.WordIndex, error) {
	idx := &rhymer.WordIndex{}
	if err := persistence.LoadGob(e.IndexPath(), idx); err != nil {
		return nil, err
	}
	idx.Attach(e.indexOpts...)
	return idx, nil
}

// persistIndex writes idx to the index file, replacing the previous one.
func (e *Engine) persistIndex(idx *rhymer.WordIndex) error {
	if err := persistence.SaveGob(e.IndexPath(), idx); err != nil {
		return fmt.Errorf("failed to persist rhyme index: %w", err)
	}
	e.logger.Info("Rhyme index persisted", "path", e.IndexPath(), "words", idx.Len())
	return nil
}
