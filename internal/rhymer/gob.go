package rhymer

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/gcbaptista/go-rhyme-engine/config"
	"github.com/gcbaptista/go-rhyme-engine/index"
	"github.com/gcbaptista/go-rhyme-engine/store"
)

// gobWordIndexData is the persisted form of a WordIndex. Collaborators such as
// the tagger and the phonemizer are not part of it.
type gobWordIndexData struct {
	Settings config.RhymerSettings
	Words    *store.WordStore
	Left     *index.Trie[uint32]
	Right    *index.Trie[uint32]
	Trained  bool
}

// GobEncode implements gob.GobEncoder.
func (wi *WordIndex) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	data := gobWordIndexData{
		Settings: wi.settings,
		Words:    wi.words,
		Left:     wi.left,
		Right:    wi.right,
		Trained:  wi.trained,
	}
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("failed to encode word index: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder. The decoded index uses the default
// collaborators until Attach replaces them.
func (wi *WordIndex) GobDecode(raw []byte) error {
	var data gobWordIndexData
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return fmt.Errorf("failed to decode word index: %w", err)
	}

	data.Settings.ApplyDefaults()
	wi.settings = data.Settings
	wi.words = data.Words
	wi.left = data.Left
	wi.right = data.Right
	wi.trained = data.Trained

	if wi.words == nil {
		wi.words = store.NewWordStore()
	}
	if wi.left == nil {
		wi.left = index.NewTrie[uint32]()
	}
	if wi.right == nil {
		wi.right = index.NewTrie[uint32]()
	}
	return wi.init()
}
