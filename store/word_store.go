package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"slices"

	"github.com/gcbaptista/go-rhyme-engine/model"
)

// WordStore is the arena that owns every indexed word and its phonemes.
// Tries reference words by their uint32 id, the position in insertion order.
//
// A WordStore is filled once during training and only read afterwards, so it
// carries no lock of its own.
type WordStore struct {
	Words    []model.Word
	Phonemes [][]string
	FormToID map[string]uint32 // Stress-marked form to the first id holding it
}

// NewWordStore creates an empty store.
func NewWordStore() *WordStore {
	return &WordStore{FormToID: make(map[string]uint32)}
}

// Add appends word and returns its id. A form seen before gets a new id, but
// Lookup keeps resolving it to the first one.
func (ws *WordStore) Add(word model.Word, phonemes []string) uint32 {
	id := uint32(len(ws.Words))
	ws.Words = append(ws.Words, word)
	ws.Phonemes = append(ws.Phonemes, slices.Clone(phonemes))
	if _, exists := ws.FormToID[word.Form]; !exists {
		ws.FormToID[word.Form] = id
	}
	return id
}

// Get returns the word stored under id.
func (ws *WordStore) Get(id uint32) (model.Word, bool) {
	if int(id) >= len(ws.Words) {
		return model.Word{}, false
	}
	return ws.Words[id], true
}

// PhonemesOf returns the phoneme sequence stored under id.
func (ws *WordStore) PhonemesOf(id uint32) ([]string, bool) {
	if int(id) >= len(ws.Phonemes) {
		return nil, false
	}
	return ws.Phonemes[id], true
}

// Lookup resolves a stress-marked form to its id.
func (ws *WordStore) Lookup(form string) (uint32, bool) {
	id, ok := ws.FormToID[form]
	return id, ok
}

// Len returns the number of stored words, duplicates included.
func (ws *WordStore) Len() int {
	return len(ws.Words)
}

// All returns a copy of the stored words in insertion order.
func (ws *WordStore) All() []model.Word {
	return slices.Clone(ws.Words)
}

// gobWordStoreData is a helper struct for Gob encoding/decoding WordStore data.
// The form index is rebuilt on decode instead of being stored.
type gobWordStoreData struct {
	Words    []model.Word
	Phonemes [][]string
}

// GobEncode implements the gob.GobEncoder interface for WordStore.
func (ws *WordStore) GobEncode() ([]byte, error) {
	dataToEncode := gobWordStoreData{
		Words:    ws.Words,
		Phonemes: ws.Phonemes,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, fmt.Errorf("failed to gob encode word store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for WordStore.
func (ws *WordStore) GobDecode(data []byte) error {
	decodedData := gobWordStoreData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return fmt.Errorf("failed to gob decode word store data: %w", err)
	}
	if len(decodedData.Phonemes) != len(decodedData.Words) {
		return fmt.Errorf("corrupted word store data: %d words but %d phoneme sequences",
			len(decodedData.Words), len(decodedData.Phonemes))
	}

	ws.Words = decodedData.Words
	ws.Phonemes = decodedData.Phonemes
	ws.FormToID = make(map[string]uint32, len(ws.Words))
	for i, w := range ws.Words {
		if _, exists := ws.FormToID[w.Form]; !exists {
			ws.FormToID[w.Form] = uint32(i)
		}
	}
	return nil
}
