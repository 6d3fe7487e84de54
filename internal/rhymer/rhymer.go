// Package rhymer implements the rhyme index: two approximate-matching tries
// over the phonemes left and right of each word's stressed vowel, and the
// queries built on them (single rhymes, rhyme schemes and suggestions).
//
// A WordIndex is filled once by Train and is read-only afterwards, so any
// number of goroutines can query a trained index concurrently.
package rhymer

import (
	"log/slog"
	"math/rand/v2"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gcbaptista/go-rhyme-engine/config"
	"github.com/gcbaptista/go-rhyme-engine/index"
	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/internal/phonetics"
	"github.com/gcbaptista/go-rhyme-engine/internal/postag"
	"github.com/gcbaptista/go-rhyme-engine/model"
	"github.com/gcbaptista/go-rhyme-engine/store"
)

// Phonemizer converts a stress-marked form into phonemes. It is only asked
// about words that are not part of the trained corpus.
type Phonemizer interface {
	Phonemes(stressMarked string) ([]string, error)
}

// PhonemizerFunc adapts an ordinary function to the Phonemizer interface.
type PhonemizerFunc func(stressMarked string) ([]string, error)

// Phonemes calls f(stressMarked).
func (f PhonemizerFunc) Phonemes(stressMarked string) ([]string, error) {
	return f(stressMarked)
}

// Option configures the collaborators of a WordIndex.
type Option func(*WordIndex)

// WithTagger sets the part-of-speech tagger. Without one, postag.SuffixTagger
// is used.
func WithTagger(t postag.Tagger) Option {
	return func(wi *WordIndex) {
		if t != nil {
			wi.tagger = t
		}
	}
}

// WithPhonemizer sets the phonemizer used for words outside the corpus.
func WithPhonemizer(p Phonemizer) Option {
	return func(wi *WordIndex) {
		wi.phonemizer = p
	}
}

// WithRand makes anchor selection draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(wi *WordIndex) {
		if r == nil {
			return
		}
		var mu sync.Mutex
		wi.intn = func(n int) int {
			mu.Lock()
			defer mu.Unlock()
			return r.IntN(n)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(wi *WordIndex) {
		if logger != nil {
			wi.logger = logger
		}
	}
}

// WordIndex owns the trained corpus and both signature tries.
type WordIndex struct {
	settings config.RhymerSettings
	stressed phonetics.StressSet

	words   *store.WordStore
	left    *index.Trie[uint32]
	right   *index.Trie[uint32]
	trained bool

	tagger     postag.Tagger
	phonemizer Phonemizer
	intn       func(n int) int
	logger     *slog.Logger
	cache      *lru.Cache[cacheKey, []uint32]
}

type cacheKey struct {
	form       string
	strictness model.Strictness
}

// New creates an empty index with the given settings. Missing settings get
// their defaults; invalid ones are rejected.
func New(settings config.RhymerSettings, opts ...Option) (*WordIndex, error) {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, internalErrors.NewValidationError("settings", problems[0])
	}

	wi := &WordIndex{
		settings: settings,
		words:    store.NewWordStore(),
		left:     index.NewTrie[uint32](),
		right:    index.NewTrie[uint32](),
	}
	if err := wi.init(); err != nil {
		return nil, err
	}
	wi.Attach(opts...)
	return wi, nil
}

// init derives the unexported state that is not persisted.
func (wi *WordIndex) init() error {
	wi.stressed = phonetics.NewStressSet(wi.settings.StressPhonemes...)
	wi.tagger = postag.SuffixTagger{}
	wi.intn = rand.IntN
	wi.logger = slog.Default()
	wi.cache = nil

	if wi.settings.CacheSize > 0 {
		cache, err := lru.New[cacheKey, []uint32](wi.settings.CacheSize)
		if err != nil {
			return err
		}
		wi.cache = cache
	}
	return nil
}

// Attach applies options to an existing index, typically one just loaded from
// disk, whose collaborators are not part of its persisted state.
func (wi *WordIndex) Attach(opts ...Option) {
	for _, opt := range opts {
		opt(wi)
	}
}

// Settings returns a copy of the settings the index was built with.
func (wi *WordIndex) Settings() config.RhymerSettings {
	s := wi.settings
	s.Strictness = append([]model.Strictness(nil), wi.settings.Strictness...)
	s.StressPhonemes = append([]string(nil), wi.settings.StressPhonemes...)
	return s
}

// Trained reports whether Train completed successfully.
func (wi *WordIndex) Trained() bool {
	return wi.trained
}

// Len returns the number of indexed corpus entries.
func (wi *WordIndex) Len() int {
	return wi.words.Len()
}

// Words returns the corpus in training order.
func (wi *WordIndex) Words() []model.Word {
	return wi.words.All()
}

// Lookup returns the corpus word with the given form. The form is normalized
// first, so "кот" and "ко+т" find the same entry.
func (wi *WordIndex) Lookup(form string) (model.Word, bool) {
	w, err := model.NewWord(form, nil)
	if err != nil {
		return model.Word{}, false
	}
	id, ok := wi.words.Lookup(w.Form)
	if !ok {
		return model.Word{}, false
	}
	return wi.words.Get(id)
}

// ParseWord resolves a user supplied form. Corpus words come back with their
// recorded roots; other forms become root-less words.
func (wi *WordIndex) ParseWord(form string) (model.Word, error) {
	w, err := model.NewWord(form, nil)
	if err != nil {
		return model.Word{}, err
	}
	if id, ok := wi.words.Lookup(w.Form); ok {
		stored, _ := wi.words.Get(id)
		return stored, nil
	}
	return w, nil
}

// Stats describes the size of an index.
type Stats struct {
	Words            int  `json:"words"`
	LeftNodes        int  `json:"left_nodes"`
	RightNodes       int  `json:"right_nodes"`
	StrictnessLevels int  `json:"strictness_levels"`
	Trained          bool `json:"trained"`
}

// Stats returns the current size of the index.
func (wi *WordIndex) Stats() Stats {
	return Stats{
		Words:            wi.words.Len(),
		LeftNodes:        wi.left.NodeCount(),
		RightNodes:       wi.right.NodeCount(),
		StrictnessLevels: len(wi.settings.Strictness),
		Trained:          wi.trained,
	}
}

func (wi *WordIndex) tag(w model.Word) string {
	return wi.tagger.Tag(w.String())
}
