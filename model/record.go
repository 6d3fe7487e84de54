package model

// CorpusRecord is one line of the prepared corpus: a stress-marked word, its
// root morphemes and the phoneme sequence produced by grapheme-to-phoneme
// conversion.
type CorpusRecord struct {
	Word     string   `json:"word"`
	Roots    []string `json:"roots"`
	Phonemes []string `json:"phonemes"`
}
