// Package postag provides part-of-speech taggers for unmarked word forms.
//
// The rhyme index only compares tags for equality, so any consistent tag set
// works. The taggers in this package use OpenCorpora style tags such as NOUN,
// VERB, INFN and ADJF. An empty tag means the tagger has no opinion.
package postag

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Tagger returns the part of speech of an unmarked word form.
type Tagger interface {
	Tag(word string) string
}

// Func adapts an ordinary function to the Tagger interface.
type Func func(word string) string

// Tag calls f(word).
func (f Func) Tag(word string) string {
	return f(word)
}

// Chain asks each tagger in turn and returns the first non-empty tag.
type Chain []Tagger

// Tag implements Tagger.
func (c Chain) Tag(word string) string {
	for _, t := range c {
		if t == nil {
			continue
		}
		if tag := t.Tag(word); tag != "" {
			return tag
		}
	}
	return ""
}

// Lexicon is a dictionary of known word forms and their tags.
// Lookups are case-insensitive.
type Lexicon map[string]string

// Tag implements Tagger.
func (l Lexicon) Tag(word string) string {
	return l[strings.ToLower(word)]
}

// LoadLexicon reads "word<TAB>tag" lines. Blank lines and lines starting with
// '#' are skipped. A word listed twice keeps its first tag.
func LoadLexicon(r io.Reader) (Lexicon, error) {
	lex := make(Lexicon)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		word, tag, ok := strings.Cut(text, "\t")
		word, tag = strings.TrimSpace(word), strings.TrimSpace(tag)
		if !ok || word == "" || tag == "" {
			return nil, fmt.Errorf("lexicon line %d: expected word<TAB>tag, got %q", line, text)
		}
		word = strings.ToLower(word)
		if _, exists := lex[word]; !exists {
			lex[word] = strings.ToUpper(tag)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	return lex, nil
}

// OpenLexicon loads a lexicon file.
func OpenLexicon(path string) (Lexicon, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon %s: %w", path, err)
	}
	defer file.Close()
	return LoadLexicon(file)
}
