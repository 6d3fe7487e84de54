// Package stress normalizes the stress marking of orthographic word forms.
//
// A normalized form carries exactly one '+' marker placed right after the
// stressed vowel, e.g. "ко+шка". Dictionary sources mark stress with a
// combining acute accent (U+0301) instead; words with a single vowel or a
// single "ё" are stressed implicitly.
package stress

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
)

// Marker is the boundary symbol inserted after the stressed vowel.
const Marker = '+'

const (
	combiningAcute = "\u0301"
	vowels         = "уеёыаоэяию"
	jo             = 'ё'
)

// Normalize returns word with exactly one stress marker.
// Acute accents are converted to markers; unmarked words with one vowel or
// one "ё" get an implicit marker.
func Normalize(word string) (string, error) {
	word = strings.TrimSpace(word)
	if strings.Contains(word, "-") {
		return "", fmt.Errorf("%w: '%s'", internalErrors.ErrHyphenated, word)
	}

	// Decompose so that accented letters expose the combining acute,
	// then recompose so "ё" and "й" are single runes again.
	decomposed := strings.ReplaceAll(norm.NFD.String(word), combiningAcute, string(Marker))
	form := collapseMarkers(norm.NFC.String(decomposed))

	nMarkers := strings.Count(form, string(Marker))
	nJo := countRunes(form, func(r rune) bool { return r == jo })
	if nMarkers > 1 || (nMarkers == 0 && nJo > 1) {
		return "", fmt.Errorf("%w: '%s'", internalErrors.ErrAmbiguousStress, word)
	}

	if nMarkers == 0 {
		singleVowel := countRunes(form, isVowel) == 1
		var b strings.Builder
		b.Grow(len(form) + 1)
		for _, r := range form {
			b.WriteRune(r)
			if singleVowel && isVowel(r) {
				b.WriteRune(Marker)
			} else if !singleVowel && unicode.ToLower(r) == jo {
				b.WriteRune(Marker)
			}
		}
		form = b.String()
	}

	if !IsMarked(form) {
		return "", internalErrors.NewNotStressedError(word)
	}
	return form, nil
}

// IsMarked reports whether form carries a stress marker.
func IsMarked(form string) bool {
	return strings.ContainsRune(form, Marker)
}

// Strip removes every stress marker from form.
func Strip(form string) string {
	return strings.ReplaceAll(form, string(Marker), "")
}

func collapseMarkers(form string) string {
	double := string([]rune{Marker, Marker})
	for strings.Contains(form, double) {
		form = strings.ReplaceAll(form, double, string(Marker))
	}
	return form
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, unicode.ToLower(r))
}

func countRunes(s string, pred func(rune) bool) int {
	n := 0
	for _, r := range s {
		if pred(unicode.ToLower(r)) {
			n++
		}
	}
	return n
}
