package postag

import "strings"

type suffixRule struct {
	suffix string
	tag    string
}

// Rules are checked in order; longer and more specific endings come first.
var suffixRules = []suffixRule{
	{"вшись", "GRND"},
	{"вши", "GRND"},
	{"ючи", "GRND"},
	{"учи", "GRND"},

	{"вший", "PRTF"},
	{"ющий", "PRTF"},
	{"ящий", "PRTF"},
	{"ущий", "PRTF"},
	{"ащий", "PRTF"},
	{"нный", "PRTF"},

	{"ться", "INFN"},
	{"тись", "INFN"},
	{"ть", "INFN"},
	{"ти", "INFN"},
	{"чь", "INFN"},

	{"ски", "ADVB"},
	{"ьно", "ADVB"},

	{"ый", "ADJF"},
	{"ий", "ADJF"},
	{"ой", "ADJF"},
	{"ая", "ADJF"},
	{"яя", "ADJF"},
	{"ое", "ADJF"},
	{"ее", "ADJF"},
	{"ые", "ADJF"},
	{"ие", "ADJF"},

	{"ешь", "VERB"},
	{"ишь", "VERB"},
	{"ет", "VERB"},
	{"ит", "VERB"},
	{"ют", "VERB"},
	{"ят", "VERB"},
	{"ал", "VERB"},
	{"ил", "VERB"},
	{"ел", "VERB"},
}

// SuffixTagger guesses a coarse tag from the ending of a Russian word. Words
// with no recognized ending are tagged NOUN. It is a fallback for words
// missing from a Lexicon, not a morphological analyzer.
type SuffixTagger struct{}

// Tag implements Tagger.
func (SuffixTagger) Tag(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return ""
	}
	for _, rule := range suffixRules {
		if len([]rune(w)) > len([]rune(rule.suffix)) && strings.HasSuffix(w, rule.suffix) {
			return rule.tag
		}
	}
	return "NOUN"
}
