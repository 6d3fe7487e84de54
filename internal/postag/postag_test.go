package postag

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLexicon(t *testing.T) {
	input := `# word	tag
кошка	noun

бежать	INFN
кошка	VERB
`
	lex, err := LoadLexicon(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, lex, 2)
	assert.Equal(t, "NOUN", lex.Tag("кошка"))
	assert.Equal(t, "NOUN", lex.Tag("Кошка"), "lookups are case-insensitive")
	assert.Equal(t, "INFN", lex.Tag("бежать"))
	assert.Equal(t, "", lex.Tag("собака"))
}

func TestLoadLexicon_MalformedLine(t *testing.T) {
	_, err := LoadLexicon(strings.NewReader("кошка NOUN\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestOpenLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.tsv")
	require.NoError(t, os.WriteFile(path, []byte("дом\tNOUN\n"), 0o600))

	lex, err := OpenLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, "NOUN", lex.Tag("дом"))

	_, err = OpenLexicon(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Error(t, err)
}

func TestSuffixTagger(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"бежать", "INFN"},
		{"смеяться", "INFN"},
		{"нести", "INFN"},
		{"красный", "ADJF"},
		{"синяя", "ADJF"},
		{"читающий", "PRTF"},
		{"прочитавши", "GRND"},
		{"дружески", "ADVB"},
		{"читает", "VERB"},
		{"кошка", "NOUN"},
		{"ть", "NOUN"},
		{"", ""},
	}

	var tagger SuffixTagger
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, tagger.Tag(tt.word))
		})
	}
}

func TestChain(t *testing.T) {
	lex := Lexicon{"стекло": "NOUN"}
	chain := Chain{lex, nil, SuffixTagger{}}

	assert.Equal(t, "NOUN", chain.Tag("стекло"), "lexicon wins")
	assert.Equal(t, "INFN", chain.Tag("бежать"), "falls back to suffixes")
	assert.Equal(t, "", Chain{}.Tag("бежать"))
}

func TestFunc(t *testing.T) {
	var tagger Tagger = Func(func(word string) string { return "X" + word })
	assert.Equal(t, "Xa", tagger.Tag("a"))
}
