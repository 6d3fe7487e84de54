// Package corpus reads the prepared training corpus: JSON lines of
// stress-marked words with their roots and phonemes, and optional allow-lists
// restricting which words get indexed.
package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/tidwall/gjson"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

const maxLineBytes = 4 * 1024 * 1024

// Records yields one CorpusRecord per non-blank line of r. Each line is a
// JSON object such as
//
//	{"word": "ко+шка", "roots": ["кош"], "phonemes": ["k", "O0", "sh", "k", "a"]}
//
// A malformed line yields a *errors.RecordError carrying its line number and
// ends the iteration.
func Records(r io.Reader) iter.Seq2[model.CorpusRecord, error] {
	return func(yield func(model.CorpusRecord, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

		line := 0
		for scanner.Scan() {
			line++
			raw := scanner.Bytes()
			if len(bytes.TrimSpace(raw)) == 0 {
				continue
			}

			record, err := parseRecord(raw)
			if err != nil {
				yield(model.CorpusRecord{}, internalErrors.NewRecordError(line, err))
				return
			}
			if !yield(record, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(model.CorpusRecord{}, internalErrors.NewRecordError(line+1, err))
		}
	}
}

// OpenRecords is Records over the file at path. The file is opened when the
// iteration starts and closed when it ends.
func OpenRecords(path string) iter.Seq2[model.CorpusRecord, error] {
	return func(yield func(model.CorpusRecord, error) bool) {
		file, err := os.Open(path) // #nosec G304 -- path is chosen by the operator
		if err != nil {
			yield(model.CorpusRecord{}, fmt.Errorf("failed to open corpus %s: %w", path, err))
			return
		}
		defer file.Close()

		for record, err := range Records(file) {
			if !yield(record, err) {
				return
			}
		}
	}
}

func parseRecord(raw []byte) (model.CorpusRecord, error) {
	if !gjson.ValidBytes(raw) {
		return model.CorpusRecord{}, fmt.Errorf("%w: line is not valid JSON", internalErrors.ErrInvalidInput)
	}

	fields := gjson.GetManyBytes(raw, "word", "roots", "phonemes")
	word := fields[0]
	if word.Type != gjson.String || word.Str == "" {
		return model.CorpusRecord{}, fmt.Errorf("%w: field 'word' is required", internalErrors.ErrInvalidInput)
	}

	roots, err := stringArray("roots", fields[1])
	if err != nil {
		return model.CorpusRecord{}, err
	}
	phonemes, err := stringArray("phonemes", fields[2])
	if err != nil {
		return model.CorpusRecord{}, err
	}

	return model.CorpusRecord{Word: word.Str, Roots: roots, Phonemes: phonemes}, nil
}

// stringArray accepts a missing field or an array of strings.
func stringArray(name string, value gjson.Result) ([]string, error) {
	if !value.Exists() || value.Type == gjson.Null {
		return nil, nil
	}
	if !value.IsArray() {
		return nil, fmt.Errorf("%w: field '%s' must be an array", internalErrors.ErrInvalidInput, name)
	}

	items := value.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%w: field '%s' must contain only strings", internalErrors.ErrInvalidInput, name)
		}
		out = append(out, item.Str)
	}
	return out, nil
}
