package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// AllowList is a set of unmarked word forms. An empty AllowList allows
// nothing by itself; callers treat it as "no restriction".
type AllowList map[string]struct{}

// NewAllowList builds an AllowList from words.
func NewAllowList(words ...string) AllowList {
	list := make(AllowList, len(words))
	for _, w := range words {
		list[w] = struct{}{}
	}
	return list
}

// Contains reports whether word is listed.
func (a AllowList) Contains(word string) bool {
	_, ok := a[word]
	return ok
}

// Len returns the number of listed words.
func (a AllowList) Len() int {
	return len(a)
}

// ReadAllowList reads one word per line, ignoring surrounding whitespace and
// blank lines.
func ReadAllowList(r io.Reader) (AllowList, error) {
	list := make(AllowList)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			list[w] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read allow-list: %w", err)
	}
	return list, nil
}

// OpenAllowList reads the allow-list file at path.
func OpenAllowList(path string) (AllowList, error) {
	file, err := os.Open(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to open allow-list %s: %w", path, err)
	}
	defer file.Close()
	return ReadAllowList(file)
}
