// Package index provides the approximate-matching prefix tree used to look up
// words by the phonemes around their stressed vowel.
package index

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrEmptyPath is returned when inserting a value under an empty path.
var ErrEmptyPath = errors.New("trie path cannot be empty")

// Trie maps tag sequences to values. Roots are keyed by the first tag of a
// path and, like every other level, keep their insertion order, which fixes
// the order in which Search explores alternatives.
//
// A Trie is not safe for concurrent mutation; once filled it can be searched
// from any number of goroutines.
type Trie[V any] struct {
	roots *Node[V] // sentinel whose children are the root nodes
	size  int
}

// NewTrie creates an empty trie.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{roots: &Node[V]{}}
}

// Insert stores value at the node addressed by path, creating missing nodes.
func (t *Trie[V]) Insert(path []string, value V) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	node := t.roots
	for _, tag := range path {
		node = node.add(tag)
	}
	node.values = append(node.values, value)
	t.size++
	return nil
}

// Search lazily yields the values whose path aligns with path.
//
// An alignment starts at the root keyed by path[0] and must make at least
// min(minMatches, len(path)) exact tag matches, taking at most maxSkips edges
// whose tag differs from the path. Once enough matches are made the rest of
// path is ignored and the whole subtree is accepted. The same value can be
// produced more than once through different alignments; callers that need a
// set must deduplicate.
func (t *Trie[V]) Search(path []string, minMatches, maxSkips int) iter.Seq[V] {
	path = slices.Clone(path)
	return func(yield func(V) bool) {
		if len(path) == 0 {
			return
		}
		root, ok := t.roots.child(path[0])
		if !ok {
			return
		}
		quota := min(minMatches, len(path))
		root.search(path[1:], budget{matches: quota - 1, skips: maxSkips}, yield)
	}
}

// Len returns the number of stored values.
func (t *Trie[V]) Len() int {
	return t.size
}

// NodeCount returns the number of nodes, roots included.
func (t *Trie[V]) NodeCount() int {
	count := 0
	var walk func(n *Node[V])
	walk = func(n *Node[V]) {
		for _, c := range n.children {
			count++
			walk(c)
		}
	}
	walk(t.roots)
	return count
}

// gobTrieData is the flattened, preorder form of a trie used for Gob encoding.
// Parents[i] is the position of the parent of node i, or -1 for a root.
type gobTrieData[V any] struct {
	Tags    []string
	Parents []int32
	Values  [][]V
	Size    int
}

// GobEncode implements the gob.GobEncoder interface for Trie.
func (t *Trie[V]) GobEncode() ([]byte, error) {
	data := gobTrieData[V]{Size: t.size}

	var walk func(n *Node[V], parent int32)
	walk = func(n *Node[V], parent int32) {
		for i, c := range n.children {
			pos := int32(len(data.Tags))
			data.Tags = append(data.Tags, n.tags[i])
			data.Parents = append(data.Parents, parent)
			data.Values = append(data.Values, c.values)
			walk(c, pos)
		}
	}
	walk(t.roots, -1)

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("failed to gob encode trie: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for Trie.
func (t *Trie[V]) GobDecode(raw []byte) error {
	var data gobTrieData[V]
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&data); err != nil {
		return fmt.Errorf("failed to gob decode trie: %w", err)
	}
	if len(data.Parents) != len(data.Tags) || len(data.Values) != len(data.Tags) {
		return fmt.Errorf("corrupted trie data: %d tags, %d parents, %d value lists",
			len(data.Tags), len(data.Parents), len(data.Values))
	}

	roots := &Node[V]{}
	nodes := make([]*Node[V], len(data.Tags))
	for i, tag := range data.Tags {
		parent := roots
		if p := data.Parents[i]; p >= 0 {
			if int(p) >= i {
				return fmt.Errorf("corrupted trie data: node %d has parent %d", i, p)
			}
			parent = nodes[p]
		}
		node := &Node[V]{}
		if len(data.Values[i]) > 0 {
			node.values = data.Values[i]
		}
		parent.attach(tag, node)
		nodes[i] = node
	}

	t.roots = roots
	t.size = data.Size
	return nil
}
