package index

// Node is a trie node: children keyed by tag in insertion order, plus the
// values whose path ends here. A node is owned by its parent.
type Node[V any] struct {
	tags     []string
	children []*Node[V]
	lookup   map[string]int // tag -> position in tags/children
	values   []V
}

// budget is the state of one approximate match. It is passed by value so
// every recursive call works on its own copy.
type budget struct {
	matches int // exact matches still required before the rest becomes a wildcard
	skips   int // divergent steps still allowed
}

// child returns the child reached through tag.
func (n *Node[V]) child(tag string) (*Node[V], bool) {
	i, ok := n.lookup[tag]
	if !ok {
		return nil, false
	}
	return n.children[i], true
}

// add returns the child reached through tag, creating it if absent.
func (n *Node[V]) add(tag string) *Node[V] {
	if c, ok := n.child(tag); ok {
		return c
	}
	c := &Node[V]{}
	n.attach(tag, c)
	return c
}

func (n *Node[V]) attach(tag string, c *Node[V]) {
	if n.lookup == nil {
		n.lookup = make(map[string]int)
	}
	n.lookup[tag] = len(n.children)
	n.tags = append(n.tags, tag)
	n.children = append(n.children, c)
}

// search yields the values reachable from n for the remaining path.
// It returns false once yield asked to stop.
//
// When the match quota is met every value in the subtree is accepted. While
// the path is not exhausted the node also keeps aligning: non-matching
// children spend skip budget in insertion order, and the budget they spent is
// no longer available to later siblings nor to the matching child. The guard
// on the skip budget is taken once per call, so later siblings may be visited
// with a budget at or below zero, which forbids further skips below them.
// Both branches can reach the same value, so values may be yielded more than
// once.
func (n *Node[V]) search(path []string, b budget, yield func(V) bool) bool {
	if b.matches <= 0 {
		for _, v := range n.values {
			if !yield(v) {
				return false
			}
		}
		rest := tail(path)
		for _, c := range n.children {
			if !c.search(rest, b, yield) {
				return false
			}
		}
	}

	if len(path) == 0 {
		return true
	}

	if b.skips > 0 {
		for i, tag := range n.tags {
			if tag == path[0] {
				continue
			}
			b.skips--
			if !n.children[i].search(path[1:], b, yield) {
				return false
			}
		}
	}

	if c, ok := n.child(path[0]); ok {
		b.matches--
		return c.search(path[1:], b, yield)
	}
	return true
}

func tail(path []string) []string {
	if len(path) == 0 {
		return path
	}
	return path[1:]
}
