// Package ptree implements the byte-level prefix tree that backs a
// Router's route table. Each node is one of three states: empty, a
// terminal Data value with no descendants, or a Tree carrying an
// optional value plus 256 further child slots indexed by byte. Keys
// are arbitrary non-empty byte sequences; the tree has no notion of
// '/' as a separator.
package ptree

const size = 256

// node is one slot of the tree. The three logical states from the
// data model map onto two nil checks:
//
//	Empty      children == nil, data == nil
//	Data(v)    children == nil, data != nil
//	Tree(o, t) children != nil, data holds o (nil when unset)
type node[T any] struct {
	data     *T
	children *[size]node[T]
}

func (n node[T]) isEmpty() bool {
	return n.data == nil && n.children == nil
}

// Tree is a 256-way byte-indexed prefix tree mapping byte-string keys
// to values of type T.
type Tree[T any] struct {
	routes [size]node[T]
}

// New returns an empty Tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Insert places value at key, returning the previous value stored at
// that exact key, if any. Promotes any Data node along the path into a
// Tree node, preserving its value as that Tree's own terminal value.
// Panics if key is empty.
func (t *Tree[T]) Insert(key []byte, value T) (previous T, had bool) {
	if len(key) == 0 {
		panic("ptree: empty keys are not supported")
	}

	routes := &t.routes
	for pos, b := range key {
		isLast := pos == len(key)-1
		cur := &routes[b]

		if isLast {
			if cur.data != nil {
				previous, had = *cur.data, true
			}
			v := value
			cur.data = &v
			return previous, had
		}

		if cur.children == nil {
			children := &[size]node[T]{}
			*cur = node[T]{data: cur.data, children: children}
		}
		routes = cur.children
	}

	panic("unreachable")
}

// Remove deletes the value stored at exactly key, returning it if
// present. Sub-trees created along the way are never collapsed, even
// when left entirely empty; this keeps the structure simple for a
// route table whose size is bounded and does not churn in steady
// state. Panics if key is empty.
func (t *Tree[T]) Remove(key []byte) (value T, had bool) {
	if len(key) == 0 {
		panic("ptree: empty keys are not supported")
	}

	routes := &t.routes
	for pos, b := range key {
		isLast := pos == len(key)-1
		cur := &routes[b]

		if isLast {
			if cur.data != nil {
				value, had = *cur.data, true
			}
			cur.data = nil
			return value, had
		}

		if cur.children == nil {
			return value, false
		}
		routes = cur.children
	}

	return value, false
}

// Find performs a longest-prefix match for key, returning the matched
// length and the value stored at that prefix. Descent stops the first
// time it reaches a slot it cannot continue through: an Empty slot, or
// a Data leaf (which has no children to descend into). This is the
// corrected form of the original algorithm's traversal, which in the
// Data case failed to stop descending and could spuriously re-match an
// unrelated sibling key sharing the same depth; see DESIGN.md.
func (t *Tree[T]) Find(key []byte) (matchedLen int, value T, ok bool) {
	routes := &t.routes

	for pos, b := range key {
		cur := routes[b]

		switch {
		case cur.isEmpty():
			return matchedLen, value, ok

		case cur.children == nil:
			// Data leaf: record it and stop, there is nowhere further to go.
			return pos + 1, *cur.data, true

		default:
			if cur.data != nil {
				matchedLen, value, ok = pos+1, *cur.data, true
			}
			routes = cur.children
		}
	}

	return matchedLen, value, ok
}

// Merge grafts other onto this tree under prefix, byte by byte,
// promoting nodes to Tree form as it descends just like Insert. At the
// node reached after consuming prefix, it combines the two node arrays
// element-wise using the second-operand-wins semantics of mergeNodes.
// An empty prefix merges the two roots directly.
func (t *Tree[T]) Merge(prefix []byte, other *Tree[T]) {
	if len(prefix) == 0 {
		mergeArrays(&t.routes, &other.routes)
		return
	}

	routes := &t.routes
	for pos, b := range prefix {
		isLast := pos == len(prefix)-1
		cur := &routes[b]

		if cur.children == nil {
			children := &[size]node[T]{}
			*cur = node[T]{data: cur.data, children: children}
		}

		if isLast {
			mergeArrays(cur.children, &other.routes)
			return
		}
		routes = cur.children
	}
}

func mergeArrays[T any](mine, theirs *[size]node[T]) {
	for i := range size {
		mine[i] = mergeNodes(mine[i], theirs[i])
	}
}

// mergeNodes combines two node slots: the second operand wins on a
// direct data conflict, and subtrees recurse.
func mergeNodes[T any](mine, theirs node[T]) node[T] {
	switch {
	case mine.isEmpty():
		return theirs
	case theirs.isEmpty():
		return mine

	case mine.children == nil && theirs.children == nil:
		// Data, Data -> theirs wins
		return theirs

	case mine.children == nil && theirs.children != nil:
		// Data(a), Tree(b, t) -> Tree(b or a, t)
		data := theirs.data
		if data == nil {
			data = mine.data
		}
		return node[T]{data: data, children: theirs.children}

	case mine.children != nil && theirs.children == nil:
		// Tree(_, t), Data(b) -> Tree(b, t)
		return node[T]{data: theirs.data, children: mine.children}

	default:
		// Tree(a, t1), Tree(b, t2) -> Tree(b or a, merge(t1, t2))
		data := theirs.data
		if data == nil {
			data = mine.data
		}
		mergeArrays(mine.children, theirs.children)
		return node[T]{data: data, children: mine.children}
	}
}

// Entry is one (key, value) pair yielded by Iter, in strict
// lexicographic byte order.
type Entry[T any] struct {
	Key   []byte
	Value T
}

// Iter walks the tree in lexicographic order, yielding every stored
// value exactly once. It skips Empty slots and Tree nodes carrying no
// value of their own.
func (t *Tree[T]) Iter(yield func(key []byte, value T) bool) {
	var walk func(prefix []byte, routes *[size]node[T]) bool
	walk = func(prefix []byte, routes *[size]node[T]) bool {
		for b := range size {
			n := routes[b]
			if n.isEmpty() {
				continue
			}

			key := append(append([]byte{}, prefix...), byte(b))

			if n.data != nil {
				if !yield(key, *n.data) {
					return false
				}
			}
			if n.children != nil {
				if !walk(key, n.children) {
					return false
				}
			}
		}
		return true
	}

	walk(nil, &t.routes)
}

// ForEach visits every stored value exactly once with a mutable
// reference, for in-place transforms after composition.
func (t *Tree[T]) ForEach(f func(value *T)) {
	var walk func(routes *[size]node[T])
	walk = func(routes *[size]node[T]) {
		for b := range size {
			n := &routes[b]
			if n.data != nil {
				f(n.data)
			}
			if n.children != nil {
				walk(n.children)
			}
		}
	}
	walk(&t.routes)
}
