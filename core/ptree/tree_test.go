package ptree

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestFindExactMatch(t *testing.T) {
	tree := New[int]()
	tree.Insert([]byte("abc"), 5)

	_, _, ok := tree.Find([]byte("ab"))
	assert.False(t, ok)

	length, value, ok := tree.Find([]byte("abc"))
	assert.True(t, ok)
	assert.Equal(t, length, 3)
	assert.Equal(t, value, 5)

	length, value, ok = tree.Find([]byte("abcd"))
	assert.True(t, ok)
	assert.Equal(t, length, 3)
	assert.Equal(t, value, 5)
}

// Corrected longest-prefix behavior: a sibling key sharing a depth with
// a shorter, already-matched key must never override it. The original
// Rust find() failed to stop descending after a Data match and could
// spuriously pick up "abd" while looking for a prefix of "abcd".
func TestFindDoesNotLeakIntoSiblingOfShorterMatch(t *testing.T) {
	tree := New[int]()
	tree.Insert([]byte("abc"), 5)
	tree.Insert([]byte("abd"), 9)

	length, value, ok := tree.Find([]byte("abcd"))
	assert.True(t, ok)
	assert.Equal(t, length, 3)
	assert.Equal(t, value, 5)

	length, value, ok = tree.Find([]byte("abd"))
	assert.True(t, ok)
	assert.Equal(t, length, 3)
	assert.Equal(t, value, 9)
}

func TestMergeTwoTrees(t *testing.T) {
	tree1 := New[int]()
	tree1.Insert([]byte("abc"), 4)
	tree1.Insert([]byte("axy"), 9)
	tree1.Insert([]byte("z"), 6)

	tree2 := New[int]()
	tree2.Insert([]byte("b"), 5)
	tree2.Insert([]byte("abc"), 7)
	tree2.Insert([]byte("xyz"), 10)

	tree1.Merge([]byte("a"), tree2)

	check := func(key string, wantLen int, wantVal int) {
		t.Helper()
		length, value, ok := tree1.Find([]byte(key))
		assert.True(t, ok)
		assert.Equal(t, length, wantLen)
		assert.Equal(t, value, wantVal)
	}

	check("ab", 2, 5)
	check("abc", 3, 4)
	check("abcd", 3, 4)
	check("aabcd", 4, 7)
	check("axy", 3, 9)
	check("axyz", 4, 10)
	check("axyzx", 4, 10)
	check("z", 1, 6)
}

func TestIterLexicographicOrder(t *testing.T) {
	tree1 := New[int]()
	tree1.Insert([]byte("abc"), 4)
	tree1.Insert([]byte("axy"), 9)
	tree1.Insert([]byte("z"), 6)

	tree2 := New[int]()
	tree2.Insert([]byte("b"), 5)
	tree2.Insert([]byte("abc"), 7)
	tree2.Insert([]byte("xyz"), 10)

	tree1.Merge([]byte("a"), tree2)

	var keys []string
	var values []int
	tree1.Iter(func(key []byte, value int) bool {
		keys = append(keys, string(key))
		values = append(values, value)
		return true
	})

	assert.DeepEqual(t, keys, []string{"aabc", "ab", "abc", "axy", "axyz", "z"})
	assert.DeepEqual(t, values, []int{7, 5, 4, 9, 10, 6})
}

func TestInsertThenRemoveRestoresPriorFind(t *testing.T) {
	tree := New[int]()
	tree.Insert([]byte("a"), 1)

	_, preOk := struct{}{}, false
	_, _, preOk = tree.Find([]byte("ab"))

	previous, had := tree.Insert([]byte("ab"), 2)
	assert.False(t, had)
	assert.Equal(t, previous, 0)

	length, value, ok := tree.Find([]byte("ab"))
	assert.True(t, ok)
	assert.Equal(t, length, 2)
	assert.Equal(t, value, 2)

	removed, had := tree.Remove([]byte("ab"))
	assert.True(t, had)
	assert.Equal(t, removed, 2)

	length, value, ok = tree.Find([]byte("ab"))
	assert.Equal(t, ok, preOk)
	if ok {
		assert.Equal(t, length, 1)
		assert.Equal(t, value, 1)
	}
}

func TestInsertReturnsPreviousValue(t *testing.T) {
	tree := New[string]()
	_, had := tree.Insert([]byte("k"), "one")
	assert.False(t, had)

	previous, had := tree.Insert([]byte("k"), "two")
	assert.True(t, had)
	assert.Equal(t, previous, "one")
}

func TestRemoveNeverCollapsesSubtrees(t *testing.T) {
	tree := New[int]()
	tree.Insert([]byte("ab"), 1)
	tree.Insert([]byte("abc"), 2)

	_, had := tree.Remove([]byte("ab"))
	assert.True(t, had)

	// "abc" is still reachable: the intermediate Tree node for "ab"
	// survives with its own value cleared.
	length, value, ok := tree.Find([]byte("abc"))
	assert.True(t, ok)
	assert.Equal(t, length, 3)
	assert.Equal(t, value, 2)
}
