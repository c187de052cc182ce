package hashmap_test

import (
	"hash/maphash"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/arneos/immutable/hashmap"
	"github.com/arneos/immutable/record"
)

func TestNewMap(t *testing.T) {
	m := hashmap.NewMap[string, int](hashmap.ComparableHasher[string]{})
	qt.Assert(t, qt.Not(qt.IsNil(m)))
	qt.Assert(t, qt.Equals(m.Len(), 0))
}

func TestSetAndAt(t *testing.T) {
	m := hashmap.NewMap[string, int](hashmap.ComparableHasher[string]{})

	prev := m.Set("foo", 42)
	qt.Assert(t, qt.Equals(prev, 0))
	qt.Assert(t, qt.Equals(m.Len(), 1))
	qt.Assert(t, qt.Equals(m.At("foo"), 42))

	prev = m.Set("foo", 100)
	qt.Assert(t, qt.Equals(prev, 42))
	qt.Assert(t, qt.Equals(m.Len(), 1))
	qt.Assert(t, qt.Equals(m.At("foo"), 100))

	qt.Assert(t, qt.Equals(m.At("bar"), 0))
}

func TestDelete(t *testing.T) {
	m := hashmap.NewMap[string, int](hashmap.ComparableHasher[string]{})

	m.Set("foo", 42)
	m.Set("bar", 100)

	old, deleted := m.Delete("foo")
	qt.Assert(t, qt.Equals(old, 42))
	qt.Assert(t, qt.IsTrue(deleted))
	qt.Assert(t, qt.Equals(m.Len(), 1))
	qt.Assert(t, qt.Equals(m.At("foo"), 0))

	old, deleted = m.Delete("baz")
	qt.Assert(t, qt.Equals(old, 0))
	qt.Assert(t, qt.IsFalse(deleted))

	old, deleted = m.Delete("bar")
	qt.Assert(t, qt.Equals(old, 100))
	qt.Assert(t, qt.IsTrue(deleted))
	qt.Assert(t, qt.Equals(m.Len(), 0))
}

func TestRecordKeys(t *testing.T) {
	// Compound keys: arbitrary-arity records key the map by
	// structural equality, like tuples keying a dictionary.
	m := hashmap.NewMap[record.Record[string], string](record.Hasher[string]{})

	m.Set(record.Of("eu-west", "1"), "a")
	m.Set(record.Of("eu-west", "2"), "b")
	m.Set(record.Of("us-east", "1"), "c")
	qt.Assert(t, qt.Equals(m.Len(), 3))

	// An independently constructed equal record finds the entry.
	qt.Assert(t, qt.Equals(m.At(record.From([]string{"eu-west", "2"})), "b"))

	k, v, ok := m.Get(record.Of("us-east", "1"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "c"))
	qt.Assert(t, qt.IsTrue(record.Equal(k, record.Of("us-east", "1"))))

	// Updating through an equal key keeps a single entry.
	prev := m.Set(record.From([]string{"eu-west", "1"}), "a2")
	qt.Assert(t, qt.Equals(prev, "a"))
	qt.Assert(t, qt.Equals(m.Len(), 3))

	// Different arity is a different key.
	qt.Assert(t, qt.Equals(m.At(record.Of("eu-west")), ""))

	// The empty record is a valid key.
	m.Set(record.Of[string](), "empty")
	qt.Assert(t, qt.Equals(m.At(record.Record[string]{}), "empty"))
}

// collidingHasher hashes every value identically, forcing all
// entries into one bucket.
type collidingHasher struct{}

func (collidingHasher) Equal(a, b string) bool     { return a == b }
func (collidingHasher) Hash(*maphash.Hash, string) {}

func TestHashCollisions(t *testing.T) {
	m := hashmap.NewMap[string, int](collidingHasher{})

	m.Set("key1", 1)
	m.Set("key2", 2)
	m.Set("key3", 3)

	qt.Assert(t, qt.Equals(m.Len(), 3))
	qt.Assert(t, qt.Equals(m.At("key1"), 1))
	qt.Assert(t, qt.Equals(m.At("key2"), 2))
	qt.Assert(t, qt.Equals(m.At("key3"), 3))

	_, deleted := m.Delete("key2")
	qt.Assert(t, qt.IsTrue(deleted))
	qt.Assert(t, qt.Equals(m.Len(), 2))
	qt.Assert(t, qt.Equals(m.At("key2"), 0))
	qt.Assert(t, qt.Equals(m.At("key1"), 1))
	qt.Assert(t, qt.Equals(m.At("key3"), 3))
}

func TestIterators(t *testing.T) {
	m := hashmap.NewMap[string, int](hashmap.ComparableHasher[string]{})

	expected := map[string]int{
		"one":   1,
		"two":   2,
		"three": 3,
	}
	for k, v := range expected {
		m.Set(k, v)
	}

	seen := make(map[string]int)
	for k, v := range m.All() {
		seen[k] = v
	}
	qt.Assert(t, qt.DeepEquals(seen, expected))

	keys := make(map[string]bool)
	for k := range m.Keys() {
		keys[k] = true
	}
	qt.Assert(t, qt.DeepEquals(keys, map[string]bool{"one": true, "two": true, "three": true}))

	vals := make(map[int]bool)
	for v := range m.Values() {
		vals[v] = true
	}
	qt.Assert(t, qt.DeepEquals(vals, map[int]bool{1: true, 2: true, 3: true}))

	// Early exit.
	n := 0
	for range m.All() {
		n++
		break
	}
	qt.Assert(t, qt.Equals(n, 1))
}

func TestZeroValues(t *testing.T) {
	m := hashmap.NewMap[string, int](hashmap.ComparableHasher[string]{})

	prev := m.Set("zero", 0)
	qt.Assert(t, qt.Equals(prev, 0))
	qt.Assert(t, qt.Equals(m.Len(), 1))

	_, _, ok := m.Get("zero")
	qt.Assert(t, qt.IsTrue(ok))
}

func TestLargeMap(t *testing.T) {
	m := hashmap.NewMap[int, int](hashmap.ComparableHasher[int]{})

	n := 1000
	for i := range n {
		m.Set(i, i*2)
	}
	qt.Assert(t, qt.Equals(m.Len(), n))

	for i := range n {
		qt.Assert(t, qt.Equals(m.At(i), i*2))
	}

	for i := 0; i < n; i += 2 {
		old, deleted := m.Delete(i)
		qt.Assert(t, qt.Equals(old, i*2))
		qt.Assert(t, qt.IsTrue(deleted))
	}
	qt.Assert(t, qt.Equals(m.Len(), n/2))

	for i := 1; i < n; i += 2 {
		qt.Assert(t, qt.Equals(m.At(i), i*2))
	}
}
