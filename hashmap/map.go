// Package hashmap implements maps and sets keyed by values that
// define their own hash function and equivalence relation.
//
// Go's built-in map requires comparable keys, which rules out types
// backed by a slice, such as record.Record. A Map or Set in this
// package accepts any key type for which a [Hasher] is supplied, and
// looks entries up by structural equality: a key that is Equal to
// the stored one finds the entry even when the two are distinct
// values.
//
// The Hasher must be consistent: keys that compare Equal must write
// identical hash data. An inconsistent pair silently loses entries.
package hashmap

import (
	"hash/maphash"
	"iter"
)

// A Hasher defines a hash function and an equivalence relation over
// values of type T. Hash must write identical data for any x, y
// where Equal(x, y) is true.
type Hasher[T any] interface {
	Hash(*maphash.Hash, T)
	Equal(x, y T) bool
}

// ComparableHasher is an implementation of [Hasher] for comparable
// types. Its Equal(x, y) method is consistent with x == y.
type ComparableHasher[T comparable] struct {
	_ [0]func(T) // disallow comparison, and conversion between ComparableHasher[X] and ComparableHasher[Y]
}

func (ComparableHasher[T]) Hash(h *maphash.Hash, v T) { maphash.WriteComparable(h, v) }
func (ComparableHasher[T]) Equal(x, y T) bool         { return x == y }

// Map is a hash-table-based mapping from keys K to values V, using a
// [Hasher] for key hashing and equivalence.
//
// Use [NewMap] to create one; the zero Map has no hasher and is not
// usable. A Map is not safe for concurrent mutation; read-only
// operations may be called concurrently with each other.
type Map[K, V any] struct {
	hasher Hasher[K]
	seed   maphash.Seed
	table  map[uint64][]mapEntry[K, V]
	length int
}

type mapEntry[K, V any] struct {
	key K
	val V
}

// NewMap returns a new empty Map using h for key hashing and
// equivalence.
func NewMap[K, V any](h Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		hasher: h,
		seed:   maphash.MakeSeed(),
		table:  make(map[uint64][]mapEntry[K, V]),
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.length
}

func (m *Map[K, V]) hashKey(k K) uint64 {
	var h maphash.Hash
	h.SetSeed(m.seed)
	m.hasher.Hash(&h, k)
	return h.Sum64()
}

// find locates the bucket and index of the entry for k, if present.
func (m *Map[K, V]) find(k K) (uint64, int) {
	hv := m.hashKey(k)
	for i, e := range m.table[hv] {
		if m.hasher.Equal(k, e.key) {
			return hv, i
		}
	}
	return hv, -1
}

// At returns the value for key k, or the zero value of V if k is not
// present.
func (m *Map[K, V]) At(k K) V {
	if hv, i := m.find(k); i >= 0 {
		return m.table[hv][i].val
	}
	return *new(V)
}

// Get returns the stored key (Equal to k but not necessarily the
// same value), its associated value, and whether an entry was found.
func (m *Map[K, V]) Get(k K) (K, V, bool) {
	if hv, i := m.find(k); i >= 0 {
		e := m.table[hv][i]
		return e.key, e.val, true
	}
	return *new(K), *new(V), false
}

// Set sets the value for k to v, returning the previous value, or
// the zero value of V if there was none. The stored key is not
// replaced when an Equal key is already present.
func (m *Map[K, V]) Set(k K, v V) (prev V) {
	hv, i := m.find(k)
	if i >= 0 {
		b := m.table[hv]
		prev = b[i].val
		b[i].val = v
		return prev
	}
	m.table[hv] = append(m.table[hv], mapEntry[K, V]{key: k, val: v})
	m.length++
	return prev
}

// Delete removes the entry for k, if present, returning its value
// and whether it was found.
func (m *Map[K, V]) Delete(k K) (old V, deleted bool) {
	hv, i := m.find(k)
	if i < 0 {
		return *new(V), false
	}
	b := m.table[hv]
	old = b[i].val
	b[i] = b[len(b)-1]
	b = b[:len(b)-1]
	if len(b) == 0 {
		delete(m.table, hv)
	} else {
		m.table[hv] = b
	}
	m.length--
	return old, true
}

// All returns an iterator over (key, value) pairs in unspecified
// order. The map must not be mutated while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range m.table {
			for _, e := range b {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over keys in unspecified order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over values in unspecified order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
