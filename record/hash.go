package record

import "hash/maphash"

// Hash writes the record's arity and field values to h.
// Two records that are [Equal] write identical data, so they hash
// equally under any one seed; the arity is written first so that,
// for example, ("ab") and ("a", "b") do not collide trivially.
func Hash[T comparable](h *maphash.Hash, r Record[T]) {
	maphash.WriteComparable(h, len(r.fields))
	for _, x := range r.fields {
		maphash.WriteComparable(h, x)
	}
}

// Hasher defines hashing and equivalence for records of comparable
// fields, satisfying the hashmap package's Hasher interface. It lets
// records key a hashmap.Map or join a hashmap.Set even though their
// backing storage makes them non-comparable with ==.
type Hasher[T comparable] struct {
	_ [0]func(T) // disallow comparison and conversion between Hasher[X] and Hasher[Y]
}

func (Hasher[T]) Hash(h *maphash.Hash, r Record[T]) { Hash(h, r) }
func (Hasher[T]) Equal(a, b Record[T]) bool         { return Equal(a, b) }
