package hashmap

import "iter"

// Set is a hash-table-based set of values, using a [Hasher] for
// membership hashing and equivalence.
//
// Use [NewSet] to create one; the zero Set is not usable.
type Set[T any] struct {
	m *Map[T, struct{}]
}

// NewSet returns a new empty Set using h for hashing and
// equivalence.
func NewSet[T any](h Hasher[T]) *Set[T] {
	return &Set[T]{m: NewMap[T, struct{}](h)}
}

// Len returns the number of members in the set.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// Add adds x to the set and reports whether it was not already a
// member. When an Equal member is already present it is kept and x
// is discarded.
func (s *Set[T]) Add(x T) bool {
	if _, _, ok := s.m.Get(x); ok {
		return false
	}
	s.m.Set(x, struct{}{})
	return true
}

// Has reports whether the set has a member Equal to x.
func (s *Set[T]) Has(x T) bool {
	_, _, ok := s.m.Get(x)
	return ok
}

// Delete removes the member Equal to x, if present, and reports
// whether it was found.
func (s *Set[T]) Delete(x T) bool {
	_, deleted := s.m.Delete(x)
	return deleted
}

// All returns an iterator over the members in unspecified order.
// The set must not be mutated while iterating.
func (s *Set[T]) All() iter.Seq[T] {
	return s.m.Keys()
}
