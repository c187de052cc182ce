package record

import (
	"cmp"
	"fmt"
)

// Equal reports whether a and b have the same arity and equal fields
// at every index. Equality is structural: it depends only on the
// field values, not on how either record was constructed.
func Equal[T comparable](a, b Record[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but uses eq to compare fields.
func EqualFunc[T any](a, b Record[T], eq func(x, y T) bool) bool {
	if len(a.fields) != len(b.fields) {
		return false
	}
	for i := range a.fields {
		if !eq(a.fields[i], b.fields[i]) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexically field by field.
// A record that is a strict prefix of another orders before it.
func Compare[T cmp.Ordered](a, b Record[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like [Compare] but uses compare to order fields.
func CompareFunc[T any](a, b Record[T], compare func(x, y T) int) int {
	for i := 0; i < len(a.fields) && i < len(b.fields); i++ {
		if c := compare(a.fields[i], b.fields[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.fields), len(b.fields))
}

// Count returns the number of fields of r equal to target,
// or zero if none match.
func Count[T comparable](r Record[T], target T) int {
	return CountFunc(r, func(x T) bool { return x == target })
}

// CountFunc returns the number of fields of r for which match
// returns true.
func CountFunc[T any](r Record[T], match func(T) bool) int {
	n := 0
	for _, x := range r.fields {
		if match(x) {
			n++
		}
	}
	return n
}

// Index returns the index of the first field of r equal to target.
// If no field matches it returns -1 and an [ErrNotFound] error,
// so a missing value cannot be mistaken for a match at index zero.
func Index[T comparable](r Record[T], target T) (int, error) {
	i, err := IndexFunc(r, func(x T) bool { return x == target })
	if err != nil {
		return -1, fmt.Errorf("index of %v: %w", target, ErrNotFound)
	}
	return i, nil
}

// IndexFunc returns the index of the first field of r for which
// match returns true, or -1 and an [ErrNotFound] error if none does.
func IndexFunc[T any](r Record[T], match func(T) bool) (int, error) {
	for i, x := range r.fields {
		if match(x) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}
