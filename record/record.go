// Package record provides an immutable fixed-arity ordered sequence
// of values.
//
// A Record is constructed once from a sequence of values and never
// changes afterwards: every transformation (Concat, Repeat, Slice)
// allocates a new record and leaves its inputs untouched. Because a
// record never mutates, any number of goroutines may hold and read
// the same record concurrently without synchronization.
//
// Records of comparable element types support structural equality
// ([Equal]) and hashing ([Hash]); together with the hashmap package
// that lets a record of arbitrary arity act as a map key or set
// member, like a struct with one field per position but without the
// arity being fixed at compile time. When the arity and field types
// are known at compile time, prefer the tuple package or a plain
// struct type.
package record

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrNotFound is returned by Index when no field matches.
	ErrNotFound = errors.New("value not found")

	// ErrInvalidArgument is returned when a parameter is outside
	// its documented domain, such as a negative repeat count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrArityMismatch is returned by Unpack when the number of
	// destinations does not equal the record's arity.
	ErrArityMismatch = errors.New("arity mismatch")
)

// Record holds a fixed-arity ordered sequence of values of type T.
//
// The zero value is the empty record, with arity zero.
type Record[T any] struct {
	// fields holds the backing store. It is never written to
	// after the Record holding it is returned to a caller.
	fields []T
}

// Of returns a record holding the given fields in order.
// The fields are copied, so mutating a slice passed via ...
// afterwards does not affect the record.
func Of[T any](fields ...T) Record[T] {
	return From(fields)
}

// From returns a record holding a copy of src.
// Later mutation of src does not affect the record.
func From[T any](src []T) Record[T] {
	if len(src) == 0 {
		return Record[T]{}
	}
	fields := make([]T, len(src))
	copy(fields, src)
	return Record[T]{fields: fields}
}

// Len returns the record's arity.
func (r Record[T]) Len() int {
	return len(r.fields)
}

// At returns the field at index i. The first field is at index zero.
// It panics if i is out of range.
func (r Record[T]) At(i int) T {
	if i < 0 || i >= len(r.fields) {
		panic("record.Record.At called with index out of range")
	}
	return r.fields[i]
}

// All returns an iterator over the fields in order.
func (r Record[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range r.fields {
			if !yield(x) {
				return
			}
		}
	}
}

// Fields returns an iterator over (index, field) pairs in order.
func (r Record[T]) Fields() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range r.fields {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns the fields as a freshly allocated slice.
// Mutating the result does not affect the record.
func (r Record[T]) Values() []T {
	return r.AppendTo(nil)
}

// AppendTo appends the fields to dst and returns the extended slice.
func (r Record[T]) AppendTo(dst []T) []T {
	return append(dst, r.fields...)
}

// Concat returns a record holding the fields of each record in recs,
// in order. Its arity is the sum of the arities of recs.
func Concat[T any](recs ...Record[T]) Record[T] {
	total := 0
	for _, r := range recs {
		total += len(r.fields)
	}
	if total == 0 {
		return Record[T]{}
	}
	fields := make([]T, 0, total)
	for _, r := range recs {
		fields = append(fields, r.fields...)
	}
	return Record[T]{fields: fields}
}

// Repeat returns a record holding the fields repeated n times in
// order, with arity r.Len() * n. When n is zero the result is the
// empty record. It returns an [ErrInvalidArgument] error if n is
// negative.
func (r Record[T]) Repeat(n int) (Record[T], error) {
	if n < 0 {
		return Record[T]{}, fmt.Errorf("repeat count %d: %w", n, ErrInvalidArgument)
	}
	if n == 0 || len(r.fields) == 0 {
		return Record[T]{}, nil
	}
	fields := make([]T, 0, n*len(r.fields))
	for range n {
		fields = append(fields, r.fields...)
	}
	return Record[T]{fields: fields}, nil
}

// Slice returns a record holding the fields at indexes [start, end),
// using the usual sequence-slicing conventions of dynamic languages:
// a negative index counts back from the end of the record, and
// out-of-range bounds clamp to the nearest valid boundary rather
// than failing. When the resolved start is not below the resolved
// end, the result is the empty record.
func (r Record[T]) Slice(start, end int) Record[T] {
	start = r.clamp(start)
	end = r.clamp(end)
	if start >= end {
		return Record[T]{}
	}
	return From(r.fields[start:end])
}

// clamp resolves a possibly-negative slice index to [0, r.Len()].
func (r Record[T]) clamp(i int) int {
	if i < 0 {
		i += len(r.fields)
	}
	return max(0, min(i, len(r.fields)))
}

// Unpack destructures the record into the given destinations,
// positionally: the first field is stored through dsts[0] and so on.
// It returns an [ErrArityMismatch] error, storing nothing, if the
// number of destinations does not equal the record's arity.
func (r Record[T]) Unpack(dsts ...*T) error {
	if len(dsts) != len(r.fields) {
		return fmt.Errorf("unpacking record of arity %d into %d targets: %w", len(r.fields), len(dsts), ErrArityMismatch)
	}
	for i, p := range dsts {
		*p = r.fields[i]
	}
	return nil
}

// String returns the fields formatted as "(f0, f1, ...)".
func (r Record[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('(')
	for i, x := range r.fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", x)
	}
	buf.WriteByte(')')
	return buf.String()
}
