// Package tuple provides a collection of generic struct types that
// hold a specific number of values.
//
// A tuple type is a fixed-arity product type: its arity and field
// types are fixed at compile time, and every operation on it returns
// new values rather than mutating in place. When the element types
// are comparable the tuple itself is comparable, so it can be used
// directly as a map key or set member, with equality and hashing
// derived structurally from the field values by the language.
//
// For records whose fields deserve domain names rather than
// positions, declare an ordinary struct type instead; it has the
// same value semantics. The tuple types are for the anonymous cases:
// bundling multiple return values, compound map keys, and the like.
// For records whose arity is only known at run time, see the record
// package.
//
// See the tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run generate.go
