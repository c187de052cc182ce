// Package tuplefunc provides functions that convert between
// multiple-argument and multiple-return functions and their
// single-argument, single-return equivalents. This makes it trivial
// to pass arbitrary functions to generic operations that are
// designed to operate on arbitrary functions.
//
// The names of most functions in this package match the following
// regular expression:
//
//	(To|From)C?A?R?E?_[0-9]+_[0-9]+
//
// Each optional letter represents one aspect of the tuple form of
// the function:
//
//	C - context.Context argument, kept separate
//	A - the argument parameters, bundled into one tuple argument
//	R - the return parameters, bundled into one tuple return
//	E - error return, kept separate
//
// The first number is the number of argument parameters (not
// including context.Context for a C function); the second number is
// the number of return parameters (not including error for an E
// function). A part with no letter passes through unchanged, so for
// example:
//
//	ToCRE_1_3
//
// converts from (for some types A, R0, R1 and R2)
//
//	func(context.Context, A) (R0, R1, R2, error)
//
// to:
//
//	func(context.Context, A) (tuple.T3[R0, R1, R2], error)
//
// and:
//
//	ToAR_2_4
//
// converts from
//
//	func(A0, A1) (R0, R1, R2, R3)
//
// to:
//
//	func(tuple.T2[A0, A1]) tuple.T4[R0, R1, R2, R3]
//
// Every To function has a From inverse converting the tuple form
// back to the spread form.
package tuplefunc
