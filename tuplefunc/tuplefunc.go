package tuplefunc

import (
	"context"

	"github.com/arneos/immutable/tuple"
)

// Argument-only forms.

// ToA_2_0 converts from func(A0, A1) to func(tuple.T2[A0, A1]).
func ToA_2_0[A0, A1 any](f func(A0, A1)) func(tuple.T2[A0, A1]) {
	return func(a tuple.T2[A0, A1]) {
		f(a.Get())
	}
}

// FromA_2_0 converts from func(tuple.T2[A0, A1]) to func(A0, A1).
func FromA_2_0[A0, A1 any](f func(tuple.T2[A0, A1])) func(A0, A1) {
	return func(a0 A0, a1 A1) {
		f(tuple.MkT2(a0, a1))
	}
}

// ToA_2_1 converts from func(A0, A1) R to func(tuple.T2[A0, A1]) R.
func ToA_2_1[A0, A1, R any](f func(A0, A1) R) func(tuple.T2[A0, A1]) R {
	return func(a tuple.T2[A0, A1]) R {
		return f(a.Get())
	}
}

// FromA_2_1 converts from func(tuple.T2[A0, A1]) R to func(A0, A1) R.
func FromA_2_1[A0, A1, R any](f func(tuple.T2[A0, A1]) R) func(A0, A1) R {
	return func(a0 A0, a1 A1) R {
		return f(tuple.MkT2(a0, a1))
	}
}

// ToA_3_1 converts from func(A0, A1, A2) R to func(tuple.T3[A0, A1, A2]) R.
func ToA_3_1[A0, A1, A2, R any](f func(A0, A1, A2) R) func(tuple.T3[A0, A1, A2]) R {
	return func(a tuple.T3[A0, A1, A2]) R {
		return f(a.Get())
	}
}

// FromA_3_1 converts from func(tuple.T3[A0, A1, A2]) R to func(A0, A1, A2) R.
func FromA_3_1[A0, A1, A2, R any](f func(tuple.T3[A0, A1, A2]) R) func(A0, A1, A2) R {
	return func(a0 A0, a1 A1, a2 A2) R {
		return f(tuple.MkT3(a0, a1, a2))
	}
}

// Return-only forms.

// ToR_0_2 converts from func() (R0, R1) to func() tuple.T2[R0, R1].
func ToR_0_2[R0, R1 any](f func() (R0, R1)) func() tuple.T2[R0, R1] {
	return func() tuple.T2[R0, R1] {
		return tuple.MkT2(f())
	}
}

// FromR_0_2 converts from func() tuple.T2[R0, R1] to func() (R0, R1).
func FromR_0_2[R0, R1 any](f func() tuple.T2[R0, R1]) func() (R0, R1) {
	return func() (R0, R1) {
		return f().Get()
	}
}

// ToR_0_3 converts from func() (R0, R1, R2) to func() tuple.T3[R0, R1, R2].
func ToR_0_3[R0, R1, R2 any](f func() (R0, R1, R2)) func() tuple.T3[R0, R1, R2] {
	return func() tuple.T3[R0, R1, R2] {
		return tuple.MkT3(f())
	}
}

// FromR_0_3 converts from func() tuple.T3[R0, R1, R2] to func() (R0, R1, R2).
func FromR_0_3[R0, R1, R2 any](f func() tuple.T3[R0, R1, R2]) func() (R0, R1, R2) {
	return func() (R0, R1, R2) {
		return f().Get()
	}
}

// ToR_1_2 converts from func(A) (R0, R1) to func(A) tuple.T2[R0, R1].
func ToR_1_2[A, R0, R1 any](f func(A) (R0, R1)) func(A) tuple.T2[R0, R1] {
	return func(a A) tuple.T2[R0, R1] {
		return tuple.MkT2(f(a))
	}
}

// FromR_1_2 converts from func(A) tuple.T2[R0, R1] to func(A) (R0, R1).
func FromR_1_2[A, R0, R1 any](f func(A) tuple.T2[R0, R1]) func(A) (R0, R1) {
	return func(a A) (R0, R1) {
		return f(a).Get()
	}
}

// ToR_1_3 converts from func(A) (R0, R1, R2) to func(A) tuple.T3[R0, R1, R2].
func ToR_1_3[A, R0, R1, R2 any](f func(A) (R0, R1, R2)) func(A) tuple.T3[R0, R1, R2] {
	return func(a A) tuple.T3[R0, R1, R2] {
		return tuple.MkT3(f(a))
	}
}

// FromR_1_3 converts from func(A) tuple.T3[R0, R1, R2] to func(A) (R0, R1, R2).
func FromR_1_3[A, R0, R1, R2 any](f func(A) tuple.T3[R0, R1, R2]) func(A) (R0, R1, R2) {
	return func(a A) (R0, R1, R2) {
		return f(a).Get()
	}
}

// Argument-and-return forms.

// ToAR_2_2 converts from func(A0, A1) (R0, R1) to
// func(tuple.T2[A0, A1]) tuple.T2[R0, R1].
func ToAR_2_2[A0, A1, R0, R1 any](f func(A0, A1) (R0, R1)) func(tuple.T2[A0, A1]) tuple.T2[R0, R1] {
	return func(a tuple.T2[A0, A1]) tuple.T2[R0, R1] {
		return tuple.MkT2(f(a.Get()))
	}
}

// FromAR_2_2 converts from func(tuple.T2[A0, A1]) tuple.T2[R0, R1]
// to func(A0, A1) (R0, R1).
func FromAR_2_2[A0, A1, R0, R1 any](f func(tuple.T2[A0, A1]) tuple.T2[R0, R1]) func(A0, A1) (R0, R1) {
	return func(a0 A0, a1 A1) (R0, R1) {
		return f(tuple.MkT2(a0, a1)).Get()
	}
}

// ToAR_2_3 converts from func(A0, A1) (R0, R1, R2) to
// func(tuple.T2[A0, A1]) tuple.T3[R0, R1, R2].
func ToAR_2_3[A0, A1, R0, R1, R2 any](f func(A0, A1) (R0, R1, R2)) func(tuple.T2[A0, A1]) tuple.T3[R0, R1, R2] {
	return func(a tuple.T2[A0, A1]) tuple.T3[R0, R1, R2] {
		return tuple.MkT3(f(a.Get()))
	}
}

// FromAR_2_3 converts from func(tuple.T2[A0, A1]) tuple.T3[R0, R1, R2]
// to func(A0, A1) (R0, R1, R2).
func FromAR_2_3[A0, A1, R0, R1, R2 any](f func(tuple.T2[A0, A1]) tuple.T3[R0, R1, R2]) func(A0, A1) (R0, R1, R2) {
	return func(a0 A0, a1 A1) (R0, R1, R2) {
		return f(tuple.MkT2(a0, a1)).Get()
	}
}

// ToAR_3_2 converts from func(A0, A1, A2) (R0, R1) to
// func(tuple.T3[A0, A1, A2]) tuple.T2[R0, R1].
func ToAR_3_2[A0, A1, A2, R0, R1 any](f func(A0, A1, A2) (R0, R1)) func(tuple.T3[A0, A1, A2]) tuple.T2[R0, R1] {
	return func(a tuple.T3[A0, A1, A2]) tuple.T2[R0, R1] {
		return tuple.MkT2(f(a.Get()))
	}
}

// FromAR_3_2 converts from func(tuple.T3[A0, A1, A2]) tuple.T2[R0, R1]
// to func(A0, A1, A2) (R0, R1).
func FromAR_3_2[A0, A1, A2, R0, R1 any](f func(tuple.T3[A0, A1, A2]) tuple.T2[R0, R1]) func(A0, A1, A2) (R0, R1) {
	return func(a0 A0, a1 A1, a2 A2) (R0, R1) {
		return f(tuple.MkT3(a0, a1, a2)).Get()
	}
}

// ToAR_2_4 converts from func(A0, A1) (R0, R1, R2, R3) to
// func(tuple.T2[A0, A1]) tuple.T4[R0, R1, R2, R3].
func ToAR_2_4[A0, A1, R0, R1, R2, R3 any](f func(A0, A1) (R0, R1, R2, R3)) func(tuple.T2[A0, A1]) tuple.T4[R0, R1, R2, R3] {
	return func(a tuple.T2[A0, A1]) tuple.T4[R0, R1, R2, R3] {
		return tuple.MkT4(f(a.Get()))
	}
}

// FromAR_2_4 converts from func(tuple.T2[A0, A1]) tuple.T4[R0, R1, R2, R3]
// to func(A0, A1) (R0, R1, R2, R3).
func FromAR_2_4[A0, A1, R0, R1, R2, R3 any](f func(tuple.T2[A0, A1]) tuple.T4[R0, R1, R2, R3]) func(A0, A1) (R0, R1, R2, R3) {
	return func(a0 A0, a1 A1) (R0, R1, R2, R3) {
		return f(tuple.MkT2(a0, a1)).Get()
	}
}

// Error-returning forms.

// ToAE_2_0 converts from func(A0, A1) error to
// func(tuple.T2[A0, A1]) error.
func ToAE_2_0[A0, A1 any](f func(A0, A1) error) func(tuple.T2[A0, A1]) error {
	return func(a tuple.T2[A0, A1]) error {
		return f(a.Get())
	}
}

// FromAE_2_0 converts from func(tuple.T2[A0, A1]) error to
// func(A0, A1) error.
func FromAE_2_0[A0, A1 any](f func(tuple.T2[A0, A1]) error) func(A0, A1) error {
	return func(a0 A0, a1 A1) error {
		return f(tuple.MkT2(a0, a1))
	}
}

// ToAE_2_1 converts from func(A0, A1) (R, error) to
// func(tuple.T2[A0, A1]) (R, error).
func ToAE_2_1[A0, A1, R any](f func(A0, A1) (R, error)) func(tuple.T2[A0, A1]) (R, error) {
	return func(a tuple.T2[A0, A1]) (R, error) {
		return f(a.Get())
	}
}

// FromAE_2_1 converts from func(tuple.T2[A0, A1]) (R, error) to
// func(A0, A1) (R, error).
func FromAE_2_1[A0, A1, R any](f func(tuple.T2[A0, A1]) (R, error)) func(A0, A1) (R, error) {
	return func(a0 A0, a1 A1) (R, error) {
		return f(tuple.MkT2(a0, a1))
	}
}

// ToRE_0_2 converts from func() (R0, R1, error) to
// func() (tuple.T2[R0, R1], error).
func ToRE_0_2[R0, R1 any](f func() (R0, R1, error)) func() (tuple.T2[R0, R1], error) {
	return func() (tuple.T2[R0, R1], error) {
		r0, r1, err := f()
		return tuple.MkT2(r0, r1), err
	}
}

// FromRE_0_2 converts from func() (tuple.T2[R0, R1], error) to
// func() (R0, R1, error).
func FromRE_0_2[R0, R1 any](f func() (tuple.T2[R0, R1], error)) func() (R0, R1, error) {
	return func() (R0, R1, error) {
		r, err := f()
		return r.A, r.B, err
	}
}

// ToRE_1_2 converts from func(A) (R0, R1, error) to
// func(A) (tuple.T2[R0, R1], error).
func ToRE_1_2[A, R0, R1 any](f func(A) (R0, R1, error)) func(A) (tuple.T2[R0, R1], error) {
	return func(a A) (tuple.T2[R0, R1], error) {
		r0, r1, err := f(a)
		return tuple.MkT2(r0, r1), err
	}
}

// FromRE_1_2 converts from func(A) (tuple.T2[R0, R1], error) to
// func(A) (R0, R1, error).
func FromRE_1_2[A, R0, R1 any](f func(A) (tuple.T2[R0, R1], error)) func(A) (R0, R1, error) {
	return func(a A) (R0, R1, error) {
		r, err := f(a)
		return r.A, r.B, err
	}
}

// ToRE_1_3 converts from func(A) (R0, R1, R2, error) to
// func(A) (tuple.T3[R0, R1, R2], error).
func ToRE_1_3[A, R0, R1, R2 any](f func(A) (R0, R1, R2, error)) func(A) (tuple.T3[R0, R1, R2], error) {
	return func(a A) (tuple.T3[R0, R1, R2], error) {
		r0, r1, r2, err := f(a)
		return tuple.MkT3(r0, r1, r2), err
	}
}

// FromRE_1_3 converts from func(A) (tuple.T3[R0, R1, R2], error) to
// func(A) (R0, R1, R2, error).
func FromRE_1_3[A, R0, R1, R2 any](f func(A) (tuple.T3[R0, R1, R2], error)) func(A) (R0, R1, R2, error) {
	return func(a A) (R0, R1, R2, error) {
		r, err := f(a)
		return r.A, r.B, r.C, err
	}
}

// ToARE_2_2 converts from func(A0, A1) (R0, R1, error) to
// func(tuple.T2[A0, A1]) (tuple.T2[R0, R1], error).
func ToARE_2_2[A0, A1, R0, R1 any](f func(A0, A1) (R0, R1, error)) func(tuple.T2[A0, A1]) (tuple.T2[R0, R1], error) {
	return func(a tuple.T2[A0, A1]) (tuple.T2[R0, R1], error) {
		r0, r1, err := f(a.Get())
		return tuple.MkT2(r0, r1), err
	}
}

// FromARE_2_2 converts from func(tuple.T2[A0, A1]) (tuple.T2[R0, R1], error)
// to func(A0, A1) (R0, R1, error).
func FromARE_2_2[A0, A1, R0, R1 any](f func(tuple.T2[A0, A1]) (tuple.T2[R0, R1], error)) func(A0, A1) (R0, R1, error) {
	return func(a0 A0, a1 A1) (R0, R1, error) {
		r, err := f(tuple.MkT2(a0, a1))
		return r.A, r.B, err
	}
}

// Context-taking forms.

// ToCRE_1_2 converts from func(context.Context, A) (R0, R1, error) to
// func(context.Context, A) (tuple.T2[R0, R1], error).
func ToCRE_1_2[A, R0, R1 any](f func(context.Context, A) (R0, R1, error)) func(context.Context, A) (tuple.T2[R0, R1], error) {
	return func(ctx context.Context, a A) (tuple.T2[R0, R1], error) {
		r0, r1, err := f(ctx, a)
		return tuple.MkT2(r0, r1), err
	}
}

// FromCRE_1_2 converts from func(context.Context, A) (tuple.T2[R0, R1], error)
// to func(context.Context, A) (R0, R1, error).
func FromCRE_1_2[A, R0, R1 any](f func(context.Context, A) (tuple.T2[R0, R1], error)) func(context.Context, A) (R0, R1, error) {
	return func(ctx context.Context, a A) (R0, R1, error) {
		r, err := f(ctx, a)
		return r.A, r.B, err
	}
}

// ToCRE_1_3 converts from func(context.Context, A) (R0, R1, R2, error) to
// func(context.Context, A) (tuple.T3[R0, R1, R2], error).
func ToCRE_1_3[A, R0, R1, R2 any](f func(context.Context, A) (R0, R1, R2, error)) func(context.Context, A) (tuple.T3[R0, R1, R2], error) {
	return func(ctx context.Context, a A) (tuple.T3[R0, R1, R2], error) {
		r0, r1, r2, err := f(ctx, a)
		return tuple.MkT3(r0, r1, r2), err
	}
}

// FromCRE_1_3 converts from func(context.Context, A) (tuple.T3[R0, R1, R2], error)
// to func(context.Context, A) (R0, R1, R2, error).
func FromCRE_1_3[A, R0, R1, R2 any](f func(context.Context, A) (tuple.T3[R0, R1, R2], error)) func(context.Context, A) (R0, R1, R2, error) {
	return func(ctx context.Context, a A) (R0, R1, R2, error) {
		r, err := f(ctx, a)
		return r.A, r.B, r.C, err
	}
}

// ToCAE_2_1 converts from func(context.Context, A0, A1) (R, error) to
// func(context.Context, tuple.T2[A0, A1]) (R, error).
func ToCAE_2_1[A0, A1, R any](f func(context.Context, A0, A1) (R, error)) func(context.Context, tuple.T2[A0, A1]) (R, error) {
	return func(ctx context.Context, a tuple.T2[A0, A1]) (R, error) {
		return f(ctx, a.A, a.B)
	}
}

// FromCAE_2_1 converts from func(context.Context, tuple.T2[A0, A1]) (R, error)
// to func(context.Context, A0, A1) (R, error).
func FromCAE_2_1[A0, A1, R any](f func(context.Context, tuple.T2[A0, A1]) (R, error)) func(context.Context, A0, A1) (R, error) {
	return func(ctx context.Context, a0 A0, a1 A1) (R, error) {
		return f(ctx, tuple.MkT2(a0, a1))
	}
}

// ToCARE_2_2 converts from func(context.Context, A0, A1) (R0, R1, error) to
// func(context.Context, tuple.T2[A0, A1]) (tuple.T2[R0, R1], error).
func ToCARE_2_2[A0, A1, R0, R1 any](f func(context.Context, A0, A1) (R0, R1, error)) func(context.Context, tuple.T2[A0, A1]) (tuple.T2[R0, R1], error) {
	return func(ctx context.Context, a tuple.T2[A0, A1]) (tuple.T2[R0, R1], error) {
		r0, r1, err := f(ctx, a.A, a.B)
		return tuple.MkT2(r0, r1), err
	}
}

// FromCARE_2_2 converts from func(context.Context, tuple.T2[A0, A1]) (tuple.T2[R0, R1], error)
// to func(context.Context, A0, A1) (R0, R1, error).
func FromCARE_2_2[A0, A1, R0, R1 any](f func(context.Context, tuple.T2[A0, A1]) (tuple.T2[R0, R1], error)) func(context.Context, A0, A1) (R0, R1, error) {
	return func(ctx context.Context, a0 A0, a1 A1) (R0, R1, error) {
		r, err := f(ctx, tuple.MkT2(a0, a1))
		return r.A, r.B, err
	}
}
