package tuplefunc_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/arneos/immutable/tuple"
	"github.com/arneos/immutable/tuplefunc"
)

func calculate(a, b int) (int, int) {
	return a + b, a - b
}

func TestToAR_2_2(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAR_2_2(calculate)
	c.Assert(f(tuple.MkT2(5, 3)), qt.Equals, tuple.MkT2(8, 2))
}

func TestFromAR_2_2RoundTrip(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.FromAR_2_2(tuplefunc.ToAR_2_2(calculate))
	sum, diff := f(5, 3)
	c.Assert(sum, qt.Equals, 8)
	c.Assert(diff, qt.Equals, 2)
}

func TestToA_2_1(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToA_2_1(func(a int, b string) string {
		return fmt.Sprintf("%s/%d", b, a)
	})
	c.Assert(f(tuple.MkT2(1, "x")), qt.Equals, "x/1")
}

func TestToA_2_0(t *testing.T) {
	c := qt.New(t)
	called := false
	f := tuplefunc.ToA_2_0(func(a, b int) {
		called = true
		c.Check(a, qt.Equals, 1)
		c.Check(b, qt.Equals, 2)
	})
	f(tuple.MkT2(1, 2))
	c.Assert(called, qt.IsTrue)

	called = false
	g := tuplefunc.FromA_2_0(func(a tuple.T2[int, int]) {
		called = true
	})
	g(1, 2)
	c.Assert(called, qt.IsTrue)
}

func TestToR_1_2(t *testing.T) {
	c := qt.New(t)
	divmod := func(a int) (int, int) {
		return a / 10, a % 10
	}
	f := tuplefunc.ToR_1_2(divmod)
	c.Assert(f(42), qt.Equals, tuple.MkT2(4, 2))

	q, r := tuplefunc.FromR_1_2(f)(42)
	c.Assert(q, qt.Equals, 4)
	c.Assert(r, qt.Equals, 2)
}

func TestToR_0_3(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToR_0_3(func() (int, string, bool) {
		return 1, "two", true
	})
	c.Assert(f(), qt.Equals, tuple.MkT3(1, "two", true))
}

func TestToAR_2_4(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAR_2_4(func(a, b int) (int, int, int, int) {
		return a + b, a - b, a * b, a
	})
	c.Assert(f(tuple.MkT2(5, 3)), qt.Equals, tuple.MkT4(8, 2, 15, 5))
}

func TestToAE_2_1(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAE_2_1(func(s string, base int) (int64, error) {
		return strconv.ParseInt(s, base, 64)
	})

	n, err := f(tuple.MkT2("ff", 16))
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(255))

	_, err = f(tuple.MkT2("bogus", 10))
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestToRE_1_2Error(t *testing.T) {
	c := qt.New(t)
	errFail := errors.New("fail")
	f := tuplefunc.ToRE_1_2(func(ok bool) (int, string, error) {
		if !ok {
			return 0, "", errFail
		}
		return 1, "yes", nil
	})

	r, err := f(true)
	c.Assert(err, qt.IsNil)
	c.Assert(r, qt.Equals, tuple.MkT2(1, "yes"))

	_, err = f(false)
	c.Assert(err, qt.Equals, errFail)
}

func TestToCRE_1_3(t *testing.T) {
	c := qt.New(t)
	type ctxKey struct{}
	f := tuplefunc.ToCRE_1_3(func(ctx context.Context, a int) (int, int, int, error) {
		base := ctx.Value(ctxKey{}).(int)
		return a + base, a - base, a * base, nil
	})

	ctx := context.WithValue(context.Background(), ctxKey{}, 10)
	r, err := f(ctx, 32)
	c.Assert(err, qt.IsNil)
	c.Assert(r, qt.Equals, tuple.MkT3(42, 22, 320))

	g := tuplefunc.FromCRE_1_3(f)
	sum, diff, prod, err := g(ctx, 32)
	c.Assert(err, qt.IsNil)
	c.Assert(sum, qt.Equals, 42)
	c.Assert(diff, qt.Equals, 22)
	c.Assert(prod, qt.Equals, 320)
}

func TestToCARE_2_2(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToCARE_2_2(func(ctx context.Context, a, b int) (int, int, error) {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		return a + b, a - b, nil
	})

	r, err := f(context.Background(), tuple.MkT2(5, 3))
	c.Assert(err, qt.IsNil)
	c.Assert(r, qt.Equals, tuple.MkT2(8, 2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f(ctx, tuple.MkT2(5, 3))
	c.Assert(err, qt.Equals, context.Canceled)
}
