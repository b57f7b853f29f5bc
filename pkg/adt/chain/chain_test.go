package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/future"
	"github.com/ib-77/adt/pkg/adt/opt"
)

func TestStart_Option(t *testing.T) {
	t.Parallel()

	c := Start(adt.Some(10))
	if out := c.Option(); out != adt.Some(10) {
		t.Fatalf("expected Some(10), got %v", out)
	}
}

func TestFromValue_Empty(t *testing.T) {
	t.Parallel()

	if out := FromValue(7).Option(); out != adt.Some(7) {
		t.Fatalf("expected Some(7), got %v", out)
	}
	if Empty[int]().IsSome() {
		t.Fatalf("expected empty chain")
	}
}

func TestThen_ShortCircuitOnNone(t *testing.T) {
	t.Parallel()

	called := false
	c := Then(Empty[int](), func(v int) adt.Option[string] {
		called = true
		return adt.Some("ok")
	})
	if c.IsSome() {
		t.Fatalf("expected None, got %v", c.Option())
	}
	if called {
		t.Fatalf("Then f must not be called on empty chain")
	}
}

func TestThen_MapTo_Success(t *testing.T) {
	t.Parallel()

	c := Then(FromValue("12"), func(s string) adt.Option[int] {
		n, err := strconv.Atoi(s)
		return opt.FromUndefined(n, err == nil)
	})
	if out := c.Option(); out != adt.Some(12) {
		t.Fatalf("expected Some(12), got %v", out)
	}

	s := MapTo(c, func(n int) string { return "n:" + strconv.Itoa(n) })
	if out := s.Option(); out != adt.Some("n:12") {
		t.Fatalf("expected Some(n:12), got %v", out)
	}
}

func TestFilter_Map(t *testing.T) {
	t.Parallel()

	out := FromValue(4).
		Filter(func(n int) bool { return n > 2 }).
		Map(func(n int) int { return n * 10 }).
		Option()
	if out != adt.Some(40) {
		t.Fatalf("expected Some(40), got %v", out)
	}

	out = FromValue(1).
		Filter(func(n int) bool { return n > 2 }).
		Map(func(n int) int { return n * 10 }).
		Option()
	if out.IsSome() {
		t.Fatalf("expected None, got %v", out)
	}
}

func TestEnsure_SideEffectCalledOnSome(t *testing.T) {
	t.Parallel()

	called := false
	c := FromValue(11).Ensure(func(v int) { called = true })
	if out := c.Option(); out != adt.Some(11) {
		t.Fatalf("expected Some(11), got %v", out)
	}
	if !called {
		t.Fatalf("expected Ensure to invoke f for Some")
	}

	called = false
	Empty[int]().Ensure(func(v int) { called = true })
	if called {
		t.Fatalf("Ensure f must not be called for empty chain")
	}
}

func TestOr(t *testing.T) {
	t.Parallel()

	if out := FromValue(1).Or(FromValue(2)).Option(); out != adt.Some(1) {
		t.Fatalf("expected first Some, got %v", out)
	}
	if out := Empty[int]().Or(Empty[int](), FromValue(3), FromValue(4)).Option(); out != adt.Some(3) {
		t.Fatalf("expected Some(3), got %v", out)
	}
	if Empty[int]().Or(Empty[int]()).IsSome() {
		t.Fatalf("expected None when every candidate is empty")
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()

	if out := FromValue(1).And(FromValue(2)).Option(); out != adt.Some(2) {
		t.Fatalf("expected Some(2), got %v", out)
	}
	if Empty[int]().And(FromValue(2)).IsSome() {
		t.Fatalf("expected None when the first chain is empty")
	}
	if FromValue(1).And(Empty[int]()).IsSome() {
		t.Fatalf("expected None when the required chain is empty")
	}
}

func TestTerminals(t *testing.T) {
	t.Parallel()

	if v := Empty[int]().OrElse(5).GetOrElse(0); v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}
	if v := FromValue(1).GetOrElse(0); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if p := Empty[int]().ToNullable(); p != nil {
		t.Fatalf("expected nil, got %v", *p)
	}
	if l := FromValue(1).ToList(); len(l) != 1 || l[0] != 1 {
		t.Fatalf("expected [1], got %v", l)
	}
	if r := ToResult(Empty[int](), "missing"); r != adt.Err[int]("missing") {
		t.Fatalf("expected Err(missing), got %v", r)
	}
	if v := Convert(Empty[int](), opt.OrValue(9)); v != 9 {
		t.Fatalf("expected 9, got %d", v)
	}

	_, err := ToFuture(Empty[int]()).Await(context.Background())
	if !errors.Is(err, future.ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestFinally_SomeNone(t *testing.T) {
	t.Parallel()

	onSome := func(v int) string { return "ok" }
	onNone := func() string { return "none" }

	if s := Finally(FromValue(2), onSome, onNone); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if s := Finally(Empty[int](), onSome, onNone); s != "none" {
		t.Fatalf("expected 'none', got %q", s)
	}
}
