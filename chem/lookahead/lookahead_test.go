package lookahead_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/reid23/chemical/chem/core"
	"github.com/reid23/chemical/chem/lookahead"
)

func TestPeekIsIdempotent(t *testing.T) {
	xs := []int{10, 20, 30, 40}
	p := lookahead.NewPeekable(core.FromSlice(xs))

	for range 3 {
		if v, err := p.Peek(); err != nil || v != xs[0] {
			t.Fatalf("peek = %d, %v", v, err)
		}
	}
	if v, _ := p.Next(); v != xs[0] {
		t.Errorf("next = %d, want %d", v, xs[0])
	}
	if v, _ := p.Next(); v != xs[1] {
		t.Errorf("next = %d, want %d", v, xs[1])
	}
	for range 2 {
		if v, _ := p.Peek(); v != xs[2] {
			t.Errorf("peek = %d, want %d", v, xs[2])
		}
	}
}

func TestPeekReversed(t *testing.T) {
	rev, err := core.FromString("cba").Rev()
	if err != nil {
		t.Fatal(err)
	}
	p := lookahead.NewPeekable(rev)
	for _, want := range "abc" {
		if v, _ := p.Peek(); v != want {
			t.Errorf("peek = %c, want %c", v, want)
		}
		if v, _ := p.Next(); v != want {
			t.Errorf("next = %c, want %c", v, want)
		}
	}
	if p.HasNext() {
		t.Error("HasNext after the last element")
	}
}

func TestExhaustionDetectedOneStepAhead(t *testing.T) {
	p := lookahead.NewPeekable(core.Of(1, 2))
	p.Next()
	if !p.HasNext() {
		t.Fatal("HasNext = false with one element left")
	}
	if v, err := p.Next(); err != nil || v != 2 {
		t.Fatalf("next = %d, %v", v, err)
	}
	// The source is now known to be empty without another Next.
	if _, err := p.Peek(); !errors.Is(err, core.ErrNothingToPeek) {
		t.Errorf("peek err = %v, want ErrNothingToPeek", err)
	}
	if !lookahead.IsNothingToPeek(errors.Join(errors.New("ctx"), core.ErrNothingToPeek)) {
		t.Error("IsNothingToPeek must see wrapped errors")
	}
	if _, err := p.Next(); !errors.Is(err, core.ErrExhausted) {
		t.Errorf("next err = %v, want ErrExhausted", err)
	}
}

func TestPeekEmpty(t *testing.T) {
	p := lookahead.NewPeekable(core.Empty[int]())
	if p.HasNext() {
		t.Error("HasNext on empty source")
	}
	if _, err := p.Peek(); !errors.Is(err, core.ErrNothingToPeek) {
		t.Errorf("err = %v", err)
	}
}

func TestPeekHoldsGenuineError(t *testing.T) {
	boom := errors.New("boom")
	in := core.TryMap(core.Range(0, 3), func(v int) (int, error) {
		if v == 1 {
			return 0, boom
		}
		return v, nil
	})
	p := lookahead.NewPeekable(in)
	if v, err := p.Next(); err != nil || v != 0 {
		t.Fatalf("next = %d, %v", v, err)
	}
	if _, err := p.Peek(); !errors.Is(err, boom) {
		t.Errorf("peek err = %v, want boom", err)
	}
	if _, err := p.Next(); !errors.Is(err, boom) {
		t.Errorf("next err = %v, want boom", err)
	}
}

func TestPeekableIter(t *testing.T) {
	p := lookahead.NewPeekable(core.Range(0, 5))
	p.Peek()
	it := p.Iter()
	if b := it.Bounds(); !b.IsExact() || b.Lower() != 5 {
		t.Errorf("bounds = %v, want exactly 5", b)
	}
	got, err := core.Slice(it)
	if err != nil || !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestCurrent(t *testing.T) {
	c := lookahead.NewCurrent(core.FromString("asdf"))
	check := func(name string, fn func() (rune, error), want rune) {
		t.Helper()
		if v, err := fn(); err != nil || v != want {
			t.Errorf("%s = %c, %v; want %c", name, v, err, want)
		}
	}
	check("curr", c.Curr, 'a')
	check("peek", c.Peek, 'a')
	check("next", c.Next, 'a')
	check("curr", c.Curr, 'a')
	check("peek", c.Peek, 's')
	check("next", c.Next, 's')
	check("curr", c.Curr, 's')
	check("curr", c.Curr, 's')
	check("peek", c.Peek, 'd')
}

func TestCurrentIterKeepsTracking(t *testing.T) {
	c := lookahead.NewCurrent(core.Of(1, 2, 3))
	n, err := core.Count(c.Iter())
	if err != nil || n != 3 {
		t.Fatalf("count = %d, %v", n, err)
	}
	if v, _ := c.Curr(); v != 3 {
		t.Errorf("curr = %d, want 3", v)
	}
}
