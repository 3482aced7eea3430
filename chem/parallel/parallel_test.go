package parallel_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/reid23/chemical/chem/core"
	"github.com/reid23/chemical/chem/parallel"
)

func withWorkers(n int) context.Context {
	return core.WithConfig(context.Background(), &parallel.Config{Workers: n})
}

func TestParIterPreservesOrder(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 32} {
		for run := range 20 {
			got, err := core.Slice(parallel.ParIter(withWorkers(n), core.Range(0, 100)))
			if err != nil {
				t.Fatalf("workers=%d run=%d: %v", n, run, err)
			}
			want := make([]int, 100)
			for i := range want {
				want[i] = i
			}
			if !slices.Equal(got, want) {
				t.Fatalf("workers=%d run=%d: got %v", n, run, got)
			}
		}
	}
}

func TestParMapPreservesOrderUnderJitter(t *testing.T) {
	for _, n := range []int{2, 4, 16} {
		t.Run(fmt.Sprintf("workers=%d", n), func(t *testing.T) {
			it := parallel.ParMap(withWorkers(n), core.Range(0, 50), func(v int) int {
				time.Sleep(time.Duration(rand.IntN(200)) * time.Microsecond)
				return v * v
			})
			got, err := core.Slice(it)
			if err != nil {
				t.Fatal(err)
			}
			for i, v := range got {
				if v != i*i {
					t.Fatalf("got[%d] = %d, want %d", i, v, i*i)
				}
			}
			if len(got) != 50 {
				t.Fatalf("got %d elements", len(got))
			}
		})
	}
}

func TestParMapRunsConcurrently(t *testing.T) {
	var inFlight, peak atomic.Int32
	it := parallel.ParMap(withWorkers(4), core.Range(0, 16), func(v int) int {
		cur := inFlight.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return v
	})
	if _, err := core.Count(it); err != nil {
		t.Fatal(err)
	}
	if p := peak.Load(); p < 2 || p > 4 {
		t.Errorf("peak concurrency = %d, want between 2 and 4", p)
	}
}

func TestParIterReverseAndBounds(t *testing.T) {
	it := parallel.ParIter(withWorkers(3), core.Range(0, 10))
	if b := it.Bounds(); !b.IsExact() || b.Lower() != 10 {
		t.Errorf("bounds = %v", b)
	}
	rev, err := it.Rev()
	if err != nil {
		t.Fatal(err)
	}
	got, _ := core.Slice(rev)
	if !slices.Equal(got, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}) {
		t.Errorf("reverse = %v", got)
	}
}

func TestParIterEmptyAndExhausted(t *testing.T) {
	it := parallel.ParIter(withWorkers(4), core.Empty[int]())
	if _, err := it.Next(); !errors.Is(err, core.ErrExhausted) {
		t.Errorf("err = %v", err)
	}
	if _, err := it.Next(); !errors.Is(err, core.ErrExhausted) {
		t.Errorf("second pull err = %v", err)
	}
}

func TestParIterSourceErrorIsOrdered(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	src := core.FromFunc(func() (int, error) {
		if n == 5 {
			return 0, boom
		}
		n++
		return n - 1, nil
	})
	it := parallel.ParIter(withWorkers(4), src)
	var got []int
	for {
		v, err := it.Next()
		if err != nil {
			if !errors.Is(err, boom) {
				t.Fatalf("err = %v, want boom", err)
			}
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("got %v before the error", got)
	}
	if _, err := it.Next(); !errors.Is(err, core.ErrExhausted) {
		t.Errorf("pull after error = %v", err)
	}
}

func TestParMapRecoversPanics(t *testing.T) {
	it := parallel.ParMap(withWorkers(2), core.Range(0, 4), func(v int) int {
		if v == 2 {
			panic("bad element")
		}
		return v
	})
	var panics int
	var values []int
	for {
		v, err := it.Next()
		if errors.Is(err, core.ErrExhausted) {
			break
		}
		var pe core.ErrPanic
		if errors.As(err, &pe) {
			panics++
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		values = append(values, v)
	}
	if panics != 1 || !slices.Equal(values, []int{0, 1, 3}) {
		t.Errorf("panics = %d, values = %v", panics, values)
	}
}

func TestParIterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(withWorkers(2))
	it := parallel.ParIter(ctx, core.Counter(0, 1))
	if v, err := it.Next(); err != nil || v != 0 {
		t.Fatalf("first = %d, %v", v, err)
	}
	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("pool did not stop after cancel")
		default:
		}
		if _, err := it.Next(); err != nil {
			if !errors.Is(err, context.Canceled) {
				t.Errorf("err = %v, want context.Canceled", err)
			}
			return
		}
	}
}
