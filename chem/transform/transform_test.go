package transform_test

import (
	"slices"
	"testing"

	"github.com/reid23/chemical/chem/combine"
	"github.com/reid23/chemical/chem/core"
	"github.com/reid23/chemical/chem/transform"
)

func collect[T any](t *testing.T, it *core.Iter[T]) []T {
	t.Helper()
	got, err := core.Slice(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func TestEnumerate(t *testing.T) {
	got := collect(t, transform.Enumerate(core.FromString("abc")))
	want := []core.Tuple[int, rune]{core.T2(0, 'a'), core.T2(1, 'b'), core.T2(2, 'c')}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	rev, err := transform.Enumerate(core.FromString("abc")).Rev()
	if err != nil {
		t.Fatal(err)
	}
	got = collect(t, rev)
	want = []core.Tuple[int, rune]{core.T2(0, 'c'), core.T2(1, 'b'), core.T2(2, 'a')}
	if !slices.Equal(got, want) {
		t.Errorf("reversed = %v, want %v", got, want)
	}
}

func TestInspect(t *testing.T) {
	var seen []int
	it := transform.Inspect(core.Range(0, 4), func(v int) { seen = append(seen, v) })
	if b := it.Bounds(); !b.IsExact() || b.Lower() != 4 {
		t.Errorf("bounds = %v", b)
	}
	got := collect(t, it)
	if !slices.Equal(got, []int{0, 1, 2, 3}) || !slices.Equal(seen, got) {
		t.Errorf("got %v, seen %v", got, seen)
	}

	seen = nil
	rev, _ := transform.Inspect(core.Range(0, 3), func(v int) { seen = append(seen, v) }).Rev()
	collect(t, rev)
	if !slices.Equal(seen, []int{2, 1, 0}) {
		t.Errorf("reverse seen %v", seen)
	}
}

func TestForEachIsLazy(t *testing.T) {
	var calls []int
	it := transform.ForEach(core.Range(0, 4), func(v int) bool {
		calls = append(calls, v)
		return v%2 == 0
	})
	if len(calls) != 0 {
		t.Fatalf("closure ran before any pull: %v", calls)
	}
	if b := it.Bounds(); !b.IsExact() || b.Lower() != 4 {
		t.Errorf("bounds = %v", b)
	}
	if got := collect(t, it); !slices.Equal(got, []bool{true, false, true, false}) {
		t.Errorf("got %v", got)
	}
	if !slices.Equal(calls, []int{0, 1, 2, 3}) {
		t.Errorf("calls = %v", calls)
	}

	calls = nil
	rev, err := transform.ForEach(core.FromString("asdf"), func(r rune) string {
		calls = append(calls, int(r))
		return string(r)
	}).Rev()
	if err != nil {
		t.Fatal(err)
	}
	if got := collect(t, rev); !slices.Equal(got, []string{"f", "d", "s", "a"}) {
		t.Errorf("reversed = %v", got)
	}
	if len(calls) != 4 {
		t.Errorf("reverse calls = %v", calls)
	}
}

func TestScan(t *testing.T) {
	add := func(acc, v int) int { return acc + v }
	tests := []struct {
		name string
		in   []int
		seed int
		want []int
	}{
		{"running sum", []int{1, 2, 3}, 0, []int{1, 3, 6}},
		{"seed not emitted", []int{1}, 10, []int{11}},
		{"empty", nil, 5, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, transform.Scan(core.FromSlice(tt.in), tt.seed, add))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	rev, _ := transform.Scan(core.Of(1, 2, 3), 0, add).Rev()
	if got := collect(t, rev); !slices.Equal(got, []int{3, 5, 6}) {
		t.Errorf("reverse scan = %v", got)
	}
}

func TestStarMap(t *testing.T) {
	zipped := combine.Zip(core.Of(1, 2, 3), core.Of(4, 5, 6))
	got := collect(t, transform.StarMap(zipped, func(a, b int) int { return a * b }))
	if !slices.Equal(got, []int{4, 10, 18}) {
		t.Errorf("got %v", got)
	}
}

func TestFlatMap(t *testing.T) {
	dup := func(v int) []int { return slices.Repeat([]int{v}, v) }
	got := collect(t, transform.FlatMap(core.Range(0, 4), dup))
	if want := []int{1, 2, 2, 3, 3, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	rev, err := transform.FlatMap(core.Of("ab", "cd"), func(s string) []rune { return []rune(s) }).Rev()
	if err != nil {
		t.Fatal(err)
	}
	if got := string(collect(t, rev)); got != "dcba" {
		t.Errorf("reverse = %q", got)
	}

	if _, known := transform.FlatMap(core.Range(0, 4), dup).Bounds().Upper(); known {
		t.Error("flat map must drop the upper bound")
	}
}
