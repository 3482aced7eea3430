package combine_test

import (
	"reflect"
	"testing"

	"github.com/reid23/chemical/chem/combine"
	"github.com/reid23/chemical/chem/core"
	"github.com/reid23/chemical/chem/filter"
)

func nested() []any {
	return []any{
		[]any{
			[]any{
				[]any{[]any{1}},
				[]any{2},
			},
			[]any{3},
		},
		[]any{4},
	}
}

func TestFlattenUnbounded(t *testing.T) {
	got := collect(t, combine.Flatten(core.FromSlice(nested()), true, combine.Unbounded))
	if want := []any{1, 2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlattenDepth(t *testing.T) {
	got := collect(t, combine.Flatten(core.FromSlice(nested()), true, 1))
	want := []any{
		[]any{[]any{[]any{1}}, []any{2}},
		[]any{3},
		4,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = collect(t, combine.Flatten(core.Of[any](1, []any{2}), true, 0))
	if want := []any{1, []any{2}}; !reflect.DeepEqual(got, want) {
		t.Errorf("depth 0 = %v, want %v", got, want)
	}
}

func TestFlattenStrings(t *testing.T) {
	in := func() *core.Iter[any] { return core.Of[any]("ab", []string{"cd"}, []byte("e")) }

	got := collect(t, combine.Flatten(in(), true, combine.Unbounded))
	if want := []any{"ab", "cd", []byte("e")}; !reflect.DeepEqual(got, want) {
		t.Errorf("preserved = %v, want %v", got, want)
	}

	got = collect(t, combine.Flatten(in(), false, combine.Unbounded))
	if want := []any{"a", "b", "c", "d", byte('e')}; !reflect.DeepEqual(got, want) {
		t.Errorf("split = %v, want %v", got, want)
	}
}

func TestFlattenMixedContainers(t *testing.T) {
	seq := func(yield func(any) bool) {
		for _, v := range []any{5, 6} {
			if !yield(v) {
				return
			}
		}
	}
	in := core.Of[any]([2]int{1, 2}, core.Of[any](3, 4), seq, map[string]int{"x": 1})
	got := collect(t, combine.Flatten(in, true, combine.Unbounded))
	if len(got) != 7 {
		t.Fatalf("got %v", got)
	}
	for i, want := range []any{1, 2, 3, 4, 5, 6} {
		if got[i] != want {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestFlattenReverse(t *testing.T) {
	it := combine.Flatten(core.FromSlice(nested()), true, combine.Unbounded)
	got := collect(t, mustRev(t, it))
	if want := []any{4, 3, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlattenSkipReverseSharesIdentity(t *testing.T) {
	// Nested elements must carry the same identity in both directions for
	// Skip to know where its reverse side ends.
	it := combine.Flatten(core.Of[any]([]any{1, 1}, []any{1, 1}), true, combine.Unbounded)
	skipped, err := filter.Skip(it, 1)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if got := collect(t, mustRev(t, skipped)); len(got) != 3 {
		t.Errorf("reverse after skip = %v, want 3 elements", got)
	}
}
