package stream

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestStreamRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("ToSlice returns all elements in order", prop.ForAll(
		func(items []int) bool {
			collected := ToSlice(FromSlice(items))
			if len(collected) != len(items) {
				return false
			}
			for i, item := range items {
				if collected[i] != item {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestStreamBasicOperations(t *testing.T) {
	t.Run("Of creates stream from values", func(t *testing.T) {
		s := Of(1, 2, 3)
		got := ToSlice(s)
		if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
			t.Error("unexpected elements")
		}
	})

	t.Run("Empty stream has no head", func(t *testing.T) {
		s := Empty[int]()
		if !s.IsEmpty() {
			t.Error("expected empty")
		}
		if s.Head().IsSome() {
			t.Error("expected no head")
		}
	})

	t.Run("Head returns first element", func(t *testing.T) {
		s := Of(1, 2, 3)
		h := s.Head()
		if !h.IsSome() || h.Unwrap() != 1 {
			t.Error("expected Some(1)")
		}
	})

	t.Run("Tail drops the head", func(t *testing.T) {
		s := Of(1, 2, 3)
		got := ToSlice(s.Tail())
		if len(got) != 2 || got[0] != 2 || got[1] != 3 {
			t.Error("unexpected tail")
		}
	})

	t.Run("Tail of empty stream is empty", func(t *testing.T) {
		if !Empty[int]().Tail().IsEmpty() {
			t.Error("expected empty tail")
		}
	})
}

func TestStreamTransformations(t *testing.T) {
	t.Run("Map transforms elements", func(t *testing.T) {
		s := Map(Of(1, 2, 3), func(x int) int { return x * 10 })
		got := ToSlice(s)
		if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
			t.Error("unexpected elements")
		}
	})

	t.Run("Filter keeps matching elements", func(t *testing.T) {
		s := Filter(Of(1, 2, 3, 4), func(x int) bool { return x%2 == 0 })
		got := ToSlice(s)
		if len(got) != 2 || got[0] != 2 || got[1] != 4 {
			t.Error("unexpected elements")
		}
	})

	t.Run("Take limits the stream", func(t *testing.T) {
		s := Take(Of(1, 2, 3, 4), 2)
		got := ToSlice(s)
		if len(got) != 2 || got[0] != 1 || got[1] != 2 {
			t.Error("unexpected elements")
		}
	})

	t.Run("Drop skips leading elements", func(t *testing.T) {
		s := Drop(Of(1, 2, 3, 4), 2)
		got := ToSlice(s)
		if len(got) != 2 || got[0] != 3 || got[1] != 4 {
			t.Error("unexpected elements")
		}
	})

	t.Run("Fold reduces the stream", func(t *testing.T) {
		sum := Fold(Of(1, 2, 3, 4), 0, func(acc, x int) int { return acc + x })
		if sum != 10 {
			t.Errorf("expected 10, got %d", sum)
		}
	})

	t.Run("FlatMap expands each element", func(t *testing.T) {
		s := FlatMap(Of(1, 2), func(x int) *Stream[int] { return Of(x, x*10) })
		got := ToSlice(s)
		if len(got) != 4 || got[0] != 1 || got[1] != 10 || got[2] != 2 || got[3] != 20 {
			t.Error("unexpected elements")
		}
	})

	t.Run("Concat appends a continuation", func(t *testing.T) {
		s := Concat(Of(1, 2), func() *Stream[int] { return Of(3) })
		got := ToSlice(s)
		if len(got) != 3 || got[2] != 3 {
			t.Error("unexpected elements")
		}
	})
}

func TestStreamLaziness(t *testing.T) {
	t.Run("Iterate with Take stays finite", func(t *testing.T) {
		s := Take(Iterate(1, func(x int) int { return x * 2 }), 4)
		got := ToSlice(s)
		if len(got) != 4 || got[0] != 1 || got[1] != 2 || got[2] != 4 || got[3] != 8 {
			t.Error("unexpected elements")
		}
	})

	t.Run("Generate pulls only what Take demands", func(t *testing.T) {
		calls := 0
		s := Take(Generate(func() int {
			calls++
			return calls
		}), 3)
		got := ToSlice(s)
		if len(got) != 3 {
			t.Fatalf("expected 3 elements, got %d", len(got))
		}
		if calls != 3 {
			t.Errorf("expected 3 generator calls, got %d", calls)
		}
	})

	t.Run("Map is lazy beyond the consumed prefix", func(t *testing.T) {
		calls := 0
		s := Map(Iterate(1, func(x int) int { return x + 1 }), func(x int) int {
			calls++
			return x * 10
		})
		_ = ToSlice(Take(s, 2))
		if calls > 3 {
			t.Errorf("expected at most 3 mapped elements, got %d", calls)
		}
	})
}

func TestStreamMemoization(t *testing.T) {
	t.Run("Tail is computed once", func(t *testing.T) {
		calls := 0
		s := Cons(1, func() *Stream[int] {
			calls++
			return Of(2)
		})
		first := s.Tail()
		second := s.Tail()
		if first != second {
			t.Error("expected the same tail cell")
		}
		if calls != 1 {
			t.Errorf("expected 1 tail computation, got %d", calls)
		}
	})

	t.Run("re-iterating a generated prefix reuses memoized cells", func(t *testing.T) {
		calls := 0
		s := Take(Generate(func() int {
			calls++
			return calls
		}), 3)
		first := ToSlice(s)
		second := ToSlice(s)
		if calls != 3 {
			t.Errorf("expected 3 generator calls after two iterations, got %d", calls)
		}
		if len(first) != len(second) {
			t.Fatal("expected equal lengths")
		}
		for i := range first {
			if first[i] != second[i] {
				t.Error("expected identical elements on re-iteration")
			}
		}
	})
}
