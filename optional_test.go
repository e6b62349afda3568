package optics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/authcorp/optics/either"
	"github.com/authcorp/optics/option"
	"github.com/authcorp/optics/pair"
	"github.com/authcorp/optics/result"
)

func TestIndexOptional(t *testing.T) {
	t.Run("reads an element in range", func(t *testing.T) {
		got := Index[int](1).GetOption([]int{10, 20, 30})
		if !got.IsSome() || got.Unwrap() != 20 {
			t.Error("expected Some(20)")
		}
	})

	t.Run("misses out of range", func(t *testing.T) {
		if Index[int](3).GetOption([]int{10, 20, 30}).IsSome() {
			t.Error("expected None")
		}
		if Index[int](-1).GetOption([]int{10, 20, 30}).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("replaces an element in range", func(t *testing.T) {
		got := Index[int](1).Set([]int{10, 20, 30}, 99)
		want := []int{10, 99, 30}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected slice (-want +got):\n%s", diff)
		}
	})

	t.Run("out of range set passes the slice through", func(t *testing.T) {
		s := []int{10, 20, 30}
		got := Index[int](5).Set(s, 99)
		if diff := cmp.Diff(s, got); diff != "" {
			t.Errorf("unexpected slice (-want +got):\n%s", diff)
		}
	})

	t.Run("set never mutates the original slice", func(t *testing.T) {
		s := []int{10, 20, 30}
		_ = Index[int](1).Set(s, 99)
		if s[1] != 20 {
			t.Error("expected the original slice untouched")
		}
	})

	t.Run("laws hold for arbitrary slices and indexes", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			s := rapid.SliceOfN(rapid.Int(), 0, 8).Draw(t, "s")
			i := rapid.IntRange(-1, 8).Draw(t, "i")
			v := rapid.Int().Draw(t, "v")
			o := Index[int](i)

			got := o.GetOption(s)
			inRange := i >= 0 && i < len(s)
			if got.IsSome() != inRange {
				t.Fatalf("presence mismatch for len %d index %d", len(s), i)
			}
			if inRange {
				updated := o.Set(s, v)
				after := o.GetOption(updated)
				if !after.IsSome() || after.Unwrap() != v {
					t.Fatal("expected the new value back")
				}
				restored := o.Set(updated, got.Unwrap())
				if diff := cmp.Diff(s, restored); diff != "" {
					t.Fatalf("expected the original slice back:\n%s", diff)
				}
			}
		})
	})
}

func TestIgnored(t *testing.T) {
	o := Ignored[Address, int]()
	a := Address{Number: 10, Street: "Main St"}

	if o.IsMatching(a) {
		t.Error("expected no match")
	}
	if o.Modify(a, func(x int) int { return x + 1 }) != a {
		t.Error("expected pass-through")
	}
	if o.Set(a, 99) != a {
		t.Error("expected pass-through")
	}
	if o.ModifyOption(a, func(x int) int { return x }).IsSome() {
		t.Error("expected None")
	}
}

func TestOptionalModify(t *testing.T) {
	first := Index[int](0)

	t.Run("Modify rewrites a present target", func(t *testing.T) {
		got := first.Modify([]int{1, 2}, func(x int) int { return x * 10 })
		if got[0] != 10 || got[1] != 2 {
			t.Error("unexpected slice")
		}
	})

	t.Run("Modify passes an absent target through", func(t *testing.T) {
		var empty []int
		got := first.Modify(empty, func(x int) int { return x * 10 })
		if len(got) != 0 {
			t.Error("expected the empty slice")
		}
	})

	t.Run("ModifyOption and SetOption report the outcome", func(t *testing.T) {
		hit := first.ModifyOption([]int{1}, func(x int) int { return x + 1 })
		if !hit.IsSome() || hit.Unwrap()[0] != 2 {
			t.Error("expected Some([2])")
		}
		if first.SetOption(nil, 9).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("GetOrModify exposes the miss as the whole", func(t *testing.T) {
		e := first.GetOrModify([]int{5})
		if !e.IsRight() || e.RightValue() != 5 {
			t.Error("expected Right(5)")
		}
		miss := first.GetOrModify(nil)
		if !miss.IsLeft() || len(miss.LeftValue()) != 0 {
			t.Error("expected Left(nil slice)")
		}
	})
}

func TestOptionalEffectsLiftMisses(t *testing.T) {
	first := Index[int](0)
	boom := errors.New("boom")

	t.Run("a miss is a success in the result context", func(t *testing.T) {
		got := first.ModifyResultF(nil, func(int) result.Result[int] { return result.Err[int](boom) })
		if !got.IsOk() || len(got.Unwrap()) != 0 {
			t.Error("expected Ok(empty)")
		}
	})

	t.Run("a hit propagates the failure", func(t *testing.T) {
		got := first.ModifyResultF([]int{1}, func(int) result.Result[int] { return result.Err[int](boom) })
		if !got.IsErr() || !errors.Is(got.UnwrapErr(), boom) {
			t.Error("expected Err(boom)")
		}
	})

	t.Run("a miss is a single whole in the sequence context", func(t *testing.T) {
		got := first.ModifySliceF(nil, func(x int) []int { return []int{x, x} })
		if len(got) != 1 || len(got[0]) != 0 {
			t.Error("expected the unchanged whole")
		}
	})

	t.Run("a hit expands in the sequence context", func(t *testing.T) {
		got := first.ModifySliceF([]int{1, 2}, func(x int) []int { return []int{x * 10, x * 100} })
		if len(got) != 2 || got[0][0] != 10 || got[1][0] != 100 {
			t.Error("expected both alternatives")
		}
	})
}

func TestComposeOptionalShortCircuits(t *testing.T) {
	innerCalls := 0
	inner := NewOptional(
		func(s []int) option.Option[int] {
			innerCalls++
			if len(s) == 0 {
				return option.None[int]()
			}
			return option.Some(s[0])
		},
		func(s []int, v int) []int {
			if len(s) == 0 {
				return s
			}
			out := make([]int, len(s))
			copy(out, s)
			out[0] = v
			return out
		},
	)
	composed := ComposeOptional(Index[[]int](0), inner)

	t.Run("outer miss never consults the inner optional", func(t *testing.T) {
		innerCalls = 0
		got := composed.GetOption(nil)
		if got.IsSome() {
			t.Error("expected None")
		}
		if innerCalls != 0 {
			t.Errorf("expected 0 inner calls, got %d", innerCalls)
		}
	})

	t.Run("outer hit consults the inner optional once", func(t *testing.T) {
		innerCalls = 0
		got := composed.GetOption([][]int{{5}, {6}})
		if !got.IsSome() || got.Unwrap() != 5 {
			t.Error("expected Some(5)")
		}
		if innerCalls != 1 {
			t.Errorf("expected 1 inner call, got %d", innerCalls)
		}
	})

	t.Run("modify reaches through both layers", func(t *testing.T) {
		got := composed.Modify([][]int{{5}, {6}}, func(x int) int { return x + 1 })
		if got[0][0] != 6 || got[1][0] != 6 {
			t.Error("expected only the first inner element changed")
		}
	})
}

func TestOptionalFirstSecond(t *testing.T) {
	base := Index[int](0)

	t.Run("OptionalFirst reads alongside a companion", func(t *testing.T) {
		o := OptionalFirst[[]int, []int, int, int, string](base)
		got := o.GetOption(pair.New([]int{5}, "tag"))
		if !got.IsSome() || got.Unwrap() != pair.New(5, "tag") {
			t.Error("expected Some((5, tag))")
		}
	})

	t.Run("OptionalFirst takes the companion from the replacement", func(t *testing.T) {
		o := OptionalFirst[[]int, []int, int, int, string](base)
		got := o.Set(pair.New([]int{5}, "old"), pair.New(9, "new"))
		if got.First[0] != 9 || got.Second != "new" {
			t.Error("expected ([9], new)")
		}
	})

	t.Run("OptionalFirst passes a miss through with the original companion", func(t *testing.T) {
		o := OptionalFirst[[]int, []int, int, int, string](base)
		got := o.Modify(pair.New([]int{}, "tag"), func(p pair.Pair[int, string]) pair.Pair[int, string] {
			return pair.New(p.First+1, "changed")
		})
		if len(got.First) != 0 || got.Second != "tag" {
			t.Error("expected pass-through")
		}
	})

	t.Run("OptionalSecond mirrors OptionalFirst", func(t *testing.T) {
		o := OptionalSecond[[]int, []int, int, int, string](base)
		got := o.GetOption(pair.New("tag", []int{5}))
		if !got.IsSome() || got.Unwrap() != pair.New("tag", 5) {
			t.Error("expected Some((tag, 5))")
		}
		set := o.Set(pair.New("old", []int{5}), pair.New("new", 9))
		if set.First != "new" || set.Second[0] != 9 {
			t.Error("expected (new, [9])")
		}
	})
}

func TestSumOptional(t *testing.T) {
	o := SumOptional(Index[int](0), Index[int](1))

	t.Run("dispatches to the matching side", func(t *testing.T) {
		left := either.Left[[]int, []int]([]int{1, 2})
		right := either.Right[[]int, []int]([]int{1, 2})
		gotLeft := o.GetOption(left)
		gotRight := o.GetOption(right)
		if !gotLeft.IsSome() || gotLeft.Unwrap() != 1 {
			t.Error("expected Some(1) from the left side")
		}
		if !gotRight.IsSome() || gotRight.Unwrap() != 2 {
			t.Error("expected Some(2) from the right side")
		}
	})

	t.Run("set keeps the side", func(t *testing.T) {
		got := o.Set(either.Left[[]int, []int]([]int{1, 2}), 9)
		if !got.IsLeft() || got.LeftValue()[0] != 9 {
			t.Error("expected the left side updated")
		}
	})

	t.Run("a per-side miss passes through", func(t *testing.T) {
		got := o.GetOption(either.Right[[]int, []int]([]int{1}))
		if got.IsSome() {
			t.Error("expected None")
		}
	})
}

func TestIdOptional(t *testing.T) {
	o := IdOptional[int]()
	if got := o.GetOption(5); !got.IsSome() || got.Unwrap() != 5 {
		t.Error("expected Some(5)")
	}
	if o.Set(5, 9) != 9 {
		t.Error("expected 9")
	}
}
