package optics

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/authcorp/optics/identity"
	"github.com/authcorp/optics/monoid"
	"github.com/authcorp/optics/option"
	"github.com/authcorp/optics/pair"
	"github.com/authcorp/optics/result"
	"github.com/authcorp/optics/stream"
	"github.com/authcorp/optics/validated"
)

func TestAddressPairIso(t *testing.T) {
	iso := addressIso()

	t.Run("Get splits the address", func(t *testing.T) {
		got := iso.Get(Address{Number: 10, Street: "Main St"})
		want := pair.New(10, "Main St")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected pair (-want +got):\n%s", diff)
		}
	})

	t.Run("ReverseGet rebuilds the address", func(t *testing.T) {
		got := iso.ReverseGet(pair.New(10, "Main St"))
		want := Address{Number: 10, Street: "Main St"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected address (-want +got):\n%s", diff)
		}
	})

	t.Run("Modify runs through the pair view", func(t *testing.T) {
		got := iso.Modify(Address{Number: 10, Street: "Main St"}, func(p pair.Pair[int, string]) pair.Pair[int, string] {
			return pair.New(p.First+1, strings.ToUpper(p.Second))
		})
		want := Address{Number: 11, Street: "MAIN ST"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected address (-want +got):\n%s", diff)
		}
	})
}

func TestIsoLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("ReverseGet inverts Get", prop.ForAll(
		func(number int, street string) bool {
			a := Address{Number: number, Street: street}
			return addressIso().ReverseGet(addressIso().Get(a)) == a
		},
		gen.Int(), gen.AnyString(),
	))

	properties.Property("Get inverts ReverseGet", prop.ForAll(
		func(number int, street string) bool {
			p := pair.New(number, street)
			return addressIso().Get(addressIso().ReverseGet(p)) == p
		},
		gen.Int(), gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestIsoReverse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Reverse swaps the directions", prop.ForAll(
		func(number int, street string) bool {
			rev := addressIso().Reverse()
			p := pair.New(number, street)
			a := Address{Number: number, Street: street}
			return rev.Get(p) == a && rev.ReverseGet(a) == p
		},
		gen.Int(), gen.AnyString(),
	))

	properties.Property("Reverse twice behaves like the original", prop.ForAll(
		func(number int, street string) bool {
			twice := addressIso().Reverse().Reverse()
			a := Address{Number: number, Street: street}
			return twice.Get(a) == addressIso().Get(a) &&
				twice.ReverseGet(pair.New(number, street)) == addressIso().ReverseGet(pair.New(number, street))
		},
		gen.Int(), gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestIsoEffectConsistency(t *testing.T) {
	iso := addressIso()
	a := Address{Number: 10, Street: "Main St"}
	bump := func(p pair.Pair[int, string]) pair.Pair[int, string] {
		return pair.New(p.First+1, p.Second)
	}
	want := iso.Modify(a, bump)

	t.Run("identity context agrees with Modify", func(t *testing.T) {
		got := iso.ModifyIdF(a, func(p pair.Pair[int, string]) identity.Identity[pair.Pair[int, string]] {
			return identity.Of(bump(p))
		})
		if got.Get() != want {
			t.Error("expected agreement with Modify")
		}
	})

	t.Run("result context agrees with Modify", func(t *testing.T) {
		got := iso.ModifyResultF(a, func(p pair.Pair[int, string]) result.Result[pair.Pair[int, string]] {
			return result.Ok(bump(p))
		})
		if !got.IsOk() || got.Unwrap() != want {
			t.Error("expected agreement with Modify")
		}
	})

	t.Run("result context propagates the failure", func(t *testing.T) {
		boom := errors.New("boom")
		got := iso.ModifyResultF(a, func(pair.Pair[int, string]) result.Result[pair.Pair[int, string]] {
			return result.Err[pair.Pair[int, string]](boom)
		})
		if !got.IsErr() || !errors.Is(got.UnwrapErr(), boom) {
			t.Error("expected the failure to surface")
		}
	})

	t.Run("option context agrees with Modify", func(t *testing.T) {
		got := iso.ModifyOptionF(a, func(p pair.Pair[int, string]) option.Option[pair.Pair[int, string]] {
			return option.Some(bump(p))
		})
		if !got.IsSome() || got.Unwrap() != want {
			t.Error("expected agreement with Modify")
		}
	})

	t.Run("sequence context yields one whole per replacement", func(t *testing.T) {
		got := iso.ModifySliceF(a, func(p pair.Pair[int, string]) []pair.Pair[int, string] {
			return []pair.Pair[int, string]{bump(p), p}
		})
		wantSlice := []Address{want, a}
		if diff := cmp.Diff(wantSlice, got); diff != "" {
			t.Errorf("unexpected wholes (-want +got):\n%s", diff)
		}
	})

	t.Run("stream context agrees with the sequence context", func(t *testing.T) {
		got := stream.ToSlice(iso.ModifyStreamF(a, func(p pair.Pair[int, string]) *stream.Stream[pair.Pair[int, string]] {
			return stream.Of(bump(p), p)
		}))
		wantSlice := []Address{want, a}
		if diff := cmp.Diff(wantSlice, got); diff != "" {
			t.Errorf("unexpected wholes (-want +got):\n%s", diff)
		}
	})

	t.Run("validation context agrees with Modify", func(t *testing.T) {
		got := iso.ModifyValidatedF(a, func(p pair.Pair[int, string]) validated.Validated[error, pair.Pair[int, string]] {
			return validated.Valid[error, pair.Pair[int, string]](bump(p))
		})
		if !got.IsValid() || got.Unwrap() != want {
			t.Error("expected agreement with Modify")
		}
	})
}

func TestIsoConversions(t *testing.T) {
	iso := addressIso()
	a := Address{Number: 10, Street: "Main St"}

	t.Run("AsLens keeps both laws", func(t *testing.T) {
		l := iso.AsLens()
		if l.Get(a) != iso.Get(a) {
			t.Error("expected the same projection")
		}
		if l.Set(a, pair.New(11, "Elm")) != (Address{Number: 11, Street: "Elm"}) {
			t.Error("unexpected replacement")
		}
	})

	t.Run("AsPrism always matches", func(t *testing.T) {
		p := iso.AsPrism()
		if !p.IsMatching(a) {
			t.Error("expected a match")
		}
		if p.ReverseGet(pair.New(11, "Elm")) != (Address{Number: 11, Street: "Elm"}) {
			t.Error("unexpected injection")
		}
	})

	t.Run("AsOptional always matches", func(t *testing.T) {
		o := iso.AsOptional()
		if !o.IsMatching(a) {
			t.Error("expected a match")
		}
	})

	t.Run("AsTraversal has exactly one target", func(t *testing.T) {
		tr := iso.AsTraversal()
		all := tr.GetAll(a)
		if len(all) != 1 || all[0] != pair.New(10, "Main St") {
			t.Error("expected the single pair target")
		}
	})

	t.Run("AsGetter and AsFold see the target", func(t *testing.T) {
		if iso.AsGetter().Get(a) != pair.New(10, "Main St") {
			t.Error("unexpected getter value")
		}
		head := iso.AsFold().HeadOption(a)
		if !head.IsSome() || head.Unwrap() != pair.New(10, "Main St") {
			t.Error("unexpected fold head")
		}
	})

	t.Run("AsFold folds the single target", func(t *testing.T) {
		numbers := ComposeFoldLens(iso.AsFold(), FirstLens[int, string]())
		got := FoldMap(numbers, a, monoid.MaxInt(), func(x int) int { return x })
		if got != 10 {
			t.Errorf("expected 10, got %d", got)
		}
	})
}

func TestProductIso(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("ProductIso maps both sides independently", prop.ForAll(
		func(n1, n2 int, s1, s2 string) bool {
			prod := ProductIso(addressIso(), addressIso())
			whole := pair.New(Address{Number: n1, Street: s1}, Address{Number: n2, Street: s2})
			split := prod.Get(whole)
			back := prod.ReverseGet(split)
			return split.First == pair.New(n1, s1) &&
				split.Second == pair.New(n2, s2) &&
				back == whole
		},
		gen.Int(), gen.Int(), gen.AnyString(), gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestIsoFirstSecond(t *testing.T) {
	t.Run("IsoFirst carries the companion", func(t *testing.T) {
		first := IsoFirst[Address, Address, pair.Pair[int, string], pair.Pair[int, string], bool](addressIso())
		got := first.Get(pair.New(Address{Number: 1, Street: "a"}, true))
		if got.First != pair.New(1, "a") || !got.Second {
			t.Error("unexpected split")
		}
		back := first.ReverseGet(pair.New(pair.New(2, "b"), false))
		if back.First != (Address{Number: 2, Street: "b"}) || back.Second {
			t.Error("unexpected rebuild")
		}
	})

	t.Run("IsoSecond carries the companion", func(t *testing.T) {
		second := IsoSecond[Address, Address, pair.Pair[int, string], pair.Pair[int, string], bool](addressIso())
		got := second.Get(pair.New(true, Address{Number: 1, Street: "a"}))
		if !got.First || got.Second != pair.New(1, "a") {
			t.Error("unexpected split")
		}
	})
}

func TestIdIso(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Id gets and rebuilds the whole unchanged", prop.ForAll(
		func(n int) bool {
			id := Id[int]()
			return id.Get(n) == n && id.ReverseGet(n) == n && id.Modify(n, func(x int) int { return x + 1 }) == n+1
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
