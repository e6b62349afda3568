package optics

import (
	"golang.org/x/exp/slices"

	"github.com/authcorp/optics/either"
	"github.com/authcorp/optics/identity"
	"github.com/authcorp/optics/monoid"
	"github.com/authcorp/optics/option"
	"github.com/authcorp/optics/pair"
	"github.com/authcorp/optics/result"
	"github.com/authcorp/optics/stream"
	"github.com/authcorp/optics/validated"
)

// POptional focuses a target that may be absent; replacing needs the
// original whole to rebuild around.
type POptional[S, T, A, B any] struct {
	getOrModify func(S) either.Either[T, A]
	set         func(S, B) T
}

// Optional is a monomorphic POptional.
type Optional[S, A any] = POptional[S, S, A, A]

// NewPOptional creates a POptional from a match-or-pass-through function
// and a replacement function.
func NewPOptional[S, T, A, B any](getOrModify func(S) either.Either[T, A], set func(S, B) T) POptional[S, T, A, B] {
	return POptional[S, T, A, B]{getOrModify: getOrModify, set: set}
}

// NewOptional creates an Optional from a match function and a replacement
// function.
func NewOptional[S, A any](getOption func(S) option.Option[A], set func(S, A) S) Optional[S, A] {
	return NewPOptional(func(s S) either.Either[S, A] {
		return option.Fold(getOption(s),
			func() either.Either[S, A] { return either.Left[S, A](s) },
			func(a A) either.Either[S, A] { return either.Right[S, A](a) },
		)
	}, set)
}

// GetOrModify attempts to extract the target, or passes the whole through
// unchanged on the left.
func (o POptional[S, T, A, B]) GetOrModify(s S) either.Either[T, A] {
	return o.getOrModify(s)
}

// GetOption returns the target if present.
func (o POptional[S, T, A, B]) GetOption(s S) option.Option[A] {
	return o.getOrModify(s).ToOption()
}

// IsMatching reports whether the target is present.
func (o POptional[S, T, A, B]) IsMatching(s S) bool {
	return o.GetOption(s).IsSome()
}

// Set replaces the target when present, otherwise passes the whole through
// unchanged.
func (o POptional[S, T, A, B]) Set(s S, b B) T {
	return o.set(s, b)
}

// Modify transforms the target when present, otherwise passes the whole
// through unchanged.
func (o POptional[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return either.Fold(o.getOrModify(s),
		func(t T) T { return t },
		func(a A) T { return o.set(s, fn(a)) },
	)
}

// ModifyOption transforms the target, reporting whether it was present.
func (o POptional[S, T, A, B]) ModifyOption(s S, fn func(A) B) option.Option[T] {
	return option.Map(o.GetOption(s), func(a A) T { return o.set(s, fn(a)) })
}

// SetOption replaces the target, reporting whether it was present.
func (o POptional[S, T, A, B]) SetOption(s S, b B) option.Option[T] {
	return o.ModifyOption(s, func(A) B { return b })
}

// ModifyIdF transforms the target inside the identity context.
func (o POptional[S, T, A, B]) ModifyIdF(s S, fn func(A) identity.Identity[B]) identity.Identity[T] {
	return either.Fold(o.getOrModify(s),
		func(t T) identity.Identity[T] { return identity.Of(t) },
		func(a A) identity.Identity[T] {
			return identity.Map(fn(a), func(b B) T { return o.set(s, b) })
		},
	)
}

// ModifyResultF transforms the target inside the result context; a miss is
// the unchanged whole as success.
func (o POptional[S, T, A, B]) ModifyResultF(s S, fn func(A) result.Result[B]) result.Result[T] {
	return either.Fold(o.getOrModify(s),
		func(t T) result.Result[T] { return result.Ok(t) },
		func(a A) result.Result[T] {
			return result.Map(fn(a), func(b B) T { return o.set(s, b) })
		},
	)
}

// ModifyOptionF transforms the target inside the option context; a miss is
// the unchanged whole as present.
func (o POptional[S, T, A, B]) ModifyOptionF(s S, fn func(A) option.Option[B]) option.Option[T] {
	return either.Fold(o.getOrModify(s),
		func(t T) option.Option[T] { return option.Some(t) },
		func(a A) option.Option[T] {
			return option.Map(fn(a), func(b B) T { return o.set(s, b) })
		},
	)
}

// ModifySliceF transforms the target inside the sequence context; a miss is
// the single unchanged whole.
func (o POptional[S, T, A, B]) ModifySliceF(s S, fn func(A) []B) []T {
	return either.Fold(o.getOrModify(s),
		func(t T) []T { return []T{t} },
		func(a A) []T {
			bs := fn(a)
			out := make([]T, len(bs))
			for n, b := range bs {
				out[n] = o.set(s, b)
			}
			return out
		},
	)
}

// ModifyStreamF transforms the target inside the stream context; a miss is
// the single unchanged whole.
func (o POptional[S, T, A, B]) ModifyStreamF(s S, fn func(A) *stream.Stream[B]) *stream.Stream[T] {
	return either.Fold(o.getOrModify(s),
		func(t T) *stream.Stream[T] { return stream.Of(t) },
		func(a A) *stream.Stream[T] {
			return stream.Map(fn(a), func(b B) T { return o.set(s, b) })
		},
	)
}

// ModifyValidatedF transforms the target inside the validation context; a
// miss is the unchanged whole as valid.
func (o POptional[S, T, A, B]) ModifyValidatedF(s S, fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
	return either.Fold(o.getOrModify(s),
		func(t T) validated.Validated[error, T] { return validated.Valid[error, T](t) },
		func(a A) validated.Validated[error, T] {
			return validated.Map(fn(a), func(b B) T { return o.set(s, b) })
		},
	)
}

// AsTraversal views the Optional as a Traversal over its zero-or-one
// target.
func (o POptional[S, T, A, B]) AsTraversal() PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyIdF:     o.ModifyIdF,
		modifyResultF: o.ModifyResultF,
		modifyOptionF: o.ModifyOptionF,
		modifySliceF:  o.ModifySliceF,
		modifyStreamF: o.ModifyStreamF,
		modifyValidatedF: func(s S, _ monoid.Semigroup[error], fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
			return o.ModifyValidatedF(s, fn)
		},
		getAll: func(s S) []A { return o.GetOption(s).ToSlice() },
	}
}

// AsSetter views the Optional as a Setter.
func (o POptional[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return NewPSetter(o.Modify)
}

// AsFold views the Optional as a Fold with zero or one target.
func (o POptional[S, T, A, B]) AsFold() Fold[S, A] {
	return NewFold(func(s S) []A { return o.GetOption(s).ToSlice() })
}

// ComposeOptional composes two Optionals, staying an Optional. The
// composition is left-biased: when the outer misses, the inner is never
// evaluated.
func ComposeOptional[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner POptional[A, B, C, D]) POptional[S, T, C, D] {
	return POptional[S, T, C, D]{
		getOrModify: func(s S) either.Either[T, C] {
			return either.FlatMap(outer.getOrModify(s), func(a A) either.Either[T, C] {
				return either.Bimap(inner.getOrModify(a),
					func(b B) T { return outer.set(s, b) },
					func(c C) C { return c },
				)
			})
		},
		set: func(s S, d D) T {
			return outer.Modify(s, func(a A) B { return inner.set(a, d) })
		},
	}
}

// ComposeOptionalIso composes an Optional with an Iso, staying an Optional.
func ComposeOptionalIso[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PIso[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer, inner.AsOptional())
}

// ComposeOptionalLens composes an Optional with a Lens, staying an
// Optional.
func ComposeOptionalLens[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PLens[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer, inner.AsOptional())
}

// ComposeOptionalPrism composes an Optional with a Prism, staying an
// Optional.
func ComposeOptionalPrism[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PPrism[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer, inner.AsOptional())
}

// ComposeOptionalTraversal composes an Optional with a Traversal, degrading
// to a Traversal.
func ComposeOptionalTraversal[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer.AsTraversal(), inner)
}

// ComposeOptionalSetter composes an Optional with a Setter, degrading to a
// Setter.
func ComposeOptionalSetter[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposeOptionalGetter composes an Optional with a Getter, degrading to a
// Fold.
func ComposeOptionalGetter[S, T, A, B, C any](outer POptional[S, T, A, B], inner Getter[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeOptionalFold composes an Optional with a Fold, degrading to a
// Fold.
func ComposeOptionalFold[S, T, A, B, C any](outer POptional[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// SumOptional dispatches on an either-typed whole.
func SumOptional[S, S1, T, T1, A, B any](o1 POptional[S, T, A, B], o2 POptional[S1, T1, A, B]) POptional[either.Either[S, S1], either.Either[T, T1], A, B] {
	return POptional[either.Either[S, S1], either.Either[T, T1], A, B]{
		getOrModify: func(e either.Either[S, S1]) either.Either[either.Either[T, T1], A] {
			return either.Fold(e,
				func(s S) either.Either[either.Either[T, T1], A] {
					return either.MapLeft(o1.getOrModify(s), either.Left[T, T1])
				},
				func(s1 S1) either.Either[either.Either[T, T1], A] {
					return either.MapLeft(o2.getOrModify(s1), either.Right[T, T1])
				},
			)
		},
		set: func(e either.Either[S, S1], b B) either.Either[T, T1] {
			return either.Bimap(e,
				func(s S) T { return o1.set(s, b) },
				func(s1 S1) T1 { return o2.set(s1, b) },
			)
		},
	}
}

// OptionalFirst extends an Optional to a paired whole, passing the
// companion value through unchanged. The replacement pair supplies the new
// companion.
func OptionalFirst[S, T, A, B, C any](o POptional[S, T, A, B]) POptional[pair.Pair[S, C], pair.Pair[T, C], pair.Pair[A, C], pair.Pair[B, C]] {
	return POptional[pair.Pair[S, C], pair.Pair[T, C], pair.Pair[A, C], pair.Pair[B, C]]{
		getOrModify: func(p pair.Pair[S, C]) either.Either[pair.Pair[T, C], pair.Pair[A, C]] {
			return either.Bimap(o.getOrModify(p.First),
				func(t T) pair.Pair[T, C] { return pair.New(t, p.Second) },
				func(a A) pair.Pair[A, C] { return pair.New(a, p.Second) },
			)
		},
		set: func(p pair.Pair[S, C], q pair.Pair[B, C]) pair.Pair[T, C] {
			return pair.New(o.set(p.First, q.First), q.Second)
		},
	}
}

// OptionalSecond extends an Optional to a paired whole, passing the
// companion value through unchanged. The replacement pair supplies the new
// companion.
func OptionalSecond[S, T, A, B, C any](o POptional[S, T, A, B]) POptional[pair.Pair[C, S], pair.Pair[C, T], pair.Pair[C, A], pair.Pair[C, B]] {
	return POptional[pair.Pair[C, S], pair.Pair[C, T], pair.Pair[C, A], pair.Pair[C, B]]{
		getOrModify: func(p pair.Pair[C, S]) either.Either[pair.Pair[C, T], pair.Pair[C, A]] {
			return either.Bimap(o.getOrModify(p.Second),
				func(t T) pair.Pair[C, T] { return pair.New(p.First, t) },
				func(a A) pair.Pair[C, A] { return pair.New(p.First, a) },
			)
		},
		set: func(p pair.Pair[C, S], q pair.Pair[C, B]) pair.Pair[C, T] {
			return pair.New(q.First, o.set(p.Second, q.Second))
		},
	}
}

// IdOptional returns the identity Optional.
func IdOptional[S any]() Optional[S, S] {
	return Id[S]().AsOptional()
}

// Ignored returns the Optional that never matches and never modifies.
func Ignored[S, A any]() Optional[S, A] {
	return NewOptional(
		func(S) option.Option[A] { return option.None[A]() },
		func(s S, _ A) S { return s },
	)
}

// Index focuses the element at a slice index, missing when out of range.
// Setting copies the slice; the original is never mutated.
func Index[A any](i int) Optional[[]A, A] {
	return NewOptional(
		func(s []A) option.Option[A] {
			if i < 0 || i >= len(s) {
				return option.None[A]()
			}
			return option.Some(s[i])
		},
		func(s []A, a A) []A {
			if i < 0 || i >= len(s) {
				return s
			}
			out := slices.Clone(s)
			out[i] = a
			return out
		},
	)
}
