package optics

import (
	"strconv"

	"github.com/authcorp/optics/either"
	"github.com/authcorp/optics/identity"
	"github.com/authcorp/optics/monoid"
	"github.com/authcorp/optics/option"
	"github.com/authcorp/optics/result"
	"github.com/authcorp/optics/stream"
	"github.com/authcorp/optics/validated"
)

// PPrism focuses one case of a sum: extraction may miss, injection is
// total and needs no original whole.
type PPrism[S, T, A, B any] struct {
	getOrModify func(S) either.Either[T, A]
	reverseGet  func(B) T
}

// Prism is a monomorphic PPrism.
type Prism[S, A any] = PPrism[S, S, A, A]

// NewPPrism creates a PPrism from a match-or-pass-through function and an
// injection.
func NewPPrism[S, T, A, B any](getOrModify func(S) either.Either[T, A], reverseGet func(B) T) PPrism[S, T, A, B] {
	return PPrism[S, T, A, B]{getOrModify: getOrModify, reverseGet: reverseGet}
}

// NewPrism creates a Prism from a match function and an injection.
func NewPrism[S, A any](getOption func(S) option.Option[A], reverseGet func(A) S) Prism[S, A] {
	return NewPPrism(func(s S) either.Either[S, A] {
		return option.Fold(getOption(s),
			func() either.Either[S, A] { return either.Left[S, A](s) },
			func(a A) either.Either[S, A] { return either.Right[S, A](a) },
		)
	}, reverseGet)
}

// GetOrModify attempts to extract the target, or passes the whole through
// unchanged on the left.
func (p PPrism[S, T, A, B]) GetOrModify(s S) either.Either[T, A] {
	return p.getOrModify(s)
}

// ReverseGet injects a replacement target directly into a whole.
func (p PPrism[S, T, A, B]) ReverseGet(b B) T {
	return p.reverseGet(b)
}

// GetOption returns the target if the case matches.
func (p PPrism[S, T, A, B]) GetOption(s S) option.Option[A] {
	return p.getOrModify(s).ToOption()
}

// IsMatching reports whether the case matches.
func (p PPrism[S, T, A, B]) IsMatching(s S) bool {
	return p.GetOption(s).IsSome()
}

// Modify transforms the target when the case matches, otherwise passes the
// whole through unchanged.
func (p PPrism[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return either.Fold(p.getOrModify(s),
		func(t T) T { return t },
		func(a A) T { return p.reverseGet(fn(a)) },
	)
}

// ModifyOption transforms the target, reporting whether the case matched.
func (p PPrism[S, T, A, B]) ModifyOption(s S, fn func(A) B) option.Option[T] {
	return option.Map(p.GetOption(s), func(a A) T { return p.reverseGet(fn(a)) })
}

// Set replaces the target when the case matches.
func (p PPrism[S, T, A, B]) Set(s S, b B) T {
	return p.Modify(s, func(A) B { return b })
}

// SetOption replaces the target, reporting whether the case matched.
func (p PPrism[S, T, A, B]) SetOption(s S, b B) option.Option[T] {
	return p.ModifyOption(s, func(A) B { return b })
}

// Re views the injection as a Getter from replacement to whole.
func (p PPrism[S, T, A, B]) Re() Getter[B, T] {
	return NewGetter(p.reverseGet)
}

// ModifyIdF transforms the target inside the identity context.
func (p PPrism[S, T, A, B]) ModifyIdF(s S, fn func(A) identity.Identity[B]) identity.Identity[T] {
	return either.Fold(p.getOrModify(s),
		func(t T) identity.Identity[T] { return identity.Of(t) },
		func(a A) identity.Identity[T] { return identity.Map(fn(a), p.reverseGet) },
	)
}

// ModifyResultF transforms the target inside the result context; a miss is
// the unchanged whole as success.
func (p PPrism[S, T, A, B]) ModifyResultF(s S, fn func(A) result.Result[B]) result.Result[T] {
	return either.Fold(p.getOrModify(s),
		func(t T) result.Result[T] { return result.Ok(t) },
		func(a A) result.Result[T] { return result.Map(fn(a), p.reverseGet) },
	)
}

// ModifyOptionF transforms the target inside the option context; a miss is
// the unchanged whole as present.
func (p PPrism[S, T, A, B]) ModifyOptionF(s S, fn func(A) option.Option[B]) option.Option[T] {
	return either.Fold(p.getOrModify(s),
		func(t T) option.Option[T] { return option.Some(t) },
		func(a A) option.Option[T] { return option.Map(fn(a), p.reverseGet) },
	)
}

// ModifySliceF transforms the target inside the sequence context; a miss is
// the single unchanged whole.
func (p PPrism[S, T, A, B]) ModifySliceF(s S, fn func(A) []B) []T {
	return either.Fold(p.getOrModify(s),
		func(t T) []T { return []T{t} },
		func(a A) []T {
			bs := fn(a)
			out := make([]T, len(bs))
			for n, b := range bs {
				out[n] = p.reverseGet(b)
			}
			return out
		},
	)
}

// ModifyStreamF transforms the target inside the stream context; a miss is
// the single unchanged whole.
func (p PPrism[S, T, A, B]) ModifyStreamF(s S, fn func(A) *stream.Stream[B]) *stream.Stream[T] {
	return either.Fold(p.getOrModify(s),
		func(t T) *stream.Stream[T] { return stream.Of(t) },
		func(a A) *stream.Stream[T] { return stream.Map(fn(a), p.reverseGet) },
	)
}

// ModifyValidatedF transforms the target inside the validation context; a
// miss is the unchanged whole as valid.
func (p PPrism[S, T, A, B]) ModifyValidatedF(s S, fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
	return either.Fold(p.getOrModify(s),
		func(t T) validated.Validated[error, T] { return validated.Valid[error, T](t) },
		func(a A) validated.Validated[error, T] { return validated.Map(fn(a), p.reverseGet) },
	)
}

// AsOptional views the Prism as an Optional.
func (p PPrism[S, T, A, B]) AsOptional() POptional[S, T, A, B] {
	return NewPOptional(p.getOrModify, func(s S, b B) T { return p.Set(s, b) })
}

// AsTraversal views the Prism as a Traversal over its zero-or-one target.
func (p PPrism[S, T, A, B]) AsTraversal() PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyIdF:     p.ModifyIdF,
		modifyResultF: p.ModifyResultF,
		modifyOptionF: p.ModifyOptionF,
		modifySliceF:  p.ModifySliceF,
		modifyStreamF: p.ModifyStreamF,
		modifyValidatedF: func(s S, _ monoid.Semigroup[error], fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
			return p.ModifyValidatedF(s, fn)
		},
		getAll: func(s S) []A { return p.GetOption(s).ToSlice() },
	}
}

// AsSetter views the Prism as a Setter.
func (p PPrism[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return NewPSetter(p.Modify)
}

// AsFold views the Prism as a Fold with zero or one target.
func (p PPrism[S, T, A, B]) AsFold() Fold[S, A] {
	return NewFold(func(s S) []A { return p.GetOption(s).ToSlice() })
}

// ComposePrism composes two Prisms, staying a Prism: an inner miss
// reconstructs the whole through the outer prism's own injection.
func ComposePrism[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PPrism[A, B, C, D]) PPrism[S, T, C, D] {
	return PPrism[S, T, C, D]{
		getOrModify: func(s S) either.Either[T, C] {
			return either.FlatMap(outer.getOrModify(s), func(a A) either.Either[T, C] {
				return either.Bimap(inner.getOrModify(a),
					func(b B) T { return outer.Set(s, b) },
					func(c C) C { return c },
				)
			})
		},
		reverseGet: func(d D) T { return outer.reverseGet(inner.reverseGet(d)) },
	}
}

// ComposePrismIso composes a Prism with an Iso, staying a Prism.
func ComposePrismIso[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PIso[A, B, C, D]) PPrism[S, T, C, D] {
	return ComposePrism(outer, inner.AsPrism())
}

// ComposePrismLens composes a Prism with a Lens, degrading to an Optional.
func ComposePrismLens[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PLens[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner.AsOptional())
}

// ComposePrismOptional composes a Prism with an Optional, degrading to an
// Optional.
func ComposePrismOptional[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner POptional[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner)
}

// ComposePrismTraversal composes a Prism with a Traversal, degrading to a
// Traversal.
func ComposePrismTraversal[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer.AsTraversal(), inner)
}

// ComposePrismSetter composes a Prism with a Setter, degrading to a Setter.
func ComposePrismSetter[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposePrismGetter composes a Prism with a Getter, degrading to a Fold.
func ComposePrismGetter[S, T, A, B, C any](outer PPrism[S, T, A, B], inner Getter[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposePrismFold composes a Prism with a Fold, degrading to a Fold.
func ComposePrismFold[S, T, A, B, C any](outer PPrism[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// IdPrism returns the identity Prism.
func IdPrism[S any]() Prism[S, S] {
	return Id[S]().AsPrism()
}

// SomePrism focuses the value inside a present Option.
func SomePrism[A, B any]() PPrism[option.Option[A], option.Option[B], A, B] {
	return NewPPrism(func(o option.Option[A]) either.Either[option.Option[B], A] {
		return option.Fold(o,
			func() either.Either[option.Option[B], A] {
				return either.Left[option.Option[B], A](option.None[B]())
			},
			func(a A) either.Either[option.Option[B], A] {
				return either.Right[option.Option[B], A](a)
			},
		)
	}, option.Some[B])
}

// StringToInt matches strings holding a canonical base-10 integer.
// Non-canonical forms ("018", "+5") do not match, so injection is a true
// partial inverse of extraction.
func StringToInt() Prism[string, int] {
	return NewPrism(
		func(s string) option.Option[int] {
			n, err := strconv.Atoi(s)
			if err != nil || strconv.Itoa(n) != s {
				return option.None[int]()
			}
			return option.Some(n)
		},
		strconv.Itoa,
	)
}
