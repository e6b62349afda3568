package optics

import (
	"golang.org/x/exp/maps"

	"github.com/authcorp/optics/either"
	"github.com/authcorp/optics/identity"
	"github.com/authcorp/optics/monoid"
	"github.com/authcorp/optics/option"
	"github.com/authcorp/optics/pair"
	"github.com/authcorp/optics/result"
	"github.com/authcorp/optics/stream"
	"github.com/authcorp/optics/validated"
)

// PLens focuses a product field: a total projection plus a total
// replacement that keeps the rest of the whole.
type PLens[S, T, A, B any] struct {
	get func(S) A
	set func(S, B) T
}

// Lens is a monomorphic PLens.
type Lens[S, A any] = PLens[S, S, A, A]

// NewPLens creates a PLens from a projection and a replacement function.
func NewPLens[S, T, A, B any](get func(S) A, set func(S, B) T) PLens[S, T, A, B] {
	return PLens[S, T, A, B]{get: get, set: set}
}

// NewLens creates a Lens from a projection and a replacement function.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return NewPLens(get, set)
}

// Get returns the target inside the whole.
func (l PLens[S, T, A, B]) Get(s S) A {
	return l.get(s)
}

// Set replaces the target, keeping the rest of the whole.
func (l PLens[S, T, A, B]) Set(s S, b B) T {
	return l.set(s, b)
}

// Modify transforms the target in place.
func (l PLens[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return l.set(s, fn(l.get(s)))
}

// ModifyIdF transforms the target inside the identity context.
func (l PLens[S, T, A, B]) ModifyIdF(s S, fn func(A) identity.Identity[B]) identity.Identity[T] {
	return identity.Map(fn(l.get(s)), func(b B) T { return l.set(s, b) })
}

// ModifyResultF transforms the target inside the result context.
func (l PLens[S, T, A, B]) ModifyResultF(s S, fn func(A) result.Result[B]) result.Result[T] {
	return result.Map(fn(l.get(s)), func(b B) T { return l.set(s, b) })
}

// ModifyOptionF transforms the target inside the option context.
func (l PLens[S, T, A, B]) ModifyOptionF(s S, fn func(A) option.Option[B]) option.Option[T] {
	return option.Map(fn(l.get(s)), func(b B) T { return l.set(s, b) })
}

// ModifySliceF transforms the target inside the sequence context, producing
// one whole per replacement.
func (l PLens[S, T, A, B]) ModifySliceF(s S, fn func(A) []B) []T {
	bs := fn(l.get(s))
	out := make([]T, len(bs))
	for n, b := range bs {
		out[n] = l.set(s, b)
	}
	return out
}

// ModifyStreamF transforms the target inside the stream context.
func (l PLens[S, T, A, B]) ModifyStreamF(s S, fn func(A) *stream.Stream[B]) *stream.Stream[T] {
	return stream.Map(fn(l.get(s)), func(b B) T { return l.set(s, b) })
}

// ModifyValidatedF transforms the target inside the validation context.
func (l PLens[S, T, A, B]) ModifyValidatedF(s S, fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
	return validated.Map(fn(l.get(s)), func(b B) T { return l.set(s, b) })
}

// AsOptional views the Lens as an Optional that always matches.
func (l PLens[S, T, A, B]) AsOptional() POptional[S, T, A, B] {
	return NewPOptional(func(s S) either.Either[T, A] {
		return either.Right[T, A](l.get(s))
	}, l.set)
}

// AsTraversal views the Lens as a Traversal over its single target.
func (l PLens[S, T, A, B]) AsTraversal() PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyIdF:     l.ModifyIdF,
		modifyResultF: l.ModifyResultF,
		modifyOptionF: l.ModifyOptionF,
		modifySliceF:  l.ModifySliceF,
		modifyStreamF: l.ModifyStreamF,
		modifyValidatedF: func(s S, _ monoid.Semigroup[error], fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
			return l.ModifyValidatedF(s, fn)
		},
		getAll: func(s S) []A { return []A{l.get(s)} },
	}
}

// AsSetter views the Lens as a Setter.
func (l PLens[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return NewPSetter(l.Modify)
}

// AsGetter views the Lens as a Getter.
func (l PLens[S, T, A, B]) AsGetter() Getter[S, A] {
	return NewGetter(l.get)
}

// AsFold views the Lens as a Fold with a single target.
func (l PLens[S, T, A, B]) AsFold() Fold[S, A] {
	return NewFold(func(s S) []A { return []A{l.get(s)} })
}

// ComposeLens composes two Lenses, staying a Lens.
func ComposeLens[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PLens[A, B, C, D]) PLens[S, T, C, D] {
	return PLens[S, T, C, D]{
		get: func(s S) C { return inner.get(outer.get(s)) },
		set: func(s S, d D) T {
			return outer.Modify(s, func(a A) B { return inner.set(a, d) })
		},
	}
}

// ComposeLensIso composes a Lens with an Iso, staying a Lens.
func ComposeLensIso[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PIso[A, B, C, D]) PLens[S, T, C, D] {
	return ComposeLens(outer, inner.AsLens())
}

// ComposeLensPrism composes a Lens with a Prism, degrading to an Optional.
func ComposeLensPrism[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PPrism[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner.AsOptional())
}

// ComposeLensOptional composes a Lens with an Optional, degrading to an
// Optional.
func ComposeLensOptional[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner POptional[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner)
}

// ComposeLensTraversal composes a Lens with a Traversal, degrading to a
// Traversal.
func ComposeLensTraversal[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer.AsTraversal(), inner)
}

// ComposeLensSetter composes a Lens with a Setter, degrading to a Setter.
func ComposeLensSetter[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposeLensGetter composes a Lens with a Getter, staying a Getter.
func ComposeLensGetter[S, T, A, B, C any](outer PLens[S, T, A, B], inner Getter[A, C]) Getter[S, C] {
	return ComposeGetter(outer.AsGetter(), inner)
}

// ComposeLensFold composes a Lens with a Fold, degrading to a Fold.
func ComposeLensFold[S, T, A, B, C any](outer PLens[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// SumLens dispatches on an either-typed whole.
func SumLens[S, S1, T, T1, A, B any](l1 PLens[S, T, A, B], l2 PLens[S1, T1, A, B]) PLens[either.Either[S, S1], either.Either[T, T1], A, B] {
	return PLens[either.Either[S, S1], either.Either[T, T1], A, B]{
		get: func(e either.Either[S, S1]) A {
			return either.Fold(e, l1.get, l2.get)
		},
		set: func(e either.Either[S, S1], b B) either.Either[T, T1] {
			return either.Bimap(e,
				func(s S) T { return l1.set(s, b) },
				func(s1 S1) T1 { return l2.set(s1, b) },
			)
		},
	}
}

// IdLens returns the identity Lens.
func IdLens[S any]() Lens[S, S] {
	return Id[S]().AsLens()
}

// FirstLens focuses the first element of a pair.
func FirstLens[A, B any]() Lens[pair.Pair[A, B], A] {
	return NewLens(
		func(p pair.Pair[A, B]) A { return p.First },
		func(p pair.Pair[A, B], a A) pair.Pair[A, B] { return pair.New(a, p.Second) },
	)
}

// SecondLens focuses the second element of a pair.
func SecondLens[A, B any]() Lens[pair.Pair[A, B], B] {
	return NewLens(
		func(p pair.Pair[A, B]) B { return p.Second },
		func(p pair.Pair[A, B], b B) pair.Pair[A, B] { return pair.New(p.First, b) },
	)
}

// At focuses the optional value at a map key. Setting Some inserts or
// replaces the entry, setting None deletes it; the original map is never
// mutated.
func At[K comparable, V any](key K) Lens[map[K]V, option.Option[V]] {
	return NewLens(
		func(m map[K]V) option.Option[V] {
			if v, ok := m[key]; ok {
				return option.Some(v)
			}
			return option.None[V]()
		},
		func(m map[K]V, o option.Option[V]) map[K]V {
			out := maps.Clone(m)
			if o.IsSome() {
				if out == nil {
					out = map[K]V{}
				}
				out[key] = o.Unwrap()
			} else {
				delete(out, key)
			}
			return out
		},
	)
}
