package optics

import (
	"github.com/authcorp/optics/either"
	"github.com/authcorp/optics/identity"
	"github.com/authcorp/optics/monoid"
	"github.com/authcorp/optics/option"
	"github.com/authcorp/optics/pair"
	"github.com/authcorp/optics/result"
	"github.com/authcorp/optics/stream"
	"github.com/authcorp/optics/validated"
)

// PIso relates two representations losslessly: get and reverseGet are
// required to be mutual inverses.
type PIso[S, T, A, B any] struct {
	get        func(S) A
	reverseGet func(B) T
}

// Iso is a monomorphic PIso.
type Iso[S, A any] = PIso[S, S, A, A]

// NewPIso creates a PIso from two mutually inverse functions.
func NewPIso[S, T, A, B any](get func(S) A, reverseGet func(B) T) PIso[S, T, A, B] {
	return PIso[S, T, A, B]{get: get, reverseGet: reverseGet}
}

// NewIso creates an Iso from two mutually inverse functions.
func NewIso[S, A any](get func(S) A, reverseGet func(A) S) Iso[S, A] {
	return NewPIso(get, reverseGet)
}

// PId returns the polymorphic identity Iso.
func PId[S, T any]() PIso[S, T, S, T] {
	return PIso[S, T, S, T]{
		get:        func(s S) S { return s },
		reverseGet: func(t T) T { return t },
	}
}

// Id returns the identity Iso, the two-sided unit of composition for
// every kind.
func Id[S any]() Iso[S, S] {
	return PId[S, S]()
}

// Get extracts the target from the whole.
func (i PIso[S, T, A, B]) Get(s S) A {
	return i.get(s)
}

// ReverseGet rebuilds a whole from a replacement target.
func (i PIso[S, T, A, B]) ReverseGet(b B) T {
	return i.reverseGet(b)
}

// Reverse swaps the source and target roles. Reversing twice restores the
// original behavior.
func (i PIso[S, T, A, B]) Reverse() PIso[B, A, T, S] {
	return PIso[B, A, T, S]{get: i.reverseGet, reverseGet: i.get}
}

// Modify transforms the target and rebuilds the whole.
func (i PIso[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return i.reverseGet(fn(i.get(s)))
}

// Set replaces the target, rebuilding the whole from the replacement alone.
func (i PIso[S, T, A, B]) Set(s S, b B) T {
	return i.reverseGet(b)
}

// ModifyIdF transforms the target inside the identity context.
func (i PIso[S, T, A, B]) ModifyIdF(s S, fn func(A) identity.Identity[B]) identity.Identity[T] {
	return identity.Map(fn(i.get(s)), i.reverseGet)
}

// ModifyResultF transforms the target inside the result context.
func (i PIso[S, T, A, B]) ModifyResultF(s S, fn func(A) result.Result[B]) result.Result[T] {
	return result.Map(fn(i.get(s)), i.reverseGet)
}

// ModifyOptionF transforms the target inside the option context.
func (i PIso[S, T, A, B]) ModifyOptionF(s S, fn func(A) option.Option[B]) option.Option[T] {
	return option.Map(fn(i.get(s)), i.reverseGet)
}

// ModifySliceF transforms the target inside the sequence context, producing
// one whole per replacement.
func (i PIso[S, T, A, B]) ModifySliceF(s S, fn func(A) []B) []T {
	bs := fn(i.get(s))
	out := make([]T, len(bs))
	for n, b := range bs {
		out[n] = i.reverseGet(b)
	}
	return out
}

// ModifyStreamF transforms the target inside the stream context.
func (i PIso[S, T, A, B]) ModifyStreamF(s S, fn func(A) *stream.Stream[B]) *stream.Stream[T] {
	return stream.Map(fn(i.get(s)), i.reverseGet)
}

// ModifyValidatedF transforms the target inside the validation context.
func (i PIso[S, T, A, B]) ModifyValidatedF(s S, fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
	return validated.Map(fn(i.get(s)), i.reverseGet)
}

// AsLens views the Iso as a Lens.
func (i PIso[S, T, A, B]) AsLens() PLens[S, T, A, B] {
	return NewPLens(i.get, func(s S, b B) T { return i.reverseGet(b) })
}

// AsPrism views the Iso as a Prism that always matches.
func (i PIso[S, T, A, B]) AsPrism() PPrism[S, T, A, B] {
	return NewPPrism(func(s S) either.Either[T, A] {
		return either.Right[T, A](i.get(s))
	}, i.reverseGet)
}

// AsOptional views the Iso as an Optional that always matches.
func (i PIso[S, T, A, B]) AsOptional() POptional[S, T, A, B] {
	return NewPOptional(func(s S) either.Either[T, A] {
		return either.Right[T, A](i.get(s))
	}, func(s S, b B) T { return i.reverseGet(b) })
}

// AsTraversal views the Iso as a Traversal over its single target.
func (i PIso[S, T, A, B]) AsTraversal() PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyIdF:     i.ModifyIdF,
		modifyResultF: i.ModifyResultF,
		modifyOptionF: i.ModifyOptionF,
		modifySliceF:  i.ModifySliceF,
		modifyStreamF: i.ModifyStreamF,
		modifyValidatedF: func(s S, _ monoid.Semigroup[error], fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
			return i.ModifyValidatedF(s, fn)
		},
		getAll: func(s S) []A { return []A{i.get(s)} },
	}
}

// AsSetter views the Iso as a Setter.
func (i PIso[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return NewPSetter(i.Modify)
}

// AsGetter views the Iso as a Getter.
func (i PIso[S, T, A, B]) AsGetter() Getter[S, A] {
	return NewGetter(i.get)
}

// AsFold views the Iso as a Fold with a single target.
func (i PIso[S, T, A, B]) AsFold() Fold[S, A] {
	return NewFold(func(s S) []A { return []A{i.get(s)} })
}

// ComposeIso composes two Isos.
func ComposeIso[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PIso[A, B, C, D]) PIso[S, T, C, D] {
	return PIso[S, T, C, D]{
		get:        func(s S) C { return inner.get(outer.get(s)) },
		reverseGet: func(d D) T { return outer.reverseGet(inner.reverseGet(d)) },
	}
}

// ComposeIsoLens composes an Iso with a Lens, staying a Lens.
func ComposeIsoLens[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PLens[A, B, C, D]) PLens[S, T, C, D] {
	return ComposeLens(outer.AsLens(), inner)
}

// ComposeIsoPrism composes an Iso with a Prism, staying a Prism.
func ComposeIsoPrism[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PPrism[A, B, C, D]) PPrism[S, T, C, D] {
	return ComposePrism(outer.AsPrism(), inner)
}

// ComposeIsoOptional composes an Iso with an Optional, staying an Optional.
func ComposeIsoOptional[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner POptional[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner)
}

// ComposeIsoTraversal composes an Iso with a Traversal, staying a Traversal.
func ComposeIsoTraversal[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer.AsTraversal(), inner)
}

// ComposeIsoSetter composes an Iso with a Setter, staying a Setter.
func ComposeIsoSetter[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposeIsoGetter composes an Iso with a Getter, staying a Getter.
func ComposeIsoGetter[S, T, A, B, C any](outer PIso[S, T, A, B], inner Getter[A, C]) Getter[S, C] {
	return ComposeGetter(outer.AsGetter(), inner)
}

// ComposeIsoFold composes an Iso with a Fold, degrading to a Fold.
func ComposeIsoFold[S, T, A, B, C any](outer PIso[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// ProductIso runs two Isos side by side over paired values.
func ProductIso[S, T, A, B, S1, T1, A1, B1 any](i PIso[S, T, A, B], i1 PIso[S1, T1, A1, B1]) PIso[pair.Pair[S, S1], pair.Pair[T, T1], pair.Pair[A, A1], pair.Pair[B, B1]] {
	return PIso[pair.Pair[S, S1], pair.Pair[T, T1], pair.Pair[A, A1], pair.Pair[B, B1]]{
		get: func(p pair.Pair[S, S1]) pair.Pair[A, A1] {
			return pair.New(i.get(p.First), i1.get(p.Second))
		},
		reverseGet: func(p pair.Pair[B, B1]) pair.Pair[T, T1] {
			return pair.New(i.reverseGet(p.First), i1.reverseGet(p.Second))
		},
	}
}

// IsoFirst extends an Iso to a paired value, passing the companion through
// unchanged.
func IsoFirst[S, T, A, B, C any](i PIso[S, T, A, B]) PIso[pair.Pair[S, C], pair.Pair[T, C], pair.Pair[A, C], pair.Pair[B, C]] {
	return PIso[pair.Pair[S, C], pair.Pair[T, C], pair.Pair[A, C], pair.Pair[B, C]]{
		get: func(p pair.Pair[S, C]) pair.Pair[A, C] {
			return pair.New(i.get(p.First), p.Second)
		},
		reverseGet: func(p pair.Pair[B, C]) pair.Pair[T, C] {
			return pair.New(i.reverseGet(p.First), p.Second)
		},
	}
}

// IsoSecond extends an Iso to a paired value, passing the companion through
// unchanged.
func IsoSecond[S, T, A, B, C any](i PIso[S, T, A, B]) PIso[pair.Pair[C, S], pair.Pair[C, T], pair.Pair[C, A], pair.Pair[C, B]] {
	return PIso[pair.Pair[C, S], pair.Pair[C, T], pair.Pair[C, A], pair.Pair[C, B]]{
		get: func(p pair.Pair[C, S]) pair.Pair[C, A] {
			return pair.New(p.First, i.get(p.Second))
		},
		reverseGet: func(p pair.Pair[C, B]) pair.Pair[C, T] {
			return pair.New(p.First, i.reverseGet(p.Second))
		},
	}
}
