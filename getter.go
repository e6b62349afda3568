package optics

import (
	"github.com/authcorp/optics/either"
	"github.com/authcorp/optics/pair"
)

// Getter is a total, effect-free projection from a whole to exactly one
// target.
type Getter[S, A any] struct {
	get func(S) A
}

// NewGetter creates a Getter from a projection.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	return Getter[S, A]{get: get}
}

// Get returns the target inside the whole.
func (g Getter[S, A]) Get(s S) A {
	return g.get(s)
}

// AsFold views the Getter as a Fold with a single target.
func (g Getter[S, A]) AsFold() Fold[S, A] {
	return NewFold(func(s S) []A { return []A{g.get(s)} })
}

// ComposeGetter composes two Getters.
func ComposeGetter[S, A, B any](outer Getter[S, A], inner Getter[A, B]) Getter[S, B] {
	return NewGetter(func(s S) B { return inner.get(outer.get(s)) })
}

// ComposeGetterIso composes a Getter with an Iso, staying a Getter.
func ComposeGetterIso[S, A, B, C, D any](outer Getter[S, A], inner PIso[A, B, C, D]) Getter[S, C] {
	return ComposeGetter(outer, inner.AsGetter())
}

// ComposeGetterLens composes a Getter with a Lens, staying a Getter.
func ComposeGetterLens[S, A, B, C, D any](outer Getter[S, A], inner PLens[A, B, C, D]) Getter[S, C] {
	return ComposeGetter(outer, inner.AsGetter())
}

// ComposeGetterPrism composes a Getter with a Prism, degrading to a Fold.
func ComposeGetterPrism[S, A, B, C, D any](outer Getter[S, A], inner PPrism[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeGetterOptional composes a Getter with an Optional, degrading to a Fold.
func ComposeGetterOptional[S, A, B, C, D any](outer Getter[S, A], inner POptional[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeGetterTraversal composes a Getter with a Traversal, degrading to a Fold.
func ComposeGetterTraversal[S, A, B, C, D any](outer Getter[S, A], inner PTraversal[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeGetterFold composes a Getter with a Fold, degrading to a Fold.
func ComposeGetterFold[S, A, B any](outer Getter[S, A], inner Fold[A, B]) Fold[S, B] {
	return ComposeFold(outer.AsFold(), inner)
}

// SumGetter dispatches on an either-typed whole.
func SumGetter[S, S1, A any](g1 Getter[S, A], g2 Getter[S1, A]) Getter[either.Either[S, S1], A] {
	return NewGetter(func(e either.Either[S, S1]) A {
		return either.Fold(e, g1.get, g2.get)
	})
}

// ProductGetter runs two Getters side by side over a paired whole.
func ProductGetter[S, S1, A, A1 any](g1 Getter[S, A], g2 Getter[S1, A1]) Getter[pair.Pair[S, S1], pair.Pair[A, A1]] {
	return NewGetter(func(p pair.Pair[S, S1]) pair.Pair[A, A1] {
		return pair.New(g1.get(p.First), g2.get(p.Second))
	})
}

// GetterFirst extends a Getter to a paired whole, passing the companion
// value through unchanged.
func GetterFirst[S, A, C any](g Getter[S, A]) Getter[pair.Pair[S, C], pair.Pair[A, C]] {
	return NewGetter(func(p pair.Pair[S, C]) pair.Pair[A, C] {
		return pair.New(g.get(p.First), p.Second)
	})
}

// GetterSecond extends a Getter to a paired whole, passing the companion
// value through unchanged.
func GetterSecond[S, A, C any](g Getter[S, A]) Getter[pair.Pair[C, S], pair.Pair[C, A]] {
	return NewGetter(func(p pair.Pair[C, S]) pair.Pair[C, A] {
		return pair.New(p.First, g.get(p.Second))
	})
}

// IdGetter returns the identity Getter.
func IdGetter[S any]() Getter[S, S] {
	return Id[S]().AsGetter()
}

// CodiagonalGetter merges both sides of an either-typed whole.
func CodiagonalGetter[S any]() Getter[either.Either[S, S], S] {
	return NewGetter(func(e either.Either[S, S]) S {
		return either.Fold(e, func(s S) S { return s }, func(s S) S { return s })
	})
}
