package optics

import (
	"github.com/authcorp/optics/either"
	"github.com/authcorp/optics/monoid"
	"github.com/authcorp/optics/option"
)

// Fold is a read-only optic whose whole yields zero or more targets,
// observed by folding every target into a monoid.
type Fold[S, A any] struct {
	getAll func(S) []A
}

// NewFold creates a Fold from a function listing every target in order.
func NewFold[S, A any](getAll func(S) []A) Fold[S, A] {
	return Fold[S, A]{getAll: getAll}
}

// FoldMap maps every target into the monoid's carrier and combines the
// results left to right, starting from the neutral element.
func FoldMap[S, A, M any](fd Fold[S, A], s S, m monoid.Monoid[M], fn func(A) M) M {
	acc := m.Zero()
	for _, a := range fd.getAll(s) {
		acc = m.Sum(acc, fn(a))
	}
	return acc
}

// Fold combines every target with a monoid over the target type.
func (f Fold[S, A]) Fold(s S, m monoid.Monoid[A]) A {
	return FoldMap(f, s, m, func(a A) A { return a })
}

// GetAll returns every target in order.
func (f Fold[S, A]) GetAll(s S) []A {
	return FoldMap(f, s, monoid.Slice[A](), func(a A) []A { return []A{a} })
}

// Find returns the first target satisfying the predicate.
func (f Fold[S, A]) Find(s S, predicate func(A) bool) option.Option[A] {
	return FoldMap(f, s, monoid.FirstOption[A](), func(a A) option.Option[A] {
		if predicate(a) {
			return option.Some(a)
		}
		return option.None[A]()
	})
}

// HeadOption returns the first target, if any.
func (f Fold[S, A]) HeadOption(s S) option.Option[A] {
	return f.Find(s, func(A) bool { return true })
}

// Exist reports whether at least one target satisfies the predicate.
func (f Fold[S, A]) Exist(s S, predicate func(A) bool) bool {
	return FoldMap(f, s, monoid.Or(), predicate)
}

// All reports whether every target satisfies the predicate.
func (f Fold[S, A]) All(s S, predicate func(A) bool) bool {
	return FoldMap(f, s, monoid.And(), predicate)
}

// ComposeFold composes two Folds, flattening the targets in order.
func ComposeFold[S, A, B any](outer Fold[S, A], inner Fold[A, B]) Fold[S, B] {
	return NewFold(func(s S) []B {
		var out []B
		for _, a := range outer.getAll(s) {
			out = append(out, inner.getAll(a)...)
		}
		return out
	})
}

// ComposeFoldGetter composes a Fold with a Getter.
func ComposeFoldGetter[S, A, B any](outer Fold[S, A], inner Getter[A, B]) Fold[S, B] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldIso composes a Fold with an Iso.
func ComposeFoldIso[S, A, B, C, D any](outer Fold[S, A], inner PIso[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldLens composes a Fold with a Lens.
func ComposeFoldLens[S, A, B, C, D any](outer Fold[S, A], inner PLens[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldPrism composes a Fold with a Prism.
func ComposeFoldPrism[S, A, B, C, D any](outer Fold[S, A], inner PPrism[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldOptional composes a Fold with an Optional.
func ComposeFoldOptional[S, A, B, C, D any](outer Fold[S, A], inner POptional[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldTraversal composes a Fold with a Traversal.
func ComposeFoldTraversal[S, A, B, C, D any](outer Fold[S, A], inner PTraversal[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// SumFold dispatches on an either-typed whole, folding with the matching side.
func SumFold[S, S1, A any](f1 Fold[S, A], f2 Fold[S1, A]) Fold[either.Either[S, S1], A] {
	return NewFold(func(e either.Either[S, S1]) []A {
		return either.Fold(e, f1.getAll, f2.getAll)
	})
}

// CodiagonalFold treats both sides of an either-typed whole as the single target.
func CodiagonalFold[S any]() Fold[either.Either[S, S], S] {
	return NewFold(func(e either.Either[S, S]) []S {
		return []S{either.Fold(e, func(s S) S { return s }, func(s S) S { return s })}
	})
}

// IdFold returns the identity Fold with the whole as its single target.
func IdFold[S any]() Fold[S, S] {
	return Id[S]().AsFold()
}
