package optics

import "github.com/authcorp/optics/either"

// PSetter is a write-only optic: it replaces every target through a
// function, with no read capability.
type PSetter[S, T, A, B any] struct {
	modify func(S, func(A) B) T
}

// Setter is a monomorphic PSetter.
type Setter[S, A any] = PSetter[S, S, A, A]

// NewPSetter creates a PSetter from a bulk-update function.
func NewPSetter[S, T, A, B any](modify func(S, func(A) B) T) PSetter[S, T, A, B] {
	return PSetter[S, T, A, B]{modify: modify}
}

// NewSetter creates a Setter from a bulk-update function.
func NewSetter[S, A any](modify func(S, func(A) A) S) Setter[S, A] {
	return NewPSetter(modify)
}

// Modify replaces every target using the function.
func (st PSetter[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return st.modify(s, fn)
}

// Set replaces every target with a constant value.
func (st PSetter[S, T, A, B]) Set(s S, b B) T {
	return st.modify(s, func(A) B { return b })
}

// ComposeSetter composes two Setters.
func ComposeSetter[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return NewPSetter(func(s S, fn func(C) D) T {
		return outer.modify(s, func(a A) B { return inner.modify(a, fn) })
	})
}

// ComposeSetterIso composes a Setter with an Iso, staying a Setter.
func ComposeSetterIso[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PIso[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeSetterLens composes a Setter with a Lens, staying a Setter.
func ComposeSetterLens[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PLens[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeSetterPrism composes a Setter with a Prism, staying a Setter.
func ComposeSetterPrism[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PPrism[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeSetterOptional composes a Setter with an Optional, staying a Setter.
func ComposeSetterOptional[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner POptional[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeSetterTraversal composes a Setter with a Traversal, staying a Setter.
func ComposeSetterTraversal[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PTraversal[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// SumSetter dispatches on an either-typed whole.
func SumSetter[S, S1, T, T1, A, B any](st1 PSetter[S, T, A, B], st2 PSetter[S1, T1, A, B]) PSetter[either.Either[S, S1], either.Either[T, T1], A, B] {
	return NewPSetter(func(e either.Either[S, S1], fn func(A) B) either.Either[T, T1] {
		return either.Bimap(e,
			func(s S) T { return st1.modify(s, fn) },
			func(s1 S1) T1 { return st2.modify(s1, fn) },
		)
	})
}

// PCodiagonalSetter updates both sides of an either-typed whole uniformly.
func PCodiagonalSetter[S, T any]() PSetter[either.Either[S, S], either.Either[T, T], S, T] {
	return NewPSetter(func(e either.Either[S, S], fn func(S) T) either.Either[T, T] {
		return either.Bimap(e, fn, fn)
	})
}

// CodiagonalSetter is the monomorphic PCodiagonalSetter.
func CodiagonalSetter[S any]() Setter[either.Either[S, S], S] {
	return PCodiagonalSetter[S, S]()
}

// IdSetter returns the identity Setter.
func IdSetter[S any]() Setter[S, S] {
	return Id[S]().AsSetter()
}
