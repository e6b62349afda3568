package optics

import (
	"github.com/authcorp/optics/either"
	"github.com/authcorp/optics/identity"
	"github.com/authcorp/optics/monoid"
	"github.com/authcorp/optics/option"
	"github.com/authcorp/optics/result"
	"github.com/authcorp/optics/stream"
	"github.com/authcorp/optics/validated"
)

// PTraversal focuses zero or more targets, all modified uniformly inside an
// effect context. Effects sequence left to right in target order.
type PTraversal[S, T, A, B any] struct {
	modifyIdF        func(S, func(A) identity.Identity[B]) identity.Identity[T]
	modifyResultF    func(S, func(A) result.Result[B]) result.Result[T]
	modifyOptionF    func(S, func(A) option.Option[B]) option.Option[T]
	modifySliceF     func(S, func(A) []B) []T
	modifyStreamF    func(S, func(A) *stream.Stream[B]) *stream.Stream[T]
	modifyValidatedF func(S, monoid.Semigroup[error], func(A) validated.Validated[error, B]) validated.Validated[error, T]
	getAll           func(S) []A
}

// Traversal is a monomorphic PTraversal.
type Traversal[S, A any] = PTraversal[S, S, A, A]

// NewPTraversal2 creates a PTraversal over two targets.
func NewPTraversal2[S, T, A, B any](get1, get2 func(S) A, set func(S, B, B) T) PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyIdF: func(s S, fn func(A) identity.Identity[B]) identity.Identity[T] {
			ff := identity.Map(fn(get1(s)), func(b1 B) func(B) T {
				return func(b2 B) T { return set(s, b1, b2) }
			})
			return apIdentity(ff, fn(get2(s)))
		},
		modifyResultF: func(s S, fn func(A) result.Result[B]) result.Result[T] {
			ff := result.Map(fn(get1(s)), func(b1 B) func(B) T {
				return func(b2 B) T { return set(s, b1, b2) }
			})
			return apResult(ff, fn(get2(s)))
		},
		modifyOptionF: func(s S, fn func(A) option.Option[B]) option.Option[T] {
			ff := option.Map(fn(get1(s)), func(b1 B) func(B) T {
				return func(b2 B) T { return set(s, b1, b2) }
			})
			return apOption(ff, fn(get2(s)))
		},
		modifySliceF: func(s S, fn func(A) []B) []T {
			bs := fn(get1(s))
			ff := make([]func(B) T, len(bs))
			for n, b1 := range bs {
				ff[n] = func(b2 B) T { return set(s, b1, b2) }
			}
			return apSlice(ff, fn(get2(s)))
		},
		modifyStreamF: func(s S, fn func(A) *stream.Stream[B]) *stream.Stream[T] {
			ff := stream.Map(fn(get1(s)), func(b1 B) func(B) T {
				return func(b2 B) T { return set(s, b1, b2) }
			})
			return apStream(ff, fn(get2(s)))
		},
		modifyValidatedF: func(s S, sg monoid.Semigroup[error], fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
			ff := validated.Map(fn(get1(s)), func(b1 B) func(B) T {
				return func(b2 B) T { return set(s, b1, b2) }
			})
			return validated.Ap(sg, ff, fn(get2(s)))
		},
		getAll: func(s S) []A { return []A{get1(s), get2(s)} },
	}
}

// fromCurried appends one more target to a traversal whose rebuild is still
// waiting for it.
func fromCurried[S, T, A, B any](curried PTraversal[S, func(B) T, A, B], lastGet func(S) A) PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyIdF: func(s S, fn func(A) identity.Identity[B]) identity.Identity[T] {
			return apIdentity(curried.modifyIdF(s, fn), fn(lastGet(s)))
		},
		modifyResultF: func(s S, fn func(A) result.Result[B]) result.Result[T] {
			return apResult(curried.modifyResultF(s, fn), fn(lastGet(s)))
		},
		modifyOptionF: func(s S, fn func(A) option.Option[B]) option.Option[T] {
			return apOption(curried.modifyOptionF(s, fn), fn(lastGet(s)))
		},
		modifySliceF: func(s S, fn func(A) []B) []T {
			return apSlice(curried.modifySliceF(s, fn), fn(lastGet(s)))
		},
		modifyStreamF: func(s S, fn func(A) *stream.Stream[B]) *stream.Stream[T] {
			return apStream(curried.modifyStreamF(s, fn), fn(lastGet(s)))
		},
		modifyValidatedF: func(s S, sg monoid.Semigroup[error], fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
			return validated.Ap(sg, curried.modifyValidatedF(s, sg, fn), fn(lastGet(s)))
		},
		getAll: func(s S) []A { return append(curried.getAll(s), lastGet(s)) },
	}
}

// NewPTraversal3 creates a PTraversal over three targets.
func NewPTraversal3[S, T, A, B any](get1, get2, get3 func(S) A, set func(S, B, B, B) T) PTraversal[S, T, A, B] {
	curried := NewPTraversal2[S, func(B) T, A, B](get1, get2, func(s S, b1, b2 B) func(B) T {
		return func(b3 B) T { return set(s, b1, b2, b3) }
	})
	return fromCurried(curried, get3)
}

// NewPTraversal4 creates a PTraversal over four targets.
func NewPTraversal4[S, T, A, B any](get1, get2, get3, get4 func(S) A, set func(S, B, B, B, B) T) PTraversal[S, T, A, B] {
	curried := NewPTraversal3[S, func(B) T, A, B](get1, get2, get3, func(s S, b1, b2, b3 B) func(B) T {
		return func(b4 B) T { return set(s, b1, b2, b3, b4) }
	})
	return fromCurried(curried, get4)
}

// NewPTraversal5 creates a PTraversal over five targets.
func NewPTraversal5[S, T, A, B any](get1, get2, get3, get4, get5 func(S) A, set func(S, B, B, B, B, B) T) PTraversal[S, T, A, B] {
	curried := NewPTraversal4[S, func(B) T, A, B](get1, get2, get3, get4, func(s S, b1, b2, b3, b4 B) func(B) T {
		return func(b5 B) T { return set(s, b1, b2, b3, b4, b5) }
	})
	return fromCurried(curried, get5)
}

// NewPTraversal6 creates a PTraversal over six targets.
func NewPTraversal6[S, T, A, B any](get1, get2, get3, get4, get5, get6 func(S) A, set func(S, B, B, B, B, B, B) T) PTraversal[S, T, A, B] {
	curried := NewPTraversal5[S, func(B) T, A, B](get1, get2, get3, get4, get5, func(s S, b1, b2, b3, b4, b5 B) func(B) T {
		return func(b6 B) T { return set(s, b1, b2, b3, b4, b5, b6) }
	})
	return fromCurried(curried, get6)
}

// NewTraversal2 creates a Traversal over two targets.
func NewTraversal2[S, A any](get1, get2 func(S) A, set func(S, A, A) S) Traversal[S, A] {
	return NewPTraversal2(get1, get2, set)
}

// NewTraversal3 creates a Traversal over three targets.
func NewTraversal3[S, A any](get1, get2, get3 func(S) A, set func(S, A, A, A) S) Traversal[S, A] {
	return NewPTraversal3(get1, get2, get3, set)
}

// NewTraversal4 creates a Traversal over four targets.
func NewTraversal4[S, A any](get1, get2, get3, get4 func(S) A, set func(S, A, A, A, A) S) Traversal[S, A] {
	return NewPTraversal4(get1, get2, get3, get4, set)
}

// NewTraversal5 creates a Traversal over five targets.
func NewTraversal5[S, A any](get1, get2, get3, get4, get5 func(S) A, set func(S, A, A, A, A, A) S) Traversal[S, A] {
	return NewPTraversal5(get1, get2, get3, get4, get5, set)
}

// NewTraversal6 creates a Traversal over six targets.
func NewTraversal6[S, A any](get1, get2, get3, get4, get5, get6 func(S) A, set func(S, A, A, A, A, A, A) S) Traversal[S, A] {
	return NewPTraversal6(get1, get2, get3, get4, get5, get6, set)
}

// ModifyIdF transforms every target inside the identity context.
func (t PTraversal[S, T, A, B]) ModifyIdF(s S, fn func(A) identity.Identity[B]) identity.Identity[T] {
	return t.modifyIdF(s, fn)
}

// ModifyResultF transforms every target inside the result context; the
// first failure in target order wins.
func (t PTraversal[S, T, A, B]) ModifyResultF(s S, fn func(A) result.Result[B]) result.Result[T] {
	return t.modifyResultF(s, fn)
}

// ModifyOptionF transforms every target inside the option context; any
// absent replacement makes the whole absent.
func (t PTraversal[S, T, A, B]) ModifyOptionF(s S, fn func(A) option.Option[B]) option.Option[T] {
	return t.modifyOptionF(s, fn)
}

// ModifySliceF transforms every target inside the sequence context, yielding
// one rebuilt whole per combination of alternatives. Earlier targets vary
// slowest.
func (t PTraversal[S, T, A, B]) ModifySliceF(s S, fn func(A) []B) []T {
	return t.modifySliceF(s, fn)
}

// ModifyStreamF transforms every target inside the stream context.
func (t PTraversal[S, T, A, B]) ModifyStreamF(s S, fn func(A) *stream.Stream[B]) *stream.Stream[T] {
	return t.modifyStreamF(s, fn)
}

// ModifyValidatedF transforms every target inside the validation context.
// Every target is visited and failures accumulate left to right through the
// semigroup.
func (t PTraversal[S, T, A, B]) ModifyValidatedF(s S, sg monoid.Semigroup[error], fn func(A) validated.Validated[error, B]) validated.Validated[error, T] {
	return t.modifyValidatedF(s, sg, fn)
}

// Modify transforms every target.
func (t PTraversal[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return t.modifyIdF(s, func(a A) identity.Identity[B] {
		return identity.Of(fn(a))
	}).Get()
}

// Set replaces every target with the same value.
func (t PTraversal[S, T, A, B]) Set(s S, b B) T {
	return t.Modify(s, func(A) B { return b })
}

// GetAll returns every target in order.
func (t PTraversal[S, T, A, B]) GetAll(s S) []A {
	return t.getAll(s)
}

// Fold combines every target with a monoid over the target type.
func (t PTraversal[S, T, A, B]) Fold(s S, m monoid.Monoid[A]) A {
	return t.AsFold().Fold(s, m)
}

// Find returns the first target satisfying the predicate.
func (t PTraversal[S, T, A, B]) Find(s S, predicate func(A) bool) option.Option[A] {
	return t.AsFold().Find(s, predicate)
}

// HeadOption returns the first target, if any.
func (t PTraversal[S, T, A, B]) HeadOption(s S) option.Option[A] {
	return t.AsFold().HeadOption(s)
}

// Exist reports whether at least one target satisfies the predicate.
func (t PTraversal[S, T, A, B]) Exist(s S, predicate func(A) bool) bool {
	return t.AsFold().Exist(s, predicate)
}

// All reports whether every target satisfies the predicate.
func (t PTraversal[S, T, A, B]) All(s S, predicate func(A) bool) bool {
	return t.AsFold().All(s, predicate)
}

// AsFold views the Traversal as a Fold over the same targets.
func (t PTraversal[S, T, A, B]) AsFold() Fold[S, A] {
	return NewFold(t.getAll)
}

// AsSetter views the Traversal as a Setter.
func (t PTraversal[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return NewPSetter(t.Modify)
}

// ComposeTraversal composes two Traversals, staying a Traversal. The outer
// targets are visited in order and each expands to the inner targets.
func ComposeTraversal[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return PTraversal[S, T, C, D]{
		modifyIdF: func(s S, fn func(C) identity.Identity[D]) identity.Identity[T] {
			return outer.modifyIdF(s, func(a A) identity.Identity[B] {
				return inner.modifyIdF(a, fn)
			})
		},
		modifyResultF: func(s S, fn func(C) result.Result[D]) result.Result[T] {
			return outer.modifyResultF(s, func(a A) result.Result[B] {
				return inner.modifyResultF(a, fn)
			})
		},
		modifyOptionF: func(s S, fn func(C) option.Option[D]) option.Option[T] {
			return outer.modifyOptionF(s, func(a A) option.Option[B] {
				return inner.modifyOptionF(a, fn)
			})
		},
		modifySliceF: func(s S, fn func(C) []D) []T {
			return outer.modifySliceF(s, func(a A) []B {
				return inner.modifySliceF(a, fn)
			})
		},
		modifyStreamF: func(s S, fn func(C) *stream.Stream[D]) *stream.Stream[T] {
			return outer.modifyStreamF(s, func(a A) *stream.Stream[B] {
				return inner.modifyStreamF(a, fn)
			})
		},
		modifyValidatedF: func(s S, sg monoid.Semigroup[error], fn func(C) validated.Validated[error, D]) validated.Validated[error, T] {
			return outer.modifyValidatedF(s, sg, func(a A) validated.Validated[error, B] {
				return inner.modifyValidatedF(a, sg, fn)
			})
		},
		getAll: func(s S) []C {
			var out []C
			for _, a := range outer.getAll(s) {
				out = append(out, inner.getAll(a)...)
			}
			return out
		},
	}
}

// ComposeTraversalIso composes a Traversal with an Iso, staying a Traversal.
func ComposeTraversalIso[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PIso[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer, inner.AsTraversal())
}

// ComposeTraversalLens composes a Traversal with a Lens, staying a
// Traversal.
func ComposeTraversalLens[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PLens[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer, inner.AsTraversal())
}

// ComposeTraversalPrism composes a Traversal with a Prism, staying a
// Traversal.
func ComposeTraversalPrism[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PPrism[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer, inner.AsTraversal())
}

// ComposeTraversalOptional composes a Traversal with an Optional, staying a
// Traversal.
func ComposeTraversalOptional[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner POptional[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer, inner.AsTraversal())
}

// ComposeTraversalSetter composes a Traversal with a Setter, degrading to a
// Setter.
func ComposeTraversalSetter[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposeTraversalGetter composes a Traversal with a Getter, degrading to a
// Fold.
func ComposeTraversalGetter[S, T, A, B, C any](outer PTraversal[S, T, A, B], inner Getter[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeTraversalFold composes a Traversal with a Fold, degrading to a
// Fold.
func ComposeTraversalFold[S, T, A, B, C any](outer PTraversal[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// SumTraversal dispatches on an either-typed whole.
func SumTraversal[S, S1, T, T1, A, B any](t1 PTraversal[S, T, A, B], t2 PTraversal[S1, T1, A, B]) PTraversal[either.Either[S, S1], either.Either[T, T1], A, B] {
	return PTraversal[either.Either[S, S1], either.Either[T, T1], A, B]{
		modifyIdF: func(e either.Either[S, S1], fn func(A) identity.Identity[B]) identity.Identity[either.Either[T, T1]] {
			return either.Fold(e,
				func(s S) identity.Identity[either.Either[T, T1]] {
					return identity.Map(t1.modifyIdF(s, fn), either.Left[T, T1])
				},
				func(s1 S1) identity.Identity[either.Either[T, T1]] {
					return identity.Map(t2.modifyIdF(s1, fn), either.Right[T, T1])
				},
			)
		},
		modifyResultF: func(e either.Either[S, S1], fn func(A) result.Result[B]) result.Result[either.Either[T, T1]] {
			return either.Fold(e,
				func(s S) result.Result[either.Either[T, T1]] {
					return result.Map(t1.modifyResultF(s, fn), either.Left[T, T1])
				},
				func(s1 S1) result.Result[either.Either[T, T1]] {
					return result.Map(t2.modifyResultF(s1, fn), either.Right[T, T1])
				},
			)
		},
		modifyOptionF: func(e either.Either[S, S1], fn func(A) option.Option[B]) option.Option[either.Either[T, T1]] {
			return either.Fold(e,
				func(s S) option.Option[either.Either[T, T1]] {
					return option.Map(t1.modifyOptionF(s, fn), either.Left[T, T1])
				},
				func(s1 S1) option.Option[either.Either[T, T1]] {
					return option.Map(t2.modifyOptionF(s1, fn), either.Right[T, T1])
				},
			)
		},
		modifySliceF: func(e either.Either[S, S1], fn func(A) []B) []either.Either[T, T1] {
			return either.Fold(e,
				func(s S) []either.Either[T, T1] {
					ts := t1.modifySliceF(s, fn)
					out := make([]either.Either[T, T1], len(ts))
					for n, t := range ts {
						out[n] = either.Left[T, T1](t)
					}
					return out
				},
				func(s1 S1) []either.Either[T, T1] {
					ts := t2.modifySliceF(s1, fn)
					out := make([]either.Either[T, T1], len(ts))
					for n, t := range ts {
						out[n] = either.Right[T, T1](t)
					}
					return out
				},
			)
		},
		modifyStreamF: func(e either.Either[S, S1], fn func(A) *stream.Stream[B]) *stream.Stream[either.Either[T, T1]] {
			return either.Fold(e,
				func(s S) *stream.Stream[either.Either[T, T1]] {
					return stream.Map(t1.modifyStreamF(s, fn), either.Left[T, T1])
				},
				func(s1 S1) *stream.Stream[either.Either[T, T1]] {
					return stream.Map(t2.modifyStreamF(s1, fn), either.Right[T, T1])
				},
			)
		},
		modifyValidatedF: func(e either.Either[S, S1], sg monoid.Semigroup[error], fn func(A) validated.Validated[error, B]) validated.Validated[error, either.Either[T, T1]] {
			return either.Fold(e,
				func(s S) validated.Validated[error, either.Either[T, T1]] {
					return validated.Map(t1.modifyValidatedF(s, sg, fn), either.Left[T, T1])
				},
				func(s1 S1) validated.Validated[error, either.Either[T, T1]] {
					return validated.Map(t2.modifyValidatedF(s1, sg, fn), either.Right[T, T1])
				},
			)
		},
		getAll: func(e either.Either[S, S1]) []A {
			return either.Fold(e, t1.getAll, t2.getAll)
		},
	}
}

// PCodiagonalTraversal focuses the single value carried by either side of an
// either-typed whole, keeping the side it came from.
func PCodiagonalTraversal[S, T any]() PTraversal[either.Either[S, S], either.Either[T, T], S, T] {
	return PTraversal[either.Either[S, S], either.Either[T, T], S, T]{
		modifyIdF: func(e either.Either[S, S], fn func(S) identity.Identity[T]) identity.Identity[either.Either[T, T]] {
			return either.Fold(e,
				func(s S) identity.Identity[either.Either[T, T]] {
					return identity.Map(fn(s), either.Left[T, T])
				},
				func(s S) identity.Identity[either.Either[T, T]] {
					return identity.Map(fn(s), either.Right[T, T])
				},
			)
		},
		modifyResultF: func(e either.Either[S, S], fn func(S) result.Result[T]) result.Result[either.Either[T, T]] {
			return either.Fold(e,
				func(s S) result.Result[either.Either[T, T]] {
					return result.Map(fn(s), either.Left[T, T])
				},
				func(s S) result.Result[either.Either[T, T]] {
					return result.Map(fn(s), either.Right[T, T])
				},
			)
		},
		modifyOptionF: func(e either.Either[S, S], fn func(S) option.Option[T]) option.Option[either.Either[T, T]] {
			return either.Fold(e,
				func(s S) option.Option[either.Either[T, T]] {
					return option.Map(fn(s), either.Left[T, T])
				},
				func(s S) option.Option[either.Either[T, T]] {
					return option.Map(fn(s), either.Right[T, T])
				},
			)
		},
		modifySliceF: func(e either.Either[S, S], fn func(S) []T) []either.Either[T, T] {
			return either.Fold(e,
				func(s S) []either.Either[T, T] {
					ts := fn(s)
					out := make([]either.Either[T, T], len(ts))
					for n, t := range ts {
						out[n] = either.Left[T, T](t)
					}
					return out
				},
				func(s S) []either.Either[T, T] {
					ts := fn(s)
					out := make([]either.Either[T, T], len(ts))
					for n, t := range ts {
						out[n] = either.Right[T, T](t)
					}
					return out
				},
			)
		},
		modifyStreamF: func(e either.Either[S, S], fn func(S) *stream.Stream[T]) *stream.Stream[either.Either[T, T]] {
			return either.Fold(e,
				func(s S) *stream.Stream[either.Either[T, T]] {
					return stream.Map(fn(s), either.Left[T, T])
				},
				func(s S) *stream.Stream[either.Either[T, T]] {
					return stream.Map(fn(s), either.Right[T, T])
				},
			)
		},
		modifyValidatedF: func(e either.Either[S, S], _ monoid.Semigroup[error], fn func(S) validated.Validated[error, T]) validated.Validated[error, either.Either[T, T]] {
			return either.Fold(e,
				func(s S) validated.Validated[error, either.Either[T, T]] {
					return validated.Map(fn(s), either.Left[T, T])
				},
				func(s S) validated.Validated[error, either.Either[T, T]] {
					return validated.Map(fn(s), either.Right[T, T])
				},
			)
		},
		getAll: func(e either.Either[S, S]) []S {
			return []S{either.Fold(e,
				func(s S) S { return s },
				func(s S) S { return s },
			)}
		},
	}
}

// CodiagonalTraversal is the monomorphic PCodiagonalTraversal.
func CodiagonalTraversal[S any]() Traversal[either.Either[S, S], S] {
	return PCodiagonalTraversal[S, S]()
}

// IdTraversal returns the identity Traversal with the whole as its single
// target.
func IdTraversal[S any]() Traversal[S, S] {
	return Id[S]().AsTraversal()
}
