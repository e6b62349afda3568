// Package monoid provides semigroups and monoids used to fold optic targets.
package monoid

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/authcorp/optics/option"
)

// Semigroup combines two values of a type with an associative operation.
type Semigroup[A any] struct {
	sum func(A, A) A
}

// NewSemigroup creates a Semigroup from an associative combine function.
func NewSemigroup[A any](sum func(A, A) A) Semigroup[A] {
	return Semigroup[A]{sum: sum}
}

// Sum combines two values.
func (s Semigroup[A]) Sum(a1, a2 A) A {
	return s.sum(a1, a2)
}

// Monoid is a Semigroup with a neutral element.
type Monoid[A any] struct {
	Semigroup[A]
	zero func() A
}

// New creates a Monoid from a neutral element constructor and an associative
// combine function.
func New[A any](zero func() A, sum func(A, A) A) Monoid[A] {
	return Monoid[A]{Semigroup: NewSemigroup(sum), zero: zero}
}

// Zero returns the neutral element.
func (m Monoid[A]) Zero() A {
	return m.zero()
}

// Slice concatenates slices, with the empty slice as neutral element.
func Slice[A any]() Monoid[[]A] {
	return New(
		func() []A { return nil },
		func(a1, a2 []A) []A {
			out := make([]A, 0, len(a1)+len(a2))
			out = append(out, a1...)
			return append(out, a2...)
		},
	)
}

// FirstOption keeps the first present value, with None as neutral element.
func FirstOption[A any]() Monoid[option.Option[A]] {
	return New(
		option.None[A],
		func(o1, o2 option.Option[A]) option.Option[A] { return o1.OrElse(o2) },
	)
}

// Or combines booleans with logical or, with false as neutral element.
func Or() Monoid[bool] {
	return New(
		func() bool { return false },
		func(b1, b2 bool) bool { return b1 || b2 },
	)
}

// And combines booleans with logical and, with true as neutral element.
func And() Monoid[bool] {
	return New(
		func() bool { return true },
		func(b1, b2 bool) bool { return b1 && b2 },
	)
}

// Min keeps the smaller value; the given upper bound is the neutral element.
func Min[A constraints.Ordered](bound A) Monoid[A] {
	return New(
		func() A { return bound },
		func(a1, a2 A) A {
			if a2 < a1 {
				return a2
			}
			return a1
		},
	)
}

// Max keeps the larger value; the given lower bound is the neutral element.
func Max[A constraints.Ordered](bound A) Monoid[A] {
	return New(
		func() A { return bound },
		func(a1, a2 A) A {
			if a2 > a1 {
				return a2
			}
			return a1
		},
	)
}

// MinInt keeps the smaller int.
func MinInt() Monoid[int] {
	return Min(math.MaxInt)
}

// MaxInt keeps the larger int.
func MaxInt() Monoid[int] {
	return Max(math.MinInt)
}

// Concat joins strings, with the empty string as neutral element.
func Concat() Monoid[string] {
	return New(
		func() string { return "" },
		func(s1, s2 string) string { return s1 + s2 },
	)
}

// JoinErrors combines errors with errors.Join.
func JoinErrors() Semigroup[error] {
	return NewSemigroup(func(e1, e2 error) error { return errors.Join(e1, e2) })
}
