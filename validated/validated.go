// Package validated provides a validation result whose failures can be
// accumulated through a caller-supplied semigroup.
package validated

import (
	"github.com/authcorp/optics/monoid"
	"github.com/authcorp/optics/result"
)

// Validated represents a validation result: a success value or a single
// failure value. Multiple failures are combined into one through the
// Semigroup passed to Ap.
type Validated[E, A any] struct {
	value A
	err   E
	valid bool
}

// Valid creates a valid result.
func Valid[E, A any](value A) Validated[E, A] {
	return Validated[E, A]{value: value, valid: true}
}

// Invalid creates an invalid result with a failure value.
func Invalid[E, A any](err E) Validated[E, A] {
	return Validated[E, A]{err: err, valid: false}
}

// IsValid returns true if the validation passed.
func (v Validated[E, A]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if the validation failed.
func (v Validated[E, A]) IsInvalid() bool {
	return !v.valid
}

// Unwrap returns the success value or panics if invalid.
func (v Validated[E, A]) Unwrap() A {
	if !v.valid {
		panic("called Unwrap on Invalid")
	}
	return v.value
}

// UnwrapError returns the failure value or panics if valid.
func (v Validated[E, A]) UnwrapError() E {
	if v.valid {
		panic("called UnwrapError on Valid")
	}
	return v.err
}

// UnwrapOr returns the success value or a default.
func (v Validated[E, A]) UnwrapOr(defaultValue A) A {
	if v.valid {
		return v.value
	}
	return defaultValue
}

// Map applies a transformation function to the success value.
func Map[E, A, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.valid {
		return Invalid[E, B](v.err)
	}
	return Valid[E, B](fn(v.value))
}

// MapError applies a function to the failure value.
func MapError[E, F, A any](v Validated[E, A], fn func(E) F) Validated[F, A] {
	if v.valid {
		return Valid[F, A](v.value)
	}
	return Invalid[F, A](fn(v.err))
}

// Fold executes one of two functions based on validity and returns the result.
func Fold[E, A, B any](v Validated[E, A], onInvalid func(E) B, onValid func(A) B) B {
	if v.valid {
		return onValid(v.value)
	}
	return onInvalid(v.err)
}

// Ap applies a validated function to a validated value, accumulating
// failures with the semigroup. When both sides fail, the function-side
// failure is combined to the left of the value-side failure. Both sides are
// always evaluated; there is no short-circuit.
func Ap[E, A, B any](sg monoid.Semigroup[E], f Validated[E, func(A) B], v Validated[E, A]) Validated[E, B] {
	if !f.valid {
		if !v.valid {
			return Invalid[E, B](sg.Sum(f.err, v.err))
		}
		return Invalid[E, B](f.err)
	}
	if !v.valid {
		return Invalid[E, B](v.err)
	}
	return Valid[E, B](f.value(v.value))
}

// ToResult converts a Validated over error to a Result.
func ToResult[A any](v Validated[error, A]) result.Result[A] {
	if v.valid {
		return result.Ok(v.value)
	}
	return result.Err[A](v.err)
}

// FromResult converts a Result to a Validated over error.
func FromResult[A any](r result.Result[A]) Validated[error, A] {
	if r.IsOk() {
		return Valid[error, A](r.Unwrap())
	}
	return Invalid[error, A](r.UnwrapErr())
}
