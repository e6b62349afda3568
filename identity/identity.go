// Package identity provides a single-value wrapper used as the effect-free
// context for effectful operations.
package identity

// Identity wraps exactly one value.
type Identity[A any] struct {
	value A
}

// Of wraps a value.
func Of[A any](value A) Identity[A] {
	return Identity[A]{value: value}
}

// Get returns the wrapped value.
func (i Identity[A]) Get() A {
	return i.value
}

// Map applies a transformation function to the wrapped value.
func Map[A, B any](i Identity[A], fn func(A) B) Identity[B] {
	return Of(fn(i.value))
}
