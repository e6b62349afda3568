// Package optics provides composable optics over immutable values: Iso,
// Lens, Prism, Optional, Traversal, Setter, Getter and Fold.
//
// An optic describes how to view and update a part A embedded inside a
// whole S. The polymorphic P-prefixed kinds carry four type parameters
// [S, T, A, B], where replacing an A with a B turns the whole S into a T;
// the unprefixed kinds are aliases fixing S = T and A = B. Optics are
// plain immutable values: build one once from a couple of functions, then
// apply it from as many goroutines as needed.
//
// Kinds compose with kinds, producing the weakest capability both sides
// support: for example ComposeLens keeps a Lens, while ComposeLensPrism
// degrades to a POptional. Id returns the identity Iso, a two-sided unit
// for every kind's composition.
package optics
