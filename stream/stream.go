// Package stream provides lazy, potentially infinite sequences with
// memoized tails.
package stream

import (
	"sync"

	"github.com/authcorp/optics/option"
)

// Stream is a lazy, potentially infinite sequence. Each tail is evaluated
// at most once and memoized; the stream can be re-iterated from any cell.
type Stream[T any] struct {
	head     T
	tail     func() *Stream[T]
	tailOnce sync.Once
	tailVal  *Stream[T]
	empty    bool
}

// Empty returns an empty stream.
func Empty[T any]() *Stream[T] {
	return &Stream[T]{empty: true}
}

// Cons creates a stream with a head and a lazy tail.
func Cons[T any](head T, tail func() *Stream[T]) *Stream[T] {
	return &Stream[T]{head: head, tail: tail}
}

// Of creates a stream from the given elements.
func Of[T any](values ...T) *Stream[T] {
	return FromSlice(values)
}

// FromSlice creates a stream from a slice.
func FromSlice[T any](slice []T) *Stream[T] {
	if len(slice) == 0 {
		return Empty[T]()
	}
	return Cons(slice[0], func() *Stream[T] {
		return FromSlice(slice[1:])
	})
}

// IsEmpty returns true if the stream is empty.
func (s *Stream[T]) IsEmpty() bool {
	return s == nil || s.empty
}

// Head returns the first element.
func (s *Stream[T]) Head() option.Option[T] {
	if s.IsEmpty() {
		return option.None[T]()
	}
	return option.Some(s.head)
}

// Tail returns the rest of the stream (memoized).
func (s *Stream[T]) Tail() *Stream[T] {
	if s.IsEmpty() || s.tail == nil {
		return Empty[T]()
	}
	s.tailOnce.Do(func() {
		s.tailVal = s.tail()
	})
	return s.tailVal
}

// Map transforms stream elements lazily.
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	if s.IsEmpty() {
		return Empty[U]()
	}
	return Cons(fn(s.head), func() *Stream[U] {
		return Map(s.Tail(), fn)
	})
}

// Filter keeps elements matching the predicate.
func Filter[T any](s *Stream[T], pred func(T) bool) *Stream[T] {
	if s.IsEmpty() {
		return Empty[T]()
	}
	if pred(s.head) {
		return Cons(s.head, func() *Stream[T] {
			return Filter(s.Tail(), pred)
		})
	}
	return Filter(s.Tail(), pred)
}

// Take takes the first n elements. The nth cell never forces the tail
// beyond it, so taking from an infinite stream demands exactly n elements.
func Take[T any](s *Stream[T], n int) *Stream[T] {
	if s.IsEmpty() || n <= 0 {
		return Empty[T]()
	}
	return Cons(s.head, func() *Stream[T] {
		if n <= 1 {
			return Empty[T]()
		}
		return Take(s.Tail(), n-1)
	})
}

// Drop drops the first n elements.
func Drop[T any](s *Stream[T], n int) *Stream[T] {
	if s.IsEmpty() || n <= 0 {
		return s
	}
	return Drop(s.Tail(), n-1)
}

// Fold reduces the stream to a single value.
func Fold[T, U any](s *Stream[T], initial U, fn func(U, T) U) U {
	if s.IsEmpty() {
		return initial
	}
	return Fold(s.Tail(), fn(initial, s.head), fn)
}

// ToSlice materializes the stream into a slice.
func ToSlice[T any](s *Stream[T]) []T {
	var result []T
	for !s.IsEmpty() {
		result = append(result, s.head)
		s = s.Tail()
	}
	return result
}

// Iterate creates an infinite stream from a seed and a step function.
func Iterate[T any](seed T, fn func(T) T) *Stream[T] {
	return Cons(seed, func() *Stream[T] {
		return Iterate(fn(seed), fn)
	})
}

// Generate creates an infinite stream from a generator function.
func Generate[T any](gen func() T) *Stream[T] {
	return Cons(gen(), func() *Stream[T] {
		return Generate(gen)
	})
}

// FlatMap maps and flattens streams.
func FlatMap[T, U any](s *Stream[T], fn func(T) *Stream[U]) *Stream[U] {
	if s.IsEmpty() {
		return Empty[U]()
	}
	return Concat(fn(s.head), func() *Stream[U] {
		return FlatMap(s.Tail(), fn)
	})
}

// Concat appends a lazy continuation after the stream.
func Concat[T any](s *Stream[T], cont func() *Stream[T]) *Stream[T] {
	if s.IsEmpty() {
		return cont()
	}
	return Cons(s.head, func() *Stream[T] {
		return Concat(s.Tail(), cont)
	})
}
