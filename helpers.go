package optics

import (
	"github.com/authcorp/optics/identity"
	"github.com/authcorp/optics/option"
	"github.com/authcorp/optics/result"
	"github.com/authcorp/optics/stream"
)

// The ap helpers combine a wrapped function with a wrapped value inside one
// effect context. The function side is resolved first, so for failing
// effects the earliest target's failure wins. The accumulating counterpart
// for validation is validated.Ap.

func apIdentity[A, B any](f identity.Identity[func(A) B], v identity.Identity[A]) identity.Identity[B] {
	return identity.Of(f.Get()(v.Get()))
}

func apResult[A, B any](f result.Result[func(A) B], v result.Result[A]) result.Result[B] {
	return result.FlatMap(f, func(fn func(A) B) result.Result[B] {
		return result.Map(v, fn)
	})
}

func apOption[A, B any](f option.Option[func(A) B], v option.Option[A]) option.Option[B] {
	return option.FlatMap(f, func(fn func(A) B) option.Option[B] {
		return option.Map(v, fn)
	})
}

// apSlice is the cartesian combination, function side major.
func apSlice[A, B any](f []func(A) B, v []A) []B {
	out := make([]B, 0, len(f)*len(v))
	for _, fn := range f {
		for _, a := range v {
			out = append(out, fn(a))
		}
	}
	return out
}

func apStream[A, B any](f *stream.Stream[func(A) B], v *stream.Stream[A]) *stream.Stream[B] {
	return stream.FlatMap(f, func(fn func(A) B) *stream.Stream[B] {
		return stream.Map(v, fn)
	})
}
