// Package validated accumulates multiple errors while still returning values.
//
// Use it for input validation, DTO decoding, and config parsing where all
// issues should be reported at once instead of short-circuiting on the first
// failure. Errors are held in an immutable seq.Seq and merged through the
// concatenation monoid, so accumulation order follows evaluation order.
package validated

import (
	"github.com/charmingruby/algebra/either"
	"github.com/charmingruby/algebra/monoid"
	"github.com/charmingruby/algebra/seq"
)

// Validated wraps either a successful value or a sequence of validation
// errors.
type Validated[E any, T any] struct {
	value  T
	errors seq.Seq[E]
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated aggregating the provided errors.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	return Validated[E, T]{errors: seq.From(errs)}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return v.errors.IsEmpty()
}

// Errors returns the collected errors. Seq is immutable, so the receiver's
// state cannot be reached through the return value.
func (v Validated[E, T]) Errors() seq.Seq[E] {
	return v.errors
}

// UnsafeValue returns the stored value even when invalid.
func (v Validated[E, T]) UnsafeValue() T {
	return v.value
}

// ToEither collapses the Validated into an Either carrying the accumulated
// errors on the left.
func (v Validated[E, T]) ToEither() either.Either[seq.Seq[E], T] {
	if v.IsValid() {
		return either.Right[seq.Seq[E]](v.value)
	}
	return either.Left[seq.Seq[E], T](v.errors)
}

// Map transforms the stored value when valid.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E, B](fn(v.value))
}

// Pair holds the two values combined by Zip2.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Zip2 combines two Validated values, accumulating errors from both sides via
// the concatenation monoid.
func Zip2[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, Pair[A, B]] {
	if a.IsValid() && b.IsValid() {
		return Valid[E](Pair[A, B]{First: a.value, Second: b.value})
	}
	merged := monoid.Concat[E]().Combine(a.errors, b.errors)
	return Validated[E, Pair[A, B]]{errors: merged}
}

// Sequence collapses a sequence of Validated values, accumulating every error
// or producing the sequence of values when all succeeded.
func Sequence[E any, T any](items seq.Seq[Validated[E, T]]) Validated[E, seq.Seq[T]] {
	values := seq.Empty[T]()
	errs := seq.Empty[E]()
	concat := monoid.Concat[E]()
	for _, item := range items {
		if item.IsValid() {
			values = values.Append(item.value)
			continue
		}
		errs = concat.Combine(errs, item.errors)
	}
	if !errs.IsEmpty() {
		return Validated[E, seq.Seq[T]]{errors: errs}
	}
	return Valid[E](values)
}

// Traverse maps the input sequence to Validated values and sequences them.
func Traverse[E any, A any, B any](items seq.Seq[A], fn func(A) Validated[E, B]) Validated[E, seq.Seq[B]] {
	return Sequence(seq.Map(items, fn))
}
