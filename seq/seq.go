// Package seq offers an immutable ordered sequence with eager and lazy
// functional helpers.
package seq

import (
	"fmt"
	"strings"
)

// Seq is an immutable, finite, ordered sequence of values. Constructors copy
// their input and every operation returns a fresh Seq, so a Seq can be shared
// freely once built. The zero value is the empty sequence.
type Seq[T any] []T

// Of constructs a Seq from the provided values.
func Of[T any](values ...T) Seq[T] {
	return From(values)
}

// From constructs a Seq from a slice. The slice is copied so later mutations
// of the argument cannot be observed through the Seq.
func From[T any](values []T) Seq[T] {
	if len(values) == 0 {
		return Seq[T]{}
	}
	out := make(Seq[T], len(values))
	copy(out, values)
	return out
}

// Empty constructs an empty Seq for the provided type.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Len returns the number of elements.
func (s Seq[T]) Len() int {
	return len(s)
}

// IsEmpty reports whether the sequence has no elements.
func (s Seq[T]) IsEmpty() bool {
	return len(s) == 0
}

// Values returns the elements as a plain slice. The returned slice shares no
// backing array with the Seq.
func (s Seq[T]) Values() []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Append returns a new Seq with v added at the end. The receiver is untouched.
func (s Seq[T]) Append(v T) Seq[T] {
	out := make(Seq[T], len(s)+1)
	copy(out, s)
	out[len(s)] = v
	return out
}

// Concat returns a new Seq holding the receiver's elements followed by
// other's, preserving order on both sides.
func (s Seq[T]) Concat(other Seq[T]) Seq[T] {
	if len(s) == 0 && len(other) == 0 {
		return Seq[T]{}
	}
	out := make(Seq[T], 0, len(s)+len(other))
	out = append(out, s...)
	out = append(out, other...)
	return out
}

// Filter keeps values satisfying predicate, preserving their relative order.
func (s Seq[T]) Filter(predicate func(T) bool) Seq[T] {
	out := make(Seq[T], 0, len(s))
	for _, v := range s {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reverse returns a new Seq with the elements in opposite order.
func (s Seq[T]) Reverse() Seq[T] {
	out := make(Seq[T], len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Take returns the first n elements, or the whole sequence when n exceeds its
// length.
func (s Seq[T]) Take(n int) Seq[T] {
	if n <= 0 {
		return Seq[T]{}
	}
	if n > len(s) {
		n = len(s)
	}
	return From(s[:n])
}

// Drop skips the first n elements.
func (s Seq[T]) Drop(n int) Seq[T] {
	if n <= 0 {
		return From(s)
	}
	if n >= len(s) {
		return Seq[T]{}
	}
	return From(s[n:])
}

// String implements fmt.Stringer using the List(a,b,c) rendering. An empty
// sequence renders as List().
func (s Seq[T]) String() string {
	var b strings.Builder
	b.WriteString("List(")
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(')')
	return b.String()
}

// Map transforms each element using fn and returns a new Seq with the same
// length as the input.
func Map[A any, B any](s Seq[A], fn func(A) B) Seq[B] {
	out := make(Seq[B], len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// FlatMap applies fn to each element and concatenates the resulting sequences.
func FlatMap[A any, B any](s Seq[A], fn func(A) Seq[B]) Seq[B] {
	out := Seq[B]{}
	for _, v := range s {
		out = append(out, fn(v)...)
	}
	return out
}

// FoldLeft reduces the sequence from left to right using the provided
// accumulator.
func FoldLeft[A any, B any](s Seq[A], init B, fn func(B, A) B) B {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce applies fn across elements left to right, returning false when the
// sequence is empty.
func Reduce[T any](s Seq[T], fn func(T, T) T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	acc := s[0]
	for _, v := range s[1:] {
		acc = fn(acc, v)
	}
	return acc, true
}

// Find returns the first element satisfying predicate.
func Find[T any](s Seq[T], predicate func(T) bool) (T, bool) {
	for _, v := range s {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether any element satisfies predicate.
func Any[T any](s Seq[T], predicate func(T) bool) bool {
	for _, v := range s {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether all elements satisfy predicate.
func All[T any](s Seq[T], predicate func(T) bool) bool {
	for _, v := range s {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Equal reports whether two sequences hold the same elements in the same
// order.
func Equal[T comparable](a, b Seq[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
