// Package monoid defines combination witnesses: an associative binary
// operation over a type paired with the identity value for that operation.
//
// Witnesses are plain values, so callers can pass them around, build their own
// with New, and fold sequences through them. Associativity and the two-sided
// identity are contracts on the combine function, not enforced by the type
// system; the stock witnesses are verified in laws_monoid_test.go.
//
// Example:
//
//	total := monoid.Fold(seq.Of(1, 2, 3, 4, 5), monoid.Sum[int]())
//	fmt.Println(total) // 15
package monoid

import (
	"strings"

	"github.com/charmingruby/algebra/seq"
)

// Number constrains the types accepted by the arithmetic witnesses.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Monoid is a combination witness for T: an associative combine function and
// its identity value. The zero value is unusable; construct witnesses with New
// or one of the stock constructors.
type Monoid[T any] struct {
	combine func(T, T) T
	empty   T
}

// New constructs a witness from a combine function and its identity value.
// combine must be associative and empty must be neutral on both sides;
// violating either breaks the fold helpers in caller-visible ways.
func New[T any](combine func(T, T) T, empty T) Monoid[T] {
	if combine == nil {
		panic("monoid: nil combine function")
	}
	return Monoid[T]{combine: combine, empty: empty}
}

// Combine applies the witness's operation to x and y.
func (m Monoid[T]) Combine(x, y T) T {
	return m.combine(x, y)
}

// Empty returns the witness's identity value.
func (m Monoid[T]) Empty() T {
	return m.empty
}

// Sum is the addition witness: combine adds, identity is zero.
func Sum[T Number]() Monoid[T] {
	return New(func(x, y T) T { return x + y }, 0)
}

// Product is the multiplication witness: combine multiplies, identity is one.
func Product[T Number]() Monoid[T] {
	return New(func(x, y T) T { return x * y }, 1)
}

// Concat is the sequence-concatenation witness: combine appends the second
// sequence after the first, identity is the empty sequence.
func Concat[T any]() Monoid[seq.Seq[T]] {
	return New(func(x, y seq.Seq[T]) seq.Seq[T] { return x.Concat(y) }, seq.Empty[T]())
}

// Join is the string-concatenation witness with the empty string as identity.
func Join() Monoid[string] {
	return New(func(x, y string) string { return x + y }, "")
}

// JoinWith combines strings with sep between non-empty operands. The identity
// is the empty string.
func JoinWith(sep string) Monoid[string] {
	return New(func(x, y string) string {
		if x == "" {
			return y
		}
		if y == "" {
			return x
		}
		var b strings.Builder
		b.WriteString(x)
		b.WriteString(sep)
		b.WriteString(y)
		return b.String()
	}, "")
}

// All is the conjunction witness: combine is logical AND, identity is true.
func All() Monoid[bool] {
	return New(func(x, y bool) bool { return x && y }, true)
}

// Any is the disjunction witness: combine is logical OR, identity is false.
func Any() Monoid[bool] {
	return New(func(x, y bool) bool { return x || y }, false)
}

// Fold combines all elements of s left to right through m. An empty sequence
// folds to the witness identity, making Fold total.
func Fold[T any](s seq.Seq[T], m Monoid[T]) T {
	return seq.FoldLeft(s, m.empty, m.combine)
}

// Reduce combines the elements of s left to right without involving the
// identity, returning false when s is empty. Use it when an empty input should
// be detected by the caller instead of collapsing to the identity.
func Reduce[T any](s seq.Seq[T], m Monoid[T]) (T, bool) {
	return seq.Reduce(s, m.combine)
}

// FoldMap maps each element of s into the witness's carrier type and combines
// the results. An empty sequence yields the identity.
func FoldMap[A any, B any](s seq.Seq[A], fn func(A) B, m Monoid[B]) B {
	acc := m.empty
	for _, v := range s {
		acc = m.combine(acc, fn(v))
	}
	return acc
}
