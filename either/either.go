// Package either provides a two-variant disjunction type.
//
// By convention Left carries the alternative (failure, fallback, message) and
// Right carries the main value; Map and FlatMap are right-biased. Either
// combinators uphold the functor laws (see laws_either_test.go) so
// transformations stay predictable when chained.
//
// Example:
//
//	e := either.Right[string](42)
//	doubled := either.Map(e, func(v int) int { return v * 2 })
//	fmt.Println(doubled) // Right(84)
package either

import "fmt"

// Either holds exactly one of a left value of type L or a right value of type
// R. The zero value is Left holding L's zero value. Stored values are never
// mutated; combinators allocate fresh Eithers.
type Either[L any, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an Either carrying the alternative value.
//
// Example:
//
//	e := either.Left[string, int]("No value found")
func Left[L any, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right constructs an Either carrying the main value.
//
// Example:
//
//	e := either.Right[string](42)
func Right[L any, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsRight reports whether the Either carries a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether the Either carries a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Get returns the right value along with a boolean indicating whether it is
// present.
func (e Either[L, R]) Get() (R, bool) {
	return e.right, e.isRight
}

// GetLeft returns the left value along with a boolean indicating whether it is
// present.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// UnsafeGet returns the right value or panics when the Either is Left. Only
// for call sites where right-ness is guaranteed.
func (e Either[L, R]) UnsafeGet() R {
	if !e.isRight {
		panic(fmt.Sprintf("either: UnsafeGet on Left(%v)", e.left))
	}
	return e.right
}

// GetOrElse returns the right value when present, otherwise the provided
// fallback.
//
// Example:
//
//	port := cfg.Port().GetOrElse(8080)
func (e Either[L, R]) GetOrElse(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// GetOrElseFunc behaves like GetOrElse but lazily computes the fallback from
// the left value.
func (e Either[L, R]) GetOrElseFunc(fn func(L) R) R {
	if e.isRight {
		return e.right
	}
	return fn(e.left)
}

// Swap exchanges the sides, turning Left into Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// String implements fmt.Stringer using the Right(v)/Left(v) rendering. It is
// meant for debugging and demos, not serialization.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Map transforms the right value with fn when present, passing Left through
// untouched.
//
// Example:
//
//	length := either.Map(e, func(s string) int { return len(s) })
func Map[L any, A any, B any](e Either[L, A], fn func(A) B) Either[L, B] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, B](e.left)
}

// MapLeft transforms the left value with fn when present, passing Right
// through untouched.
func MapLeft[L any, M any, R any](e Either[L, R], fn func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](fn(e.left))
}

// FlatMap chains the Either with another Either-valued function, propagating
// the first Left.
//
// Example:
//
//	e := either.FlatMap(parsePort(raw), checkRange)
func FlatMap[L any, A any, B any](e Either[L, A], fn func(A) Either[L, B]) Either[L, B] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, B](e.left)
}

// Fold collapses the Either into a single value by applying onLeft or onRight
// to whichever side is present.
//
// Example:
//
//	msg := either.Fold(e,
//		func(l string) string { return "failed: " + l },
//		func(v int) string { return "got: " + strconv.Itoa(v) },
//	)
func Fold[L any, R any, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Equal reports whether two Eithers hold the same side and the same value.
func Equal[L comparable, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}
