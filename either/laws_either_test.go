package either_test

import (
	"testing"
	"testing/quick"

	"github.com/charmingruby/algebra/either"
)

func TestEitherFunctorLaws(t *testing.T) {
	identity := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	check := func(value int, msg string, right bool) bool {
		var e either.Either[string, int]
		if right {
			e = either.Right[string](value)
		} else {
			e = either.Left[string, int](msg)
		}
		idMapped := either.Map(e, identity)
		compMapped := either.Map(either.Map(e, inc), dbl)
		composed := either.Map(e, func(x int) int { return dbl(inc(x)) })
		return either.Equal(e, idMapped) && either.Equal(compMapped, composed)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor law failed: %v", err)
	}
}

func TestEitherMonadLaws(t *testing.T) {
	f := func(x int) either.Either[string, int] {
		if x%2 == 0 {
			return either.Right[string](x / 2)
		}
		return either.Left[string, int]("odd")
	}
	g := func(x int) either.Either[string, int] {
		return either.Right[string](x + 3)
	}

	leftIdentity := func(x int) bool {
		return either.Equal(either.FlatMap(either.Right[string](x), f), f(x))
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}

	rightIdentity := func(value int, msg string, right bool) bool {
		var e either.Either[string, int]
		if right {
			e = either.Right[string](value)
		} else {
			e = either.Left[string, int](msg)
		}
		return either.Equal(either.FlatMap(e, either.Right[string, int]), e)
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}

	associativity := func(value int) bool {
		left := either.FlatMap(either.FlatMap(either.Right[string](value), f), g)
		right := either.FlatMap(either.Right[string](value), func(v int) either.Either[string, int] {
			return either.FlatMap(f(v), g)
		})
		return either.Equal(left, right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestSwapInvolution(t *testing.T) {
	check := func(value int, msg string, right bool) bool {
		var e either.Either[string, int]
		if right {
			e = either.Right[string](value)
		} else {
			e = either.Left[string, int](msg)
		}
		return either.Equal(e.Swap().Swap(), e)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("swap involution failed: %v", err)
	}
}
