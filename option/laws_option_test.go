package option_test

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/charmingruby/algebra/either"
	"github.com/charmingruby/algebra/option"
	"github.com/charmingruby/algebra/seq"
)

func TestOptionFunctorLaws(t *testing.T) {
	identity := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	check := func(value int, present bool) bool {
		opt := makeOption(value, present)
		idMapped := option.Map(opt, identity)
		compMapped := option.Map(option.Map(opt, inc), dbl)
		composed := option.Map(opt, func(x int) int { return dbl(inc(x)) })
		return equalOption(opt, idMapped) && equalOption(compMapped, composed)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor law failed: %v", err)
	}
}

func TestOptionMonadLaws(t *testing.T) {
	f := func(x int) option.Option[int] {
		if x%2 == 0 {
			return option.Some(x / 2)
		}
		return option.None[int]()
	}
	g := func(x int) option.Option[int] {
		return option.Some(x + 3)
	}
	leftIdentity := func(x int) bool {
		return equalOption(option.FlatMap(option.Some(x), f), f(x))
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}

	rightIdentity := func(value int, present bool) bool {
		opt := makeOption(value, present)
		return equalOption(option.FlatMap(opt, option.Some[int]), opt)
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}

	associativity := func(x int) bool {
		left := option.FlatMap(option.FlatMap(option.Some(x), f), g)
		right := option.FlatMap(option.Some(x), func(v int) option.Option[int] {
			return option.FlatMap(f(v), g)
		})
		return equalOption(left, right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

// Converting then mapping must agree with mapping then converting, for any
// Option and any pure function.
func TestToEitherNaturality(t *testing.T) {
	fn := func(x int) string { return strconv.Itoa(x * 7) }

	check := func(value int, present bool) bool {
		opt := makeOption(value, present)
		mapFirst := option.Map(opt, fn).ToEither()
		convertFirst := either.Map(opt.ToEither(), fn)
		return either.Equal(mapFirst, convertFirst)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("naturality failed for ToEither: %v", err)
	}
}

func TestToSeqNaturality(t *testing.T) {
	fn := func(x int) string { return strconv.Itoa(x * 7) }

	check := func(value int, present bool) bool {
		opt := makeOption(value, present)
		mapFirst := option.Map(opt, fn).ToSeq()
		convertFirst := seq.Map(opt.ToSeq(), fn)
		return seq.Equal(mapFirst, convertFirst)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("naturality failed for ToSeq: %v", err)
	}
}

func makeOption(value int, present bool) option.Option[int] {
	if present {
		return option.Some(value)
	}
	return option.None[int]()
}

func equalOption[T comparable](a, b option.Option[T]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return av == bv
}
