package monoid_test

import (
	"fmt"

	"github.com/charmingruby/algebra/monoid"
	"github.com/charmingruby/algebra/seq"
)

func ExampleFold_sum() {
	total := monoid.Fold(seq.Of(1, 2, 3, 4, 5), monoid.Sum[int]())
	fmt.Println("The sum is:", total)
	// Output:
	// The sum is: 15
}

func ExampleFold_concat() {
	parts := seq.Of(seq.Of(1, 2), seq.Of(3, 4), seq.Of(5))
	fmt.Println(monoid.Fold(parts, monoid.Concat[int]()))
	// Output:
	// List(1,2,3,4,5)
}
