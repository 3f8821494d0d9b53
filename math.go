package aoc

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// AddOk returns a+b for non-negative a and b. ok is false if the sum does
// not fit in an int.
func AddOk(a, b int) (sum int, ok bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// MulOk returns a*b for non-negative a and b. ok is false if the product
// does not fit in an int.
func MulOk(a, b int) (prod int, ok bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}
