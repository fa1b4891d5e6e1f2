package rational

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rational is an exact fraction over an unsigned integer type. The
// denominator is never zero, and fractions are not reduced to a
// canonical form unless an operation says so, which keeps the exact
// num/den pair a caller constructed visible in errors and output.
type Rational[T constraints.Unsigned] struct {
	Num T
	Den T
}

func New[T constraints.Unsigned](num, den T) (Rational[T], error) {
	if den == 0 {
		return Rational[T]{}, errors.New("denominator cannot be zero")
	}
	return Rational[T]{Num: num, Den: den}, nil
}

func Gcd[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Cmp compares by cross multiplication so unreduced fractions compare
// correctly without ever being normalized.
func (r Rational[T]) Cmp(o Rational[T]) int {
	lhs := uint64(r.Num) * uint64(o.Den)
	rhs := uint64(o.Num) * uint64(r.Den)
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func (r Rational[T]) Equal(o Rational[T]) bool {
	return r.Cmp(o) == 0
}

func (r Rational[T]) Less(o Rational[T]) bool {
	return r.Cmp(o) < 0
}

func (r Rational[T]) Greater(o Rational[T]) bool {
	return r.Cmp(o) > 0
}

// Add produces the exact sum over the least common denominator:
// d = den1*den2/gcd, n = num1*(d/den1) + num2*(d/den2). The result is
// not reduced any further.
func (r Rational[T]) Add(o Rational[T]) Rational[T] {
	g := Gcd(r.Den, o.Den)
	d := r.Den * o.Den / g
	n := r.Num*(d/r.Den) + o.Num*(d/o.Den)
	return Rational[T]{Num: n, Den: d}
}

func (r Rational[T]) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
