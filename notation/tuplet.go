package notation

import (
	"errors"
	"fmt"

	"github.com/jsphweid/lilyparse/rational"
	"github.com/jsphweid/lilyparse/value"
)

// ErrInvalidTuplet reports a tuplet ratio that resolves to no exact
// rhythmic value.
var ErrInvalidTuplet = errors.New("invalid tuplet")

// Tuplet compresses its elements into the duration of a normal value:
// num elements in the time of den, e.g. a triplet is 3:2.
type Tuplet struct {
	num      int
	den      int
	value    value.Value
	elements []Column
}

// Scale resolves the outer value a num:den tuplet over inner occupies.
// The outer duration is computed by exact cross multiplication and must
// match some entry of value.All exactly; there is no tolerance.
func Scale(num, den int, inner rational.Duration) (value.Value, error) {
	if num < 1 || den < 1 {
		return value.Value{}, fmt.Errorf("%w: ratio %d/%d must be positive", ErrInvalidTuplet, num, den)
	}
	outer := rational.Duration{
		Num: inner.Num * uint32(den),
		Den: inner.Den * uint32(num),
	}
	for _, v := range value.All {
		if outer.Equal(v.Duration()) {
			return v, nil
		}
	}
	return value.Value{}, fmt.Errorf("%w: duration (%d/%d:{%s} = %d/%d) must equal a valid value",
		ErrInvalidTuplet, num, den, inner, outer.Num, outer.Den)
}

// ScaleValue is Scale over an inner value instead of a raw duration.
func ScaleValue(num, den int, inner value.Value) (value.Value, error) {
	return Scale(num, den, inner.Duration())
}

// NewTuplet deep-copies the given columns and resolves the ratio
// against inner via Scale. Fewer than two elements is structurally
// invalid.
func NewTuplet(num, den int, inner value.Value, elements []Column) (Tuplet, error) {
	outer, err := ScaleValue(num, den, inner)
	if err != nil {
		return Tuplet{}, err
	}
	if len(elements) < 2 {
		return Tuplet{}, fmt.Errorf("%w: tuplet must contain at least two elements", value.ErrInvalidValue)
	}
	return Tuplet{num: num, den: den, value: outer, elements: copyColumns(elements)}, nil
}

// Ratio returns the num:den compression ratio.
func (t Tuplet) Ratio() (int, int) { return t.num, t.den }

// Value is the outer value the whole tuplet occupies.
func (t Tuplet) Value() value.Value { return t.value }

// Elements returns a fresh slice so the tuplet stays immutable.
func (t Tuplet) Elements() []Column {
	return copyColumns(t.elements)
}
