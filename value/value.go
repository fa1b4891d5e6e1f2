package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/lilyparse/rational"
)

// ErrInvalidValue reports a malformed rhythmic value, or an element
// count below a structural minimum.
var ErrInvalidValue = errors.New("invalid value")

// Value is a rhythmic base duration (whole through sixty-fourth, stored
// as the denominator of its whole-note fraction) plus 0-2 dots. The dot
// count is kept separate from the converted duration so a value always
// re-prints the way it was written.
type Value struct {
	base uint16
	dots uint8
}

func Whole() Value        { return Value{base: 1} }
func Half() Value         { return Value{base: 2} }
func Quarter() Value      { return Value{base: 4} }
func Eighth() Value       { return Value{base: 8} }
func Sixteenth() Value    { return Value{base: 16} }
func ThirtySecond() Value { return Value{base: 32} }
func SixtyFourth() Value  { return Value{base: 64} }

// Bases is the symbol table the grammar matches base value tokens
// against.
var Bases = map[string]Value{
	"1":  Whole(),
	"2":  Half(),
	"4":  Quarter(),
	"8":  Eighth(),
	"16": Sixteenth(),
	"32": ThirtySecond(),
	"64": SixtyFourth(),
}

// All enumerates every legal (base, dots) combination, ordered from
// longest duration to shortest. It is the permitted match set for
// tuplet scaling.
var All = makeAll()

func makeAll() []Value {
	var all []Value
	for _, base := range []uint16{1, 2, 4, 8, 16, 32, 64} {
		for dots := uint8(2); ; dots-- {
			all = append(all, Value{base: base, dots: dots})
			if dots == 0 {
				break
			}
		}
	}
	return all
}

// Dot extends v by half of its current duration: one dot makes 1.5x,
// a second dot 1.75x the undotted duration.
func Dot(v Value) (Value, error) {
	if v.dots == 2 {
		return Value{}, fmt.Errorf("%w: cannot have more than two dots", ErrInvalidValue)
	}
	return Value{base: v.base, dots: v.dots + 1}, nil
}

func (v Value) Dots() uint8 { return v.dots }

// Duration converts exactly: an undotted value is 1/base, and every
// dot adds the next halving, so d dots give (2^(d+1)-1) / (base*2^d).
func (v Value) Duration() rational.Duration {
	num := uint32(1<<(v.dots+1)) - 1
	den := uint32(v.base) << v.dots
	return rational.Duration{Num: num, Den: den}
}

func (v Value) Greater(o Value) bool {
	return v.Duration().Greater(o.Duration())
}

func (v Value) String() string {
	return strconv.Itoa(int(v.base)) + strings.Repeat(".", int(v.dots))
}
