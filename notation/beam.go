package notation

import (
	"errors"
	"fmt"

	"github.com/jsphweid/lilyparse/value"
)

// ErrInvalidBeam reports a beam-membership rule violation.
var ErrInvalidBeam = errors.New("invalid beam")

// Beam is a run of columns sharing a rhythmic flag grouping.
type Beam struct {
	elements []Column
}

// NewBeam deep-copies the given columns and validates membership. The
// first violation wins; nothing is aggregated.
func NewBeam(elements ...Column) (Beam, error) {
	b := Beam{elements: copyColumns(elements)}
	if err := b.validate(); err != nil {
		return Beam{}, err
	}
	return b, nil
}

// Elements returns a fresh slice so the beam stays immutable.
func (b Beam) Elements() []Column {
	return copyColumns(b.elements)
}

func (b Beam) validate() error {
	n := len(b.elements)
	for _, c := range b.elements {
		var msg string
		switch v := c.(type) {
		case Rest:
			msg = "cannot contain rests"
		case Note:
			switch {
			case v.value.Greater(value.Quarter()):
				msg = "cannot hold whole or half notes"
			case n < 2:
				msg = "must contain at least two values"
			}
		case Chord:
			switch {
			case v.value.Greater(value.Quarter()):
				msg = "cannot hold whole or half notes"
			case n < 2:
				msg = "must contain at least two values"
			}
		case Beam:
			if n < 2 {
				msg = "nested beams must contain at least two values"
			}
		case Tuplet:
			if v.value.Greater(value.Quarter()) {
				msg = "cannot hold whole or half note tuplets"
			}
		}
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrInvalidBeam, msg)
		}
	}
	return nil
}
