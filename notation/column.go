// Package notation holds the typed model of a column of music: rests,
// notes, chords, beams and tuplets, unified by the recursive Column sum
// type. Constructors are the only way to build the grouped variants and
// they validate inline, so an invalid instance never exists.
package notation

import (
	"fmt"

	"github.com/jsphweid/lilyparse/pitch"
	"github.com/jsphweid/lilyparse/value"
)

// Column is one node of the notation tree: a Rest, Note, Chord, Beam
// or Tuplet. The sum is closed; nothing outside this package can add a
// variant. Beam and Tuplet own their children outright, so a Column is
// always a tree, never a graph.
type Column interface {
	isColumn()
}

type Rest struct {
	value value.Value
}

func NewRest(v value.Value) Rest {
	return Rest{value: v}
}

func (r Rest) Value() value.Value { return r.value }

type Note struct {
	value value.Value
	pitch pitch.Pitch
}

func NewNote(v value.Value, p pitch.Pitch) Note {
	return Note{value: v, pitch: p}
}

func (n Note) Value() value.Value { return n.value }
func (n Note) Pitch() pitch.Pitch { return n.pitch }

type Chord struct {
	value   value.Value
	pitches []pitch.Pitch
}

func NewChord(v value.Value, pitches []pitch.Pitch) (Chord, error) {
	if len(pitches) == 0 {
		return Chord{}, fmt.Errorf("%w: chord must contain at least one pitch", value.ErrInvalidValue)
	}
	ps := make([]pitch.Pitch, len(pitches))
	copy(ps, pitches)
	return Chord{value: v, pitches: ps}, nil
}

func (c Chord) Value() value.Value { return c.value }

// Pitches returns a fresh slice so the chord stays immutable.
func (c Chord) Pitches() []pitch.Pitch {
	ps := make([]pitch.Pitch, len(c.pitches))
	copy(ps, c.pitches)
	return ps
}

func (Rest) isColumn()   {}
func (Note) isColumn()   {}
func (Chord) isColumn()  {}
func (Beam) isColumn()   {}
func (Tuplet) isColumn() {}
