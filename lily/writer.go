package lily

import (
	"errors"
	"strings"

	"github.com/jsphweid/lilyparse/notation"
	"github.com/jsphweid/lilyparse/pitch"
)

// ErrNoSyntax reports a column that has no source rendering. Only
// tuplets trigger it: they are constructible through the notation
// package but the grammar has no rule for them.
var ErrNoSyntax = errors.New("tuplets have no source syntax")

// Write renders a column back into parseable source text, the inverse
// of Parse.
func Write(c notation.Column) (string, error) {
	switch v := c.(type) {
	case notation.Rest:
		return "r" + v.Value().String(), nil
	case notation.Note:
		return WritePitch(v.Pitch()) + v.Value().String(), nil
	case notation.Chord:
		var names []string
		for _, pt := range v.Pitches() {
			names = append(names, WritePitch(pt))
		}
		return "<" + strings.Join(names, " ") + ">" + v.Value().String(), nil
	case notation.Beam:
		var elements []string
		for _, e := range v.Elements() {
			s, err := Write(e)
			if err != nil {
				return "", err
			}
			elements = append(elements, s)
		}
		return "[" + strings.Join(elements, " ") + "]", nil
	default:
		return "", ErrNoSyntax
	}
}

// WritePitch renders the spelling plus octave marks relative to the
// default octave of 4.
func WritePitch(p pitch.Pitch) string {
	name := pitch.Names[p.Class]
	switch {
	case p.Octave > pitch.DefaultOctave:
		return name + strings.Repeat("'", int(p.Octave-pitch.DefaultOctave))
	case p.Octave < pitch.DefaultOctave:
		return name + strings.Repeat(",", int(pitch.DefaultOctave-p.Octave))
	default:
		return name
	}
}
