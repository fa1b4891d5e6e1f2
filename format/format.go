// Package format renders notation entities for diagnostics. The output
// is meant for humans and error messages, not for re-parsing; the lily
// package owns the parseable rendering.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/lilyparse/notation"
	"github.com/jsphweid/lilyparse/pitch"
	"github.com/jsphweid/lilyparse/rational"
	"github.com/jsphweid/lilyparse/value"
)

func Duration(d rational.Duration) string {
	return fmt.Sprintf("%d/%d", d.Num, d.Den)
}

func Pitch(p pitch.Pitch) string {
	return pitch.Names[p.Class] + strconv.Itoa(int(p.Octave))
}

func Value(v value.Value) string {
	return v.String()
}

func Rest(r notation.Rest) string {
	return "r:" + Value(r.Value())
}

func Note(n notation.Note) string {
	return Pitch(n.Pitch()) + ":" + Value(n.Value())
}

func Chord(c notation.Chord) string {
	var names []string
	for _, p := range c.Pitches() {
		names = append(names, Pitch(p))
	}
	return "<" + strings.Join(names, " ") + ">:" + Value(c.Value())
}

func Beam(b notation.Beam) string {
	return "[" + joinColumns(b.Elements()) + "]"
}

func Tuplet(t notation.Tuplet) string {
	return Value(t.Value()) + ":{" + joinColumns(t.Elements()) + "}"
}

func Column(c notation.Column) string {
	switch v := c.(type) {
	case notation.Rest:
		return Rest(v)
	case notation.Note:
		return Note(v)
	case notation.Chord:
		return Chord(v)
	case notation.Beam:
		return Beam(v)
	case notation.Tuplet:
		return Tuplet(v)
	default:
		return ""
	}
}

func joinColumns(elements []notation.Column) string {
	var parts []string
	for _, e := range elements {
		parts = append(parts, Column(e))
	}
	return strings.Join(parts, " ")
}
