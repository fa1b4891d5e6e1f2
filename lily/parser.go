// Package lily reads the compact notation dialect into validated
// notation columns, and writes columns back out as source text.
//
// The grammar:
//
//	octave  := raise{1,3} | lower{1,4} | nothing
//	pitch   := pitchClassToken octave
//	value   := baseValueToken dot{0,2}
//	rest    := "r" value
//	note    := pitch value
//	chord   := "<" pitch+ ">" value
//	beam    := "[" column+ "]"
//	column  := rest | note | chord | beam
//
// Tuplets are constructible through the notation package but have no
// textual syntax here.
package lily

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/jsphweid/lilyparse/notation"
	"github.com/jsphweid/lilyparse/pitch"
	"github.com/jsphweid/lilyparse/value"
)

// ErrParse reports that the grammar could not match, or that input was
// left over after a successful match.
var ErrParse = errors.New("parse error")

// Parse reads one column from source. The entire input must be
// consumed; whatever validation the notation constructors perform has
// already succeeded on the returned column.
func Parse(source string) (notation.Column, error) {
	p := &parser{src: source}
	col, err := p.column()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: trailing input %q at offset %d", ErrParse, p.src[p.pos:], p.pos)
	}
	return col, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d", ErrParse, msg, p.pos)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

// peek returns the next byte without consuming it, or 0 at the end of
// input. Every token in the dialect is ASCII.
func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) column() (notation.Column, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == 'r':
		return p.rest()
	case c == '<':
		return p.chord()
	case c == '[':
		return p.beam()
	case c >= 'a' && c <= 'g':
		return p.note()
	default:
		return nil, p.errf("expected rest, note, chord or beam")
	}
}

func (p *parser) rest() (notation.Rest, error) {
	p.pos++ // the 'r'
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return notation.Rest{}, err
	}
	return notation.NewRest(v), nil
}

func (p *parser) note() (notation.Note, error) {
	pt, err := p.pitch()
	if err != nil {
		return notation.Note{}, err
	}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return notation.Note{}, err
	}
	return notation.NewNote(v, pt), nil
}

func (p *parser) chord() (notation.Chord, error) {
	p.pos++ // the '<'
	var pitches []pitch.Pitch
	for {
		p.skipSpace()
		if c := p.peek(); c < 'a' || c > 'g' {
			break
		}
		pt, err := p.pitch()
		if err != nil {
			return notation.Chord{}, err
		}
		pitches = append(pitches, pt)
	}
	if len(pitches) == 0 {
		return notation.Chord{}, p.errf("expected at least one pitch in chord")
	}
	if p.peek() != '>' {
		return notation.Chord{}, p.errf("expected '>'")
	}
	p.pos++
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return notation.Chord{}, err
	}
	return notation.NewChord(v, pitches)
}

func (p *parser) beam() (notation.Beam, error) {
	p.pos++ // the '['
	var elements []notation.Column
	for {
		p.skipSpace()
		if p.peek() == ']' || p.peek() == 0 {
			break
		}
		col, err := p.column()
		if err != nil {
			return notation.Beam{}, err
		}
		elements = append(elements, col)
	}
	if len(elements) == 0 {
		return notation.Beam{}, p.errf("expected at least one column in beam")
	}
	if p.peek() != ']' {
		return notation.Beam{}, p.errf("expected ']'")
	}
	p.pos++
	return notation.NewBeam(elements...)
}

// pitch matches the longest pitch class spelling ("css" before "cs"
// before "c") and then a run of octave marks.
func (p *parser) pitch() (pitch.Pitch, error) {
	for n := 3; n >= 1; n-- {
		if p.pos+n > len(p.src) {
			continue
		}
		if class, ok := pitch.Classes[p.src[p.pos:p.pos+n]]; ok {
			p.pos += n
			return pitch.Pitch{Class: class, Octave: p.octave()}, nil
		}
	}
	return pitch.Pitch{}, p.errf("expected pitch")
}

// octave counts a run of raise marks (at most 3) or lower marks (at
// most 4) against the default octave of 4. Marks beyond the cap are
// left unconsumed and fail the surrounding parse.
func (p *parser) octave() pitch.Octave {
	switch p.peek() {
	case '\'':
		return pitch.DefaultOctave + pitch.Octave(p.run('\'', 3))
	case ',':
		return pitch.DefaultOctave - pitch.Octave(p.run(',', 4))
	default:
		return pitch.DefaultOctave
	}
}

func (p *parser) run(mark byte, max int) int {
	var n int
	for n < max && p.peek() == mark {
		p.pos++
		n++
	}
	return n
}

// value matches a base value token (longest first, so "16" wins over
// "1") and then up to two dots.
func (p *parser) value() (value.Value, error) {
	v, ok := value.Value{}, false
	for n := 2; n >= 1; n-- {
		if p.pos+n > len(p.src) {
			continue
		}
		if base, found := value.Bases[p.src[p.pos:p.pos+n]]; found {
			v, ok = base, true
			p.pos += n
			break
		}
	}
	if !ok {
		return value.Value{}, p.errf("expected value")
	}
	for dots := 0; dots < 2 && p.peek() == '.'; dots++ {
		p.pos++
		var err error
		if v, err = value.Dot(v); err != nil {
			return value.Value{}, err
		}
	}
	return v, nil
}
