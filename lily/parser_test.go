package lily

import (
	"testing"

	"github.com/jsphweid/lilyparse/notation"
	"github.com/jsphweid/lilyparse/pitch"
	"github.com/jsphweid/lilyparse/value"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, source string) notation.Column {
	t.Helper()
	col, err := Parse(source)
	if err != nil {
		t.Fatalf("could not parse %q: %v", source, err)
	}
	return col
}

func mustWrite(t *testing.T, col notation.Column) string {
	t.Helper()
	source, err := Write(col)
	if err != nil {
		t.Fatal(err)
	}
	return source
}

func TestParseRest(t *testing.T) {
	col := mustParse(t, "r4")

	assert := assert.New(t)
	rest, ok := col.(notation.Rest)
	assert.True(ok)
	assert.Equal(rest.Value(), value.Quarter())
}

func TestParseNote(t *testing.T) {
	col := mustParse(t, "c4")

	assert := assert.New(t)
	note, ok := col.(notation.Note)
	assert.True(ok)
	assert.Equal(note.Value(), value.Quarter())
	assert.Equal(note.Pitch(), pitch.Pitch{Class: pitch.C, Octave: 4})
}

func TestParseOctaveMarks(t *testing.T) {
	cases := []struct {
		source string
		octave pitch.Octave
	}{
		{"c4", 4},
		{"c'4", 5},
		{"c''4", 6},
		{"c'''4", 7},
		{"c,4", 3},
		{"c,,4", 2},
		{"c,,,4", 1},
		{"c,,,,4", 0},
	}

	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			note := mustParse(t, c.source).(notation.Note)
			assert.Equal(t, note.Pitch().Octave, c.octave)
		})
	}
}

func TestParseTooManyOctaveMarks(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("c''''4")
	assert.ErrorIs(err, ErrParse)
	_, err = Parse("c,,,,,4")
	assert.ErrorIs(err, ErrParse)
}

func TestParsePitchSpellingsLongestMatch(t *testing.T) {
	cases := map[string]pitch.Class{
		"c4":   pitch.C,
		"cs4":  pitch.Cs,
		"css4": pitch.Css,
		"cf4":  pitch.Cf,
		"cff4": pitch.Cff,
		"ef4":  pitch.Ef,
		"gss4": pitch.Gss,
	}

	for source, class := range cases {
		t.Run(source, func(t *testing.T) {
			note := mustParse(t, source).(notation.Note)
			assert.Equal(t, note.Pitch().Class, class)
		})
	}
}

func TestParseBaseValuesLongestMatch(t *testing.T) {
	assert := assert.New(t)

	note := mustParse(t, "c16").(notation.Note)
	assert.Equal(note.Value(), value.Sixteenth())

	note = mustParse(t, "c64").(notation.Note)
	assert.Equal(note.Value(), value.SixtyFourth())

	note = mustParse(t, "c1").(notation.Note)
	assert.Equal(note.Value(), value.Whole())
}

func TestParseDots(t *testing.T) {
	assert := assert.New(t)

	dotted, _ := value.Dot(value.Quarter())
	note := mustParse(t, "c4.").(notation.Note)
	assert.Equal(note.Value(), dotted)

	doubleDotted, _ := value.Dot(dotted)
	note = mustParse(t, "c4..").(notation.Note)
	assert.Equal(note.Value(), doubleDotted)

	// a third dot is not part of any rule, so it is trailing input
	_, err := Parse("c4...")
	assert.ErrorIs(err, ErrParse)
}

func TestParseChord(t *testing.T) {
	col := mustParse(t, "<c e g>4")

	assert := assert.New(t)
	chord, ok := col.(notation.Chord)
	assert.True(ok)
	assert.Equal(chord.Value(), value.Quarter())
	assert.Equal(chord.Pitches(), []pitch.Pitch{
		{Class: pitch.C, Octave: 4},
		{Class: pitch.E, Octave: 4},
		{Class: pitch.G, Octave: 4},
	})
}

func TestParseChordWithOctaves(t *testing.T) {
	chord := mustParse(t, "<c' ef, g>8").(notation.Chord)

	assert := assert.New(t)
	assert.Equal(chord.Value(), value.Eighth())
	assert.Equal(chord.Pitches(), []pitch.Pitch{
		{Class: pitch.C, Octave: 5},
		{Class: pitch.Ef, Octave: 3},
		{Class: pitch.G, Octave: 4},
	})
}

func TestParseEmptyChordFails(t *testing.T) {
	_, err := Parse("<>4")
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseBeam(t *testing.T) {
	col := mustParse(t, "[c8 d8]")

	assert := assert.New(t)
	beam, ok := col.(notation.Beam)
	assert.True(ok)
	assert.Equal(len(beam.Elements()), 2)
}

func TestParseNestedBeam(t *testing.T) {
	col := mustParse(t, "[c8 [d16 e16]]")

	assert := assert.New(t)
	beam, ok := col.(notation.Beam)
	assert.True(ok)
	elements := beam.Elements()
	assert.Equal(len(elements), 2)
	_, ok = elements[1].(notation.Beam)
	assert.True(ok)
}

func TestParseBeamValidationPropagates(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("[r8 c8]")
	assert.ErrorIs(err, notation.ErrInvalidBeam)

	_, err = Parse("[c2 d8]")
	assert.ErrorIs(err, notation.ErrInvalidBeam)

	_, err = Parse("[c4]")
	assert.ErrorIs(err, notation.ErrInvalidBeam)
}

func TestParseConsumesEntireInput(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("c4 d4")
	assert.ErrorIs(err, ErrParse)
	assert.ErrorContains(err, "trailing input")

	_, err = Parse("r4 x")
	assert.ErrorIs(err, ErrParse)
}

func TestParseRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	for _, source := range []string{"", "   ", "x4", "h4", "c", "c0", "[c8 d8", "<c e g4"} {
		_, err := Parse(source)
		assert.ErrorIs(err, ErrParse, "source %q", source)
	}
}

func TestParseSkipsWhitespace(t *testing.T) {
	a := mustParse(t, "[c8 d8]")
	b := mustParse(t, "  [\tc8\n d8 ]  ")
	assert.True(t, notation.Equal(a, b))
}

func TestParseSkipsWhitespaceBetweenTokens(t *testing.T) {
	cases := map[string]string{
		"r 4":               "r4",
		"c 4":               "c4",
		"< c e g > 4":       "<c e g>4",
		"[ c8  d8 ]":        "[c8 d8]",
		"[\nc8\nd8\n]":      "[c8 d8]",
		"<c e> \t 8":        "<c e>8",
		"r\t2.":             "r2.",
		"[ c8 [d16 e16 ] ]": "[c8 [d16 e16]]",
	}

	for source, plain := range cases {
		t.Run(source, func(t *testing.T) {
			a := mustParse(t, source)
			b := mustParse(t, plain)
			assert.True(t, notation.Equal(a, b))
		})
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	sources := []string{
		"r4",
		"r2.",
		"c4",
		"c'4",
		"c,,4.",
		"gss'''64",
		"<c e g>4",
		"<cs' ef,>2..",
		"[c8 d8]",
		"[c8 [d16 e16]]",
		"[<c e>8 d8]",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			col := mustParse(t, source)
			again := mustParse(t, mustWrite(t, col))
			assert.True(t, notation.Equal(col, again))
		})
	}
}

func TestWriteCanonicalForms(t *testing.T) {
	cases := map[string]string{
		"r4":              "r4",
		" c'4 ":           "c'4",
		"<c   e   g>4":    "<c e g>4",
		"[ c8 d8 ]":       "[c8 d8]",
		"[c8 [d16 e16] ]": "[c8 [d16 e16]]",
	}

	for source, want := range cases {
		t.Run(source, func(t *testing.T) {
			assert.Equal(t, mustWrite(t, mustParse(t, source)), want)
		})
	}
}

func TestWriteTupletHasNoSourceSyntax(t *testing.T) {
	assert := assert.New(t)

	tup, err := notation.NewTuplet(3, 2, value.Eighth(), []notation.Column{
		notation.NewNote(value.Eighth(), pitch.Pitch{Class: pitch.C, Octave: 4}),
		notation.NewNote(value.Eighth(), pitch.Pitch{Class: pitch.D, Octave: 4}),
		notation.NewNote(value.Eighth(), pitch.Pitch{Class: pitch.E, Octave: 4}),
	})
	assert.NoError(err)

	_, err = Write(tup)
	assert.ErrorIs(err, ErrNoSyntax)

	// the error propagates out of enclosing beams too
	beam, err := notation.NewBeam(
		notation.NewNote(value.Eighth(), pitch.Pitch{Class: pitch.C, Octave: 4}),
		tup,
	)
	assert.NoError(err)

	_, err = Write(beam)
	assert.ErrorIs(err, ErrNoSyntax)
}
