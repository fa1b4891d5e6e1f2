package notation

// Copy maps a column to a fully independent duplicate. Rest, Note and
// Chord copy by value; Beam and Tuplet rebuild their element sequences
// recursively. Any adapter moving columns between representations must
// route through Copy, never through an aliasing assignment, to keep
// ownership exclusive.
func Copy(c Column) Column {
	switch v := c.(type) {
	case Chord:
		return Chord{value: v.value, pitches: v.Pitches()}
	case Beam:
		return Beam{elements: copyColumns(v.elements)}
	case Tuplet:
		return Tuplet{num: v.num, den: v.den, value: v.value, elements: copyColumns(v.elements)}
	default:
		// Rest and Note carry no owned storage.
		return c
	}
}

func copyColumns(elements []Column) []Column {
	out := make([]Column, len(elements))
	for i, c := range elements {
		out[i] = Copy(c)
	}
	return out
}
