package notation

// Equal is structural equality over the column tree. Columns of
// different variants are never equal; same-variant columns compare
// field-wise, recursively for beam and tuplet elements.
func Equal(a, b Column) bool {
	switch av := a.(type) {
	case Rest:
		bv, ok := b.(Rest)
		return ok && av == bv
	case Note:
		bv, ok := b.(Note)
		return ok && av == bv
	case Chord:
		bv, ok := b.(Chord)
		if !ok || av.value != bv.value || len(av.pitches) != len(bv.pitches) {
			return false
		}
		for i := range av.pitches {
			if av.pitches[i] != bv.pitches[i] {
				return false
			}
		}
		return true
	case Beam:
		bv, ok := b.(Beam)
		return ok && equalColumns(av.elements, bv.elements)
	case Tuplet:
		bv, ok := b.(Tuplet)
		return ok && av.num == bv.num && av.den == bv.den &&
			av.value == bv.value && equalColumns(av.elements, bv.elements)
	default:
		return false
	}
}

func equalColumns(a, b []Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
