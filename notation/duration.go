package notation

import "github.com/jsphweid/lilyparse/rational"

// TotalDuration is the rhythmic time a column occupies. A beam is the
// exact sum of its children; a tuplet already carries its outer value.
func TotalDuration(c Column) rational.Duration {
	switch v := c.(type) {
	case Rest:
		return v.value.Duration()
	case Note:
		return v.value.Duration()
	case Chord:
		return v.value.Duration()
	case Beam:
		sum := rational.Zero()
		for _, e := range v.elements {
			sum = sum.Add(TotalDuration(e))
		}
		return sum
	case Tuplet:
		return v.value.Duration()
	default:
		return rational.Zero()
	}
}
