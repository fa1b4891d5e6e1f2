package rational

// Duration is a fraction of a whole note.
type Duration = Rational[uint32]

func NewDuration(num, den uint32) (Duration, error) {
	return New(num, den)
}

func Zero() Duration {
	return Duration{Num: 0, Den: 1}
}
