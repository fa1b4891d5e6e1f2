package rational

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRejectsZeroDenominator(t *testing.T) {
	assert := assert.New(t)

	_, err := New[uint32](1, 0)
	assert.Error(err)
	_, err = NewDuration(1, 0)
	assert.Error(err)

	d, err := NewDuration(3, 8)
	assert.NoError(err)
	assert.Equal(d, Duration{Num: 3, Den: 8})
}

func TestZeroIsZeroOverOne(t *testing.T) {
	assert.Equal(t, Zero(), Duration{Num: 0, Den: 1})
}

func TestAddUsesLeastCommonDenominator(t *testing.T) {
	assert := assert.New(t)

	a := Duration{Num: 1, Den: 4}
	b := Duration{Num: 1, Den: 4}
	assert.Equal(a.Add(b), Duration{Num: 2, Den: 4})

	c := Duration{Num: 1, Den: 8}
	assert.Equal(a.Add(c), Duration{Num: 3, Den: 8})
}

func TestAddIsExact(t *testing.T) {
	cases := []struct {
		n1, d1, n2, d2 uint32
	}{
		{1, 2, 1, 3},
		{1, 4, 1, 4},
		{3, 8, 7, 16},
		{2, 4, 2, 6},
		{0, 1, 5, 64},
		{15, 16, 31, 32},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v/%v + %v/%v", c.n1, c.d1, c.n2, c.d2)
		t.Run(name, func(t *testing.T) {
			sum := Duration{Num: c.n1, Den: c.d1}.Add(Duration{Num: c.n2, Den: c.d2})
			lhs := uint64(sum.Num) * uint64(c.d1) * uint64(c.d2)
			rhs := uint64(c.n1*c.d2+c.n2*c.d1) * uint64(sum.Den)
			if lhs != rhs {
				t.Errorf("got %v, want exact sum of %v/%v and %v/%v", sum, c.n1, c.d1, c.n2, c.d2)
			}
		})
	}
}

func TestCmpCrossMultiplies(t *testing.T) {
	assert := assert.New(t)

	// unreduced fractions compare by value
	assert.True(Duration{Num: 1, Den: 2}.Equal(Duration{Num: 2, Den: 4}))
	assert.True(Duration{Num: 1, Den: 3}.Less(Duration{Num: 1, Den: 2}))
	assert.True(Duration{Num: 3, Den: 8}.Greater(Duration{Num: 1, Den: 4}))
	assert.False(Duration{Num: 1, Den: 4}.Equal(Duration{Num: 1, Den: 8}))
}
