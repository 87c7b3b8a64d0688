package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParity_Verify(t *testing.T) {
	a := [2]uint64{1, 2}
	b := [2][2]uint64{{3, 4}, {5, 6}}
	c := [2]uint64{7, 8}

	tests := []struct {
		name     string
		a        [2]uint64
		c        [2]uint64
		inputs   []uint64
		expected bool
	}{
		{
			name:     "even input sum accepted",
			a:        a,
			c:        c,
			inputs:   []uint64{10, 20, 30},
			expected: true,
		},
		{
			name:     "odd input sum rejected",
			a:        a,
			c:        c,
			inputs:   []uint64{1, 2},
			expected: false,
		},
		{
			name:     "zero in a rejected",
			a:        [2]uint64{0, 2},
			c:        c,
			inputs:   []uint64{2, 4},
			expected: false,
		},
		{
			name:     "zero in c rejected",
			a:        a,
			c:        [2]uint64{7, 0},
			inputs:   []uint64{2, 4},
			expected: false,
		},
		{
			name:     "empty inputs rejected",
			a:        a,
			c:        c,
			inputs:   nil,
			expected: false,
		},
		{
			name:     "single even input accepted",
			a:        a,
			c:        c,
			inputs:   []uint64{2},
			expected: true,
		},
	}

	var p Parity
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Verify(tt.a, b, tt.c, tt.inputs))
		})
	}
}

func TestParity_IsPure(t *testing.T) {
	var p Parity
	a := [2]uint64{1, 2}
	b := [2][2]uint64{{3, 4}, {5, 6}}
	c := [2]uint64{7, 8}
	inputs := []uint64{2, 4}

	first := p.Verify(a, b, c, inputs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Verify(a, b, c, inputs))
	}
}

func TestFunc_Adapter(t *testing.T) {
	called := false
	f := Func(func(a [2]uint64, b [2][2]uint64, c [2]uint64, inputs []uint64) bool {
		called = true
		return true
	})

	assert.True(t, f.Verify([2]uint64{}, [2][2]uint64{}, [2]uint64{}, nil))
	assert.True(t, called)
}
