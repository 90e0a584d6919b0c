package bucketsort

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertionSort(t *testing.T) {
	tests := []struct {
		name string
		in   []Sample
		want []Sample
	}{
		{"empty", []Sample{}, []Sample{}},
		{"single", []Sample{0.4}, []Sample{0.4}},
		{"sorted", []Sample{0.1, 0.2, 0.3}, []Sample{0.1, 0.2, 0.3}},
		{"reversed", []Sample{0.9, 0.5, 0.3, 0.1}, []Sample{0.1, 0.3, 0.5, 0.9}},
		{"duplicates", []Sample{0.5, 0.2, 0.5, 0.2}, []Sample{0.2, 0.2, 0.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InsertionSort(tt.in)
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestInsertionSortStable(t *testing.T) {
	negZero := Sample(math.Copysign(0, -1))
	b := []Sample{0.3, 0, negZero, 0.1}

	InsertionSort(b)

	assert.Equal(t, []Sample{0, 0, 0.1, 0.3}, b)
	assert.False(t, math.Signbit(float64(b[0])), "+0 must stay ahead of -0")
	assert.True(t, math.Signbit(float64(b[1])))
}
