package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimesPow10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		e   int
		res float64
	}{
		{1, 0, 1},
		{0, 10, 0},
		{1, 3, 1000},
		{2.5, -2, 0.025},
		{-2, 2, -200},
		{7, -1, 0.7},
		{1, 23, 1e23},
		{5, -12, 5e-12},
		{1, 22, 1e22},
		{1, -22, 1e-22},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, TimesPow10(test.f, test.e))
		})
	}
}

func TestTimesPow10Saturation(t *testing.T) {
	a := assert.New(t)
	a.True(math.IsInf(TimesPow10(1, 400), 1))
	a.True(math.IsInf(TimesPow10(-1, 400), -1))
	a.Equal(float64(0), TimesPow10(1, -400))
	a.Equal(float64(0), TimesPow10(0, 1000000))
	// saturation keeps even absurd exponents cheap
	a.True(math.IsInf(TimesPow10(1, 1<<30), 1))
	a.Equal(float64(0), TimesPow10(1, -(1<<30)))
}
