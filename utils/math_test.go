package utils

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	for _, x := range []float64{0.3, 1.7, -2.5} {
		for p := -10; p <= 10; p++ {
			want := math.Pow(x, float64(p))
			assert.True(t, near(want, POW(x, p), 1.e-12))
		}
	}
	assert.Equal(t, float32(6.25), POW(float32(2.5), 2))
}

func TestEps(t *testing.T) {
	assert.Equal(t, 2.220446049250313e-16, Eps[float64]())
	assert.Equal(t, float32(1.1920929e-07), Eps[float32]())
	assert.Equal(t, math.MaxFloat64, MaxValue[float64]())
	assert.Equal(t, float32(math.MaxFloat32), MaxValue[float32]())
}

func TestNaN(t *testing.T) {
	assert.True(t, IsNaN(NaN[float64]()))
	assert.True(t, IsNaN(NaN[float32]()))
	assert.False(t, IsNaN(1.5))
}

func near(a, b, tol float64) (l bool) {
	if math.Abs(a-b) > tol*math.Max(1, math.Abs(a)) {
		fmt.Printf("Diff = %v, Left = %v, Right = %v\n", math.Abs(a-b), a, b)
		return false
	}
	return true
}
