package shock

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalMach5(t *testing.T) {
	assert.True(t, near(0.41522739926869984, NormalMach2(5.0, 1.4), 1.e-12))
	assert.True(t, near(0.061716319748617694, NormalP02P01(5.0, 1.4), 1.e-12))
	assert.True(t, near(29.0, NormalP2P1(5.0, 1.4), 1.e-12))
	assert.True(t, near(5.000000000000001, NormalRho2Rho1(5.0, 1.4), 1.e-12))
	assert.True(t, near(5.799999999999999, NormalT2T1(5.0, 1.4), 1.e-12))
	assert.True(t, near(2.408318915758459, NormalA2A1(5.0, 1.4), 1.e-12))
}

// A Mach 1 wave is no shock at all.
func TestNormalSonicIdentity(t *testing.T) {
	for _, g := range []float64{1.1, 1.3, 1.4, 1.67} {
		assert.True(t, near(1.0, NormalMach2(1.0, g), 1.e-12))
		assert.True(t, near(1.0, NormalP02P01(1.0, g), 1.e-12))
		assert.True(t, near(1.0, NormalP2P1(1.0, g), 1.e-12))
		assert.True(t, near(1.0, NormalRho2Rho1(1.0, g), 1.e-12))
		assert.True(t, near(1.0, NormalT2T1(1.0, g), 1.e-12))
		assert.True(t, near(1.0, NormalA2A1(1.0, g), 1.e-12))
	}
}

// Entropy rises through the shock and the flow exits subsonic.
func TestNormalJumpDirections(t *testing.T) {
	for _, m := range []float64{1.2, 1.5, 2, 3, 5, 10} {
		assert.Less(t, NormalMach2(m, 1.4), 1.0)
		assert.Less(t, NormalP02P01(m, 1.4), 1.0)
		assert.Greater(t, NormalP2P1(m, 1.4), 1.0)
		assert.Greater(t, NormalRho2Rho1(m, 1.4), 1.0)
		assert.Greater(t, NormalT2T1(m, 1.4), 1.0)
	}
	// density ratio approaches (gamma+1)/(gamma-1) in the strong limit
	assert.Less(t, NormalRho2Rho1(100.0, 1.4), 6.0)
}

func TestNormalDerivatives(t *testing.T) {
	var (
		h = 1.e-7
	)
	fd := func(f func(m, g float64) float64, m, g float64) float64 {
		return (f(m+h, g) - f(m-h, g)) / (2 * h)
	}
	for _, g := range []float64{1.3, 1.4, 1.67} {
		for _, m := range []float64{1.2, 1.5, 2, 3, 5} {
			assert.True(t, near(fd(NormalMach2[float64], m, g), DerNormalMach2(m, g), 1.e-5))
			assert.True(t, near(fd(NormalP02P01[float64], m, g), DerNormalP02P01(m, g), 1.e-5))
		}
	}
}

func TestNormalSinglePrecision(t *testing.T) {
	assert.InDelta(t, 0.41522741, float64(NormalMach2(float32(5), 1.4)), 1.e-5)
	assert.InDelta(t, 29.0, float64(NormalP2P1(float32(5), 1.4)), 1.e-4)
}

// near compares with a relative tolerance above magnitude 1 and an absolute
// one below.
func near(want, got, tol float64) (l bool) {
	if math.Abs(want-got) > tol*math.Max(1, math.Abs(want)) {
		fmt.Printf("Diff = %v, Want = %v, Got = %v\n", math.Abs(want-got), want, got)
		return false
	}
	return true
}
