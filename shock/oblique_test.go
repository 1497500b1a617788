package shock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/compflow/isentropic"
)

func TestObliqueBetaMax(t *testing.T) {
	assert.True(t, near(1.0368550098826088, ObliqueBetaMax(2.0, 1.4), 1.e-12))
	// betaMax tends to the Mach angle as Mach goes to infinity from above it
	for _, m := range []float64{1.5, 2, 5, 10} {
		assert.Greater(t, ObliqueBetaMax(m, 1.4), isentropic.MachAngle(m))
		assert.Less(t, ObliqueBetaMax(m, 1.4), 0.5*math.Pi)
	}
}

func TestObliqueBeta(t *testing.T) {
	assert.True(t, near(0.6861575251545712, ObliqueBeta(2.0, 1.4, 0.1745329), 1.e-5))
	assert.True(t, near(0.5201241529003784, ObliqueBeta(5.0, 1.4, 0.3490659), 1.e-9))

	// vanishing deflection degenerates to a Mach wave on the weak branch
	for _, m := range []float64{1.5, 2, 3, 5} {
		beta := ObliqueBeta(m, 1.4, 0.0)
		assert.True(t, near(isentropic.MachAngle(m), beta, 1.e-6))
	}
}

func TestObliqueBetaDetached(t *testing.T) {
	// 30 degrees of turning is past detachment at Mach 2
	assert.True(t, math.IsNaN(float64(ObliqueBeta(2.0, 1.4, 0.5235988))))
	assert.True(t, math.IsNaN(float64(ObliqueBeta(1.1, 1.4, 0.3))))
}

func TestObliqueDownstream(t *testing.T) {
	var (
		mach  = 2.0
		gamma = 1.4
		theta = 0.1745329
	)
	assert.True(t, near(1.6405222825339965, ObliqueMach2(mach, gamma, theta), 1.e-5))
	assert.True(t, near(0.9846440287662767, ObliqueP02P01(mach, gamma, theta), 1.e-5))
	assert.True(t, near(1.7065784784508362, ObliqueP2P1(mach, gamma, theta), 1.e-5))
	assert.True(t, near(1.4584255389253309, ObliqueRho2Rho1(mach, gamma, theta), 1.e-5))
	assert.True(t, near(1.1701512575735344, ObliqueT2T1(mach, gamma, theta), 1.e-5))
	assert.True(t, near(1.0817352992176665, ObliqueA2A1(mach, gamma, theta), 1.e-5))
}

// With no deflection the wave carries no jump.
func TestObliqueZeroDeflection(t *testing.T) {
	for _, m := range []float64{1.5, 2, 5} {
		assert.True(t, near(m, ObliqueMach2(m, 1.4, 0.0), 1.e-5))
		assert.True(t, near(1.0, ObliqueP02P01(m, 1.4, 0.0), 1.e-5))
		assert.True(t, near(1.0, ObliqueP2P1(m, 1.4, 0.0), 1.e-5))
		assert.True(t, near(1.0, ObliqueRho2Rho1(m, 1.4, 0.0), 1.e-5))
		assert.True(t, near(1.0, ObliqueT2T1(m, 1.4, 0.0), 1.e-5))
	}
}

// The weak branch keeps the downstream flow supersonic away from
// detachment, unlike the strong root.
func TestObliqueWeakBranch(t *testing.T) {
	for _, m := range []float64{2, 3, 5} {
		assert.Greater(t, ObliqueMach2(m, 1.4, 0.1745329), 1.0)
		assert.Less(t, ObliqueBeta(m, 1.4, 0.1745329), ObliqueBetaMax(m, 1.4))
	}
}

func TestObliqueSinglePrecision(t *testing.T) {
	beta := ObliqueBeta(float32(2), 1.4, 0.1745329)
	assert.InDelta(t, 0.68615752, float64(beta), 1.e-3)
	assert.True(t, math.IsNaN(float64(ObliqueBeta(float32(2), 1.4, 0.5235988))))
}
