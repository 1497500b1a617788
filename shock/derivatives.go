package shock

import "github.com/notargets/compflow/utils"

// DerNormalMach2 returns d(Mach2)/dM across a normal shock.
func DerNormalMach2[F utils.Float](mach, gamma F) F {
	var (
		m2   = utils.POW(mach, 2)
		t0T  = 1 + 0.5*(gamma-1)*m2
		half = F(0.5)
		a    = utils.POW(gamma+1, 2) * mach * utils.Sqrt(half)
		c    = gamma*(2*m2-1) + 1
	)
	return -a * utils.Pow(t0T, -0.5) * utils.Pow(c, -1.5)
}

// DerNormalP02P01 returns d(p02/p01)/dM across a normal shock.
func DerNormalP02P01[F utils.Float](mach, gamma F) F {
	var (
		m2  = utils.POW(mach, 2)
		t0T = 1 + 0.5*(gamma-1)*m2
		a   = gamma * mach * utils.POW(m2-1, 2) / utils.POW(t0T, 2)
		b   = 0.5 * (gamma + 1) * m2 / t0T
		c   = 2*gamma/(gamma+1)*m2 - (gamma-1)/(gamma+1)
	)
	return -a * utils.Pow(b, 1/(gamma-1)) * utils.Pow(c, -gamma/(gamma-1))
}
