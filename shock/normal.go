// Package shock implements the normal-shock jump relations and the weak
// oblique-shock relations, including the theta-beta-Mach wave angle solver.
//
// All relations assume an upstream Mach number of at least 1; nothing is
// validated, and non-physical inputs propagate as NaN or garbage.
package shock

import "github.com/notargets/compflow/utils"

// NormalMach2 returns the Mach number downstream of a normal shock.
func NormalMach2[F utils.Float](mach, gamma F) F {
	var (
		m2 = utils.POW(mach, 2)
	)
	return utils.Sqrt((1 + 0.5*(gamma-1)*m2) / (gamma*m2 - 0.5*(gamma-1)))
}

// NormalP02P01 returns the total pressure ratio across a normal shock.
func NormalP02P01[F utils.Float](mach, gamma F) F {
	var (
		m2  = utils.POW(mach, 2)
		gp1 = gamma + 1
		gm1 = gamma - 1
	)
	return 1 / (utils.Pow(2*gamma/gp1*m2-gm1/gp1, 1/gm1) *
		utils.Pow(2/gp1/m2+gm1/gp1, gamma/gm1))
}

// NormalP2P1 returns the static pressure ratio across a normal shock.
func NormalP2P1[F utils.Float](mach, gamma F) F {
	return 2*gamma/(gamma+1)*(utils.POW(mach, 2)-1) + 1
}

// NormalRho2Rho1 returns the static density ratio across a normal shock.
func NormalRho2Rho1[F utils.Float](mach, gamma F) F {
	var (
		m2 = utils.POW(mach, 2)
	)
	return (gamma + 1) * m2 / ((gamma-1)*m2 + 2)
}

// NormalT2T1 returns the static temperature ratio across a normal shock.
func NormalT2T1[F utils.Float](mach, gamma F) F {
	var (
		m2 = utils.POW(mach, 2)
	)
	return (2 + (gamma-1)*m2) * (2*gamma*m2 - (gamma - 1)) /
		(utils.POW(gamma+1, 2) * m2)
}

// NormalA2A1 returns the speed of sound ratio across a normal shock.
func NormalA2A1[F utils.Float](mach, gamma F) F {
	return utils.Sqrt(NormalT2T1(mach, gamma))
}
