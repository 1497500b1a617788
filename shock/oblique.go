package shock

import (
	"github.com/notargets/compflow/solver"
	"github.com/notargets/compflow/utils"
)

// ObliqueBetaMax returns the maximum attainable wave angle for an attached
// oblique shock at the given upstream Mach number, from the detachment
// condition of the theta-beta-Mach relation.
func ObliqueBetaMax[F utils.Float](mach, gamma F) F {
	var (
		m2 = utils.POW(mach, 2)
		m4 = utils.POW(mach, 4)
	)
	return utils.Asin(utils.Sqrt(1 / (gamma * m2) *
		(0.25*(gamma+1)*m2 - 1 +
			utils.Sqrt(utils.POW(gamma+1, 2)/16*m4+0.5*(gamma-1)*m2+1))))
}

// ObliqueBeta returns the wave angle in radians of the weak oblique shock
// deflecting the flow by theta radians, or NaN when no attached weak
// solution exists (detached shock) or the solve fails.
//
// The theta-beta-Mach relation also admits the strong-shock root, so the
// solve is seeded at the detachment angle and re-seeded 0.1 rad lower
// whenever it converges outside (0, betaMax]. The seed marching below zero
// bounds the retries.
func ObliqueBeta[F utils.Float](mach, gamma, theta F) F {
	var (
		betaMax = ObliqueBetaMax(mach, gamma)
		m2      = utils.POW(mach, 2)
		tanTh   = utils.Tan(theta)
	)
	f := func(beta F) F {
		return tanTh - 2/utils.Tan(beta)*(m2*utils.POW(utils.Sin(beta), 2)-1)/
			(m2*(gamma+utils.Cos(2*beta))+2)
	}
	x0 := betaMax
	beta, err := solver.FDNewton(f, x0)
	if err != nil {
		return utils.NaN[F]()
	}
	for beta > betaMax || beta < 0 {
		x0 -= 0.1
		if x0 <= 0 {
			return utils.NaN[F]()
		}
		if beta, err = solver.FDNewton(f, x0); err != nil {
			return utils.NaN[F]()
		}
	}
	return beta
}

// ObliqueMach2 returns the Mach number downstream of a weak oblique shock.
func ObliqueMach2[F utils.Float](mach, gamma, theta F) F {
	var (
		beta = ObliqueBeta(mach, gamma, theta)
		m2   = utils.POW(mach, 2)
		sin2 = utils.POW(utils.Sin(beta), 2)
		cos2 = utils.POW(utils.Cos(beta), 2)
	)
	return utils.Sqrt((1+0.5*(gamma-1)*m2)/(gamma*m2*sin2-0.5*(gamma-1)) +
		m2*cos2/(1+0.5*(gamma-1)*m2*sin2))
}

// ObliqueP02P01 returns the total pressure ratio across a weak oblique
// shock.
func ObliqueP02P01[F utils.Float](mach, gamma, theta F) F {
	return NormalP02P01(mach1n(mach, gamma, theta), gamma)
}

// ObliqueP2P1 returns the static pressure ratio across a weak oblique
// shock.
func ObliqueP2P1[F utils.Float](mach, gamma, theta F) F {
	return NormalP2P1(mach1n(mach, gamma, theta), gamma)
}

// ObliqueRho2Rho1 returns the static density ratio across a weak oblique
// shock.
func ObliqueRho2Rho1[F utils.Float](mach, gamma, theta F) F {
	return NormalRho2Rho1(mach1n(mach, gamma, theta), gamma)
}

// ObliqueT2T1 returns the static temperature ratio across a weak oblique
// shock.
func ObliqueT2T1[F utils.Float](mach, gamma, theta F) F {
	return NormalT2T1(mach1n(mach, gamma, theta), gamma)
}

// ObliqueA2A1 returns the speed of sound ratio across a weak oblique shock.
func ObliqueA2A1[F utils.Float](mach, gamma, theta F) F {
	return NormalA2A1(mach1n(mach, gamma, theta), gamma)
}

// mach1n is the upstream Mach component normal to the wave. The wave angle
// is recomputed on every call; the relations stay pure functions of their
// inputs.
func mach1n[F utils.Float](mach, gamma, theta F) F {
	return mach * utils.Sin(ObliqueBeta(mach, gamma, theta))
}
