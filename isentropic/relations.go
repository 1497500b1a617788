// Package isentropic implements the isentropic flow relations for a
// calorically perfect gas and their inverses: given a Mach number and ratio
// of specific heats, the local-to-stagnation property ratios, and given a
// ratio, the Mach number that produces it.
//
// None of the functions validate their inputs. Non-physical arguments such
// as gamma <= 1 or a negative Mach number propagate as NaN or Inf.
package isentropic

import "github.com/notargets/compflow/utils"

// TT0 returns the static to total temperature ratio T/T0.
func TT0[F utils.Float](mach, gamma F) F {
	return 1 / (1 + 0.5*(gamma-1)*utils.POW(mach, 2))
}

// PP0 returns the static to total pressure ratio p/p0.
func PP0[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return utils.Pow(t0T, gamma/(1-gamma))
}

// RhoRho0 returns the static to stagnation density ratio rho/rho0.
func RhoRho0[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return utils.Pow(t0T, 1/(1-gamma))
}

// AAc returns the critical area ratio A/A*, the duct area over the area at
// which the flow would be sonic. It has a minimum of 1 at Mach 1.
func AAc[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return 1 / mach * utils.Pow(t0T/(0.5*(gamma+1)), 0.5*(gamma+1)/(gamma-1))
}

// PMAngle returns the Prandtl-Meyer angle in radians, the angle through
// which a sonic flow must turn to expand to the given Mach number.
func PMAngle[F utils.Float](mach, gamma F) F {
	var (
		gp1 = gamma + 1
		gm1 = gamma - 1
		m2  = utils.POW(mach, 2)
	)
	return utils.Sqrt(gp1/gm1)*utils.Atan(utils.Sqrt(gm1/gp1*(m2-1))) -
		utils.Atan(utils.Sqrt(m2-1))
}

// MachAngle returns the Mach wave angle in radians.
func MachAngle[F utils.Float](mach F) F {
	return utils.Asin(1 / mach)
}

// VCpT0 returns the velocity normalized by sqrt(cp*T0).
func VCpT0[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return utils.Sqrt(gamma-1) * mach / utils.Sqrt(t0T)
}

// MCpT0AP0 returns the mass flow function mdot*sqrt(cp*T0)/(A*p0). It peaks
// at Mach 1 where the flow chokes, so it is two-to-one in Mach.
func MCpT0AP0[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return gamma / utils.Sqrt(gamma-1) * mach *
		utils.Pow(t0T, -0.5*(gamma+1)/(gamma-1))
}

// MCpT0AP returns the mass flow function mdot*sqrt(cp*T0)/(A*p), referenced
// to static rather than total pressure. Strictly increasing in Mach.
func MCpT0AP[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return gamma / utils.Sqrt(gamma-1) * mach * utils.Sqrt(t0T)
}

// FMCpT0 returns the stream thrust function F/(mdot*sqrt(cp*T0)) where
// F = mdot*v + p*A. It has a minimum at Mach 1.
func FMCpT0[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return utils.Sqrt(gamma-1) / gamma * (1 + gamma*utils.POW(mach, 2)) /
		(mach * utils.Sqrt(t0T))
}
