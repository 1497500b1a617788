package isentropic

import (
	"github.com/notargets/compflow/solver"
	"github.com/notargets/compflow/utils"
)

// bisectIterations is the fixed budget of the bracketed area ratio
// inversion.
const bisectIterations = 10000

// MachFromTT0 returns the Mach number for a static to total temperature
// ratio. Closed form; single-valued on the Mach >= 0 branch.
func MachFromTT0[F utils.Float](tT0, gamma F) F {
	return utils.Sqrt(2 / (gamma - 1) * (1/tT0 - 1))
}

// MachFromPP0 returns the Mach number for a static to total pressure ratio.
func MachFromPP0[F utils.Float](pP0, gamma F) F {
	return utils.Sqrt(2 / (gamma - 1) * (utils.Pow(pP0, (1-gamma)/gamma) - 1))
}

// MachFromRhoRho0 returns the Mach number for a static to stagnation
// density ratio.
func MachFromRhoRho0[F utils.Float](rhoRho0, gamma F) F {
	return utils.Sqrt(2 / (gamma - 1) * (utils.Pow(rhoRho0, 1-gamma) - 1))
}

// MachFromVCpT0 returns the Mach number for a velocity normalized by
// sqrt(cp*T0).
func MachFromVCpT0[F utils.Float](vCpT0, gamma F) F {
	return vCpT0 / utils.Sqrt((gamma-1)*(1-0.5*utils.POW(vCpT0, 2)))
}

// MachFromMachAngle returns the Mach number for a Mach wave angle in
// radians.
func MachFromMachAngle[F utils.Float](machAngle F) F {
	return 1 / utils.Sin(machAngle)
}

// MachFromPMAngle returns the Mach number that expands through the given
// Prandtl-Meyer angle in radians.
func MachFromPMAngle[F utils.Float](pmAngle, gamma F) (F, error) {
	f := func(mach F) F { return PMAngle(mach, gamma) - pmAngle }
	mach, err := solver.FDNewton(f, 2)
	if err != nil || mach < 1 {
		// near-sonic angles at high gamma drag the iterate below Mach 1
		// where the angle is undefined; bisect the supersonic branch
		return solver.Bisect(f, 1, 50, bisectIterations), nil
	}
	return mach, nil
}

// MachFromAAc returns the Mach number for a critical area ratio. A/A* is
// two-to-one in Mach, so supersonic selects which of the two roots is
// sought by seeding the solve just above or below the sonic point. The
// Newton iteration can cross the flat slope at Mach 1 onto the other
// branch; any root on the wrong side of 1, and any failed solve, falls
// back to the bracketed inversion, which cannot leave its branch.
func MachFromAAc[F utils.Float](aAc, gamma F, supersonic bool) (F, error) {
	if aAc == 1 {
		return 1, nil
	}
	var x0 F = 0.99
	if supersonic {
		x0 = 1.01
	}
	f := func(mach F) F { return AAc(mach, gamma) - aAc }
	mach, err := solver.FDNewton(f, x0)
	if err != nil || mach <= 0 || (mach > 1) != supersonic {
		return MachFromAAcBisect(aAc, gamma, supersonic), nil
	}
	return mach, nil
}

// MachFromAAcBisect returns the Mach number for a critical area ratio by
// bisecting the branch bracket, [1, max] for the supersonic root and [0, 1]
// for the subsonic one. Slower than MachFromAAc but immune to the Newton
// iteration being thrown onto the wrong branch by the flat slope near
// Mach 1.
func MachFromAAcBisect[F utils.Float](aAc, gamma F, supersonic bool) F {
	if aAc == 1 {
		return 1
	}
	var lo, hi F = 0, 1
	if supersonic {
		lo, hi = 1, utils.MaxValue[F]()
	}
	f := func(mach F) F { return AAc(mach, gamma) - aAc }
	return solver.Bisect(f, lo, hi, bisectIterations)
}

// MachFromMCpT0AP0 returns the Mach number for a mass flow function
// mdot*sqrt(cp*T0)/(A*p0). The function chokes at Mach 1, so supersonic
// selects the root.
func MachFromMCpT0AP0[F utils.Float](mCpT0AP0, gamma F, supersonic bool) (F, error) {
	var x0 F = 0.5
	if supersonic {
		x0 = 1.5
	}
	f := func(mach F) F { return MCpT0AP0(mach, gamma) - mCpT0AP0 }
	df := func(mach F) F { return DerMCpT0AP0(mach, gamma) }
	return solver.Newton(f, df, x0)
}

// MachFromMCpT0AP returns the Mach number for a mass flow function
// mdot*sqrt(cp*T0)/(A*p). Single-valued, no branch selection needed.
func MachFromMCpT0AP[F utils.Float](mCpT0AP, gamma F) (F, error) {
	f := func(mach F) F { return MCpT0AP(mach, gamma) - mCpT0AP }
	df := func(mach F) F { return DerMCpT0AP(mach, gamma) }
	return solver.Newton(f, df, 1.5)
}

// MachFromFMCpT0 returns the Mach number for a stream thrust function
// F/(mdot*sqrt(cp*T0)), which has its minimum at Mach 1; supersonic selects
// the root.
func MachFromFMCpT0[F utils.Float](fMCpT0, gamma F, supersonic bool) (F, error) {
	// the subsonic branch follows its small-Mach asymptote
	// sqrt(gamma-1)/(gamma*M); the asymptote's inverse under-predicts the
	// root, so the iterate climbs to it from inside (0, 1)
	x0 := utils.Sqrt(gamma-1) / gamma / fMCpT0
	if supersonic {
		x0 = 1.5
	}
	f := func(mach F) F { return FMCpT0(mach, gamma) - fMCpT0 }
	df := func(mach F) F { return DerFMCpT0(mach, gamma) }
	return solver.Newton(f, df, x0)
}
