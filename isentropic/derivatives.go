package isentropic

import "github.com/notargets/compflow/utils"

// Derivatives with respect to Mach number, used as Jacobians by the
// Newton-based inversions. The Der*0* names follow the stagnation-over-
// static form of the ratio being differentiated (T0/T, p0/p, rho0/rho).

// DerT0T returns d(T0/T)/dM.
func DerT0T[F utils.Float](mach, gamma F) F {
	return (gamma - 1) * mach
}

// DerP0P returns d(p0/p)/dM.
func DerP0P[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return gamma * mach * utils.Pow(t0T, 1/(gamma-1))
}

// DerRho0Rho returns d(rho0/rho)/dM.
func DerRho0Rho[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return mach * utils.Pow(t0T, (2-gamma)/(gamma-1))
}

// DerAAc returns d(A/A*)/dM. Zero at Mach 1, negatively unbounded at
// Mach 0.
func DerAAc[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return utils.Pow(2/(gamma+1)*t0T, 0.5*(gamma+1)/(gamma-1)) *
		(-1/utils.POW(mach, 2) + 0.5*(gamma+1)/t0T)
}

// DerVCpT0 returns d(v/sqrt(cp*T0))/dM.
func DerVCpT0[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return utils.Sqrt(gamma-1) * utils.Pow(t0T, -1.5)
}

// DerMCpT0AP0 returns d(mdot*sqrt(cp*T0)/(A*p0))/dM. Zero at Mach 1 where
// the mass flow function peaks.
func DerMCpT0AP0[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return gamma / utils.Sqrt(gamma-1) *
		(1 - 0.5*(gamma+1)*utils.POW(mach, 2)/t0T) *
		utils.Pow(t0T, -0.5*(gamma+1)/(gamma-1))
}

// DerMCpT0AP returns d(mdot*sqrt(cp*T0)/(A*p))/dM. Strictly positive.
func DerMCpT0AP[F utils.Float](mach, gamma F) F {
	var (
		t0T = 1 + 0.5*(gamma-1)*utils.POW(mach, 2)
	)
	return gamma / utils.Sqrt(gamma-1) * (1 + (gamma-1)*utils.POW(mach, 2)) /
		utils.Sqrt(t0T)
}

// DerFMCpT0 returns d(F/(mdot*sqrt(cp*T0)))/dM. Zero at Mach 1 where the
// thrust function has its minimum.
func DerFMCpT0[F utils.Float](mach, gamma F) F {
	var (
		m2  = utils.POW(mach, 2)
		t0T = 1 + 0.5*(gamma-1)*m2
	)
	return utils.Sqrt(gamma-1) / gamma * (m2 - 1) / m2 * utils.Pow(t0T, -1.5)
}
